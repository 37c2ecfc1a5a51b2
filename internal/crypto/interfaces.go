package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects credentials at rest. Sealed values are opaque text safe to
// store in a database column; only a Sealer built from the same secret can
// open them.
type Sealer interface {
	// Seal encrypts plaintext and returns a base64 blob (nonce || ciphertext).
	// Sealing the same value twice yields different blobs.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. It fails when the blob was produced with another
	// secret or has been tampered with.
	Open(sealed string) (string, error)
}
