// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

var (
	ErrEmptySecret     = errors.New("secret must not be empty")
	ErrMalformedSealed = errors.New("sealed value is malformed")
	ErrOpenFailed      = errors.New("failed to open sealed value")
)

// keySalt domain-separates the sealing key from any other use of the
// application secret.
var keySalt = []byte("connector-sync/endpoint-api-key/v1")

// sealer is the XChaCha20-Poly1305 implementation of [Sealer].
type sealer struct {
	aead cipher.AEAD
}

// NewSealer derives a 256-bit key from secret with Argon2id (1 pass, 64 MiB,
// 4 threads) and returns a [Sealer] using it. Key derivation runs once, at
// construction.
func NewSealer(secret string) (Sealer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := argon2.IDKey([]byte(secret), keySalt, 1, 64*1024, 4, chacha20poly1305.KeySize)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return &sealer{aead: aead}, nil
}

func (s *sealer) Seal(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	// nonce is prepended so Open can split it out
	blob := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (s *sealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedSealed, err)
	}

	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize+s.aead.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrMalformedSealed)
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	return string(plaintext), nil
}
