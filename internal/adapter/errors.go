package adapter

import "errors"

// Transport-level classification errors, one per failing [Category].
var (
	// ErrRemoteNotFound corresponds to [DriftSignal]: the remote connector has
	// no entity with the requested identifier.
	ErrRemoteNotFound = errors.New("remote resource not found")

	ErrAuthFailed       = errors.New("remote authorization failed")
	ErrConnectionFailed = errors.New("remote connection failed")

	// ErrMalformed covers 400 responses, unexpected statuses and bodies that
	// cannot be parsed into the expected shape.
	ErrMalformed = errors.New("malformed remote response")
)
