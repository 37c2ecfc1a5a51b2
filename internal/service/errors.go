package service

import "errors"

// Operation-level errors. Failures of a remote call wrap both one of these
// and the transport classification from the adapter package, so callers can
// match either with [errors.Is].
var (
	// ErrNotFound is returned when the local entity or endpoint does not
	// exist. It is checked before any remote call.
	ErrNotFound = errors.New("not found")

	ErrFetchingFailed = errors.New("fetching from remote connector failed")
	ErrCreationFailed = errors.New("creation on remote connector failed")
	ErrUpdateFailed   = errors.New("update on remote connector failed")
	ErrDeletionFailed = errors.New("deletion on remote connector failed")

	ErrInvalidDataProvided = errors.New("invalid data provided")
)
