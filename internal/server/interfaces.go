package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// Run serves requests until ctx is done, then shuts down gracefully.
	// It returns early with an error when the listener cannot be opened.
	Run(ctx context.Context) error
}
