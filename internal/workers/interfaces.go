// Package workers provides background jobs run next to the REST server and
// a Workers aggregate running them together.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
