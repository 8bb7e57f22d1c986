// Package workers runs the background jobs of the Candle Recall server.
// It defines the Worker interface, the Workers aggregate that runs several
// workers under one context, and the CleanupWorker that purges expired
// one-time credentials.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
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
