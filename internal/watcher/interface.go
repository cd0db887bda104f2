package watcher

import "context"

// Watcher monitors the input directory and dispatches each new audio file to
// its handler, bounded by the configured concurrency.
type Watcher interface {
	// Start blocks until the context is cancelled, draining in-flight
	// analyses before returning.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler analyzes one dropped audio file. The watcher logs a returned
// error and moves on; a failed file does not stop the loop.
type EventHandler func(ctx context.Context, audioPath string) error
