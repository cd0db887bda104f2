// Package batch runs a sequence of independent operations strictly one at a
// time with a fixed pacing delay between items. Items are never processed
// concurrently; the upstream API's rate limit is per caller.
package batch

import (
	"context"
	"time"
)

// Processor handles one item.
type Processor[I, R any] func(ctx context.Context, item I) (R, error)

// OnError observes a per-item failure. Observability only; may be nil.
type OnError[I any] func(item I, err error)

// Run processes items in order, never concurrently, sleeping delay before
// each item after the first. A failing item does not abort the batch: its
// result slot is filled with fallback and processing continues. The returned
// slice always has one result per input item, in input order, unless the
// context is cancelled, in which case the partial results are returned with
// the context's error.
func Run[I, R any](ctx context.Context, items []I, process Processor[I, R], delay time.Duration, fallback R, onError OnError[I]) ([]R, error) {
	results := make([]R, 0, len(items))

	for i, item := range items {
		if i > 0 && delay > 0 {
			if err := sleep(ctx, delay); err != nil {
				return results, err
			}
		}

		if err := ctx.Err(); err != nil {
			return results, err
		}

		r, err := process(ctx, item)
		if err != nil {
			if onError != nil {
				onError(item, err)
			}
			r = fallback
		}
		results = append(results, r)
	}

	return results, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
