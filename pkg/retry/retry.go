package retry

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy governs one retry loop. Stateless and reusable across calls.
type Policy struct {
	// MaxAttempts is the total number of invocations, including the first.
	// 1 means no retries.
	MaxAttempts int

	// BaseDelay is the wait before the first retry; each further retry
	// doubles it. No jitter.
	BaseDelay time.Duration
}

// Operation is a single fallible call.
type Operation[T any] func(ctx context.Context) (T, error)

// Notify is invoked before each backoff wait with the error that triggered
// the retry and the upcoming delay. Observability only; may be nil.
type Notify func(err error, delay time.Duration)

// retryableMarkers are the substrings that classify an error as transient.
// Rate limiting surfaces as 429/RESOURCE_EXHAUSTED/quota, momentary overload
// as 503/UNAVAILABLE/overloaded, depending on which layer produced the error
// string.
var retryableMarkers = []string{
	"429",
	"503",
	"RESOURCE_EXHAUSTED",
	"UNAVAILABLE",
	"quota",
	"overloaded",
}

// Retryable reports whether err is a rate-limit or transient-unavailability
// failure. Everything else fails fast.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range retryableMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// Do runs op under the policy, retrying retryable failures with pure
// exponential backoff. Non-retryable errors and exhausted retries propagate
// the final error unchanged.
func Do[T any](ctx context.Context, policy Policy, op Operation[T], notify Notify) (T, error) {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = policy.BaseDelay
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxInterval = time.Hour
	bo.MaxElapsedTime = 0
	bo.Reset()

	wrapped := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(policy.MaxAttempts-1)), ctx)

	return backoff.RetryNotifyWithData(func() (T, error) {
		v, err := op(ctx)
		if err != nil && !Retryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}, wrapped, backoff.Notify(notify))
}
