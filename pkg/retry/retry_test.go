package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"rate limit status", errors.New("googleapi: Error 429: too many requests"), true},
		{"overloaded status", errors.New("Error 503: the model is overloaded"), true},
		{"resource exhausted", errors.New("rpc error: code = RESOURCE_EXHAUSTED desc = quota exceeded"), true},
		{"unavailable", errors.New("rpc error: code = UNAVAILABLE"), true},
		{"bad request", errors.New("Error 400: invalid argument"), false},
		{"auth failure", errors.New("Error 403: permission denied"), false},
		{"plain failure", errors.New("connection reset by peer"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Retryable(tt.err); got != tt.want {
				t.Errorf("Retryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestDoSucceedsAfterRetryableFailures(t *testing.T) {
	base := 20 * time.Millisecond
	rateLimited := errors.New("Error 429: rate limited")

	var invocations []time.Time
	op := func(ctx context.Context) (string, error) {
		invocations = append(invocations, time.Now())
		if len(invocations) < 3 {
			return "", rateLimited
		}
		return "ok", nil
	}

	var notified int
	got, err := Do(context.Background(), Policy{MaxAttempts: 3, BaseDelay: base}, op, func(err error, delay time.Duration) {
		notified++
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if got != "ok" {
		t.Errorf("Do() = %q, want %q", got, "ok")
	}
	if len(invocations) != 3 {
		t.Fatalf("operation invoked %d times, want 3", len(invocations))
	}
	if notified != 2 {
		t.Errorf("notify called %d times, want 2", notified)
	}

	// Delay 1->2 should be the base delay, 2->3 double it.
	first := invocations[1].Sub(invocations[0])
	second := invocations[2].Sub(invocations[1])
	if first < base {
		t.Errorf("delay before retry 1 = %v, want >= %v", first, base)
	}
	if second < 2*base {
		t.Errorf("delay before retry 2 = %v, want >= %v", second, 2*base)
	}
	if first >= 2*base {
		t.Errorf("delay before retry 1 = %v, want < %v", first, 2*base)
	}
}

func TestDoFailsFastOnNonRetryable(t *testing.T) {
	fatal := errors.New("Error 400: invalid audio payload")

	calls := 0
	_, err := Do(context.Background(), Policy{MaxAttempts: 5, BaseDelay: time.Second}, func(ctx context.Context) (int, error) {
		calls++
		return 0, fatal
	}, nil)

	if !errors.Is(err, fatal) {
		t.Errorf("Do() error = %v, want %v", err, fatal)
	}
	if calls != 1 {
		t.Errorf("operation invoked %d times, want 1", calls)
	}
}

func TestDoExhaustsRetries(t *testing.T) {
	rateLimited := errors.New("Error 503: service unavailable")

	calls := 0
	_, err := Do(context.Background(), Policy{MaxAttempts: 3, BaseDelay: time.Millisecond}, func(ctx context.Context) (int, error) {
		calls++
		return 0, rateLimited
	}, nil)

	if !errors.Is(err, rateLimited) {
		t.Errorf("Do() error = %v, want %v", err, rateLimited)
	}
	if calls != 3 {
		t.Errorf("operation invoked %d times, want 3", calls)
	}
}

func TestDoSingleAttemptIsPassThrough(t *testing.T) {
	rateLimited := errors.New("Error 429: rate limited")

	calls := 0
	_, err := Do(context.Background(), Policy{MaxAttempts: 1, BaseDelay: time.Second}, func(ctx context.Context) (int, error) {
		calls++
		return 0, rateLimited
	}, nil)

	if !errors.Is(err, rateLimited) {
		t.Errorf("Do() error = %v, want %v", err, rateLimited)
	}
	if calls != 1 {
		t.Errorf("operation invoked %d times, want 1", calls)
	}
}

func TestDoHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := Do(ctx, Policy{MaxAttempts: 10, BaseDelay: time.Minute}, func(ctx context.Context) (int, error) {
		calls++
		cancel()
		return 0, errors.New("Error 429: rate limited")
	}, nil)

	if err == nil {
		t.Fatal("Do() error = nil, want cancellation error")
	}
	if calls != 1 {
		t.Errorf("operation invoked %d times, want 1", calls)
	}
}
