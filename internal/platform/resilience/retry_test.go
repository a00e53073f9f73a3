package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errFlaky = errors.New("flaky")

func recordingSleep(delays *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestRetryBacksOffExponentiallyUntilSuccess(t *testing.T) {
	var delays []time.Duration
	calls := 0
	p := RetryPolicy{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		Retryable:  func(err error) bool { return errors.Is(err, errFlaky) },
		sleep:      recordingSleep(&delays),
	}

	got, err := Retry(context.Background(), p, func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errFlaky
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" || calls != 3 {
		t.Fatalf("unexpected result %q after %d calls", got, calls)
	}
	if len(delays) != 2 || delays[0] != time.Second || delays[1] != 2*time.Second {
		t.Fatalf("unexpected delays: %v", delays)
	}
}

func TestRetryGivesUpAfterMaxRetries(t *testing.T) {
	var delays []time.Duration
	calls := 0
	p := RetryPolicy{
		MaxRetries: 2,
		BaseDelay:  time.Second,
		Retryable:  func(error) bool { return true },
		sleep:      recordingSleep(&delays),
	}

	_, err := Retry(context.Background(), p, func(context.Context) (int, error) {
		calls++
		return 0, errFlaky
	})
	if !errors.Is(err, errFlaky) {
		t.Fatalf("expected last error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 1 attempt + 2 retries, got %d calls", calls)
	}
}

func TestRetryStopsOnNonRetryableError(t *testing.T) {
	calls := 0
	permanent := errors.New("404")
	p := RetryPolicy{
		MaxRetries: 5,
		Retryable:  func(err error) bool { return errors.Is(err, errFlaky) },
		sleep:      func(context.Context, time.Duration) error { t.Fatalf("must not sleep"); return nil },
	}

	_, err := Retry(context.Background(), p, func(context.Context) (int, error) {
		calls++
		return 0, permanent
	})
	if !errors.Is(err, permanent) || calls != 1 {
		t.Fatalf("expected immediate failure, got err=%v calls=%d", err, calls)
	}
}

func TestBackoffCapsAtMaxDelay(t *testing.T) {
	p := RetryPolicy{BaseDelay: time.Second, MaxDelay: 5 * time.Second}
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 5 * time.Second, 5 * time.Second}
	for retry, w := range want {
		if got := p.Backoff(retry); got != w {
			t.Fatalf("retry %d: want %s got %s", retry, w, got)
		}
	}
}

func TestRetryHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := Retry(ctx, RetryPolicy{MaxRetries: 3, Retryable: func(error) bool { return true }}, func(context.Context) (int, error) {
		calls++
		return 0, errFlaky
	})
	if err == nil || calls != 1 {
		t.Fatalf("expected single attempt on canceled ctx, got calls=%d err=%v", calls, err)
	}
}
