package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Retry policy: attempts are numbered 0..maxRetries inclusive. Only two
// outcomes are retryable — rate-limit responses (429) and transport
// failures that never produced an HTTP response. Every other classified
// error propagates on the first attempt.
//
// Delays are uncapped: with the default 3 retries the worst case adds
// 1+2+4 seconds before giving up. Callers with tighter deadlines should
// bound the whole sequence with their context.

// backoffDelay returns the exponential delay for an attempt index
// (1s, 2s, 4s, ...).
func backoffDelay(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}

// rateLimitDelay returns the server-provided Retry-After delay in seconds,
// falling back to exponential backoff when the header is absent or not an
// integer.
func rateLimitDelay(headers http.Header, attempt int) time.Duration {
	if headers != nil {
		if v := strings.TrimSpace(headers.Get("Retry-After")); v != "" {
			if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
				return time.Duration(secs) * time.Second
			}
		}
	}
	return backoffDelay(attempt)
}

// wait sleeps for delay or until the context is done, whichever comes first.
func wait(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
