package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"
)

var testRetry = retryConfig{
	initialInterval: 100 * time.Millisecond,
	maxInterval:     2 * time.Second,
	multiplier:      2.0,
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 100 * time.Millisecond},
		{attempt: 2, base: 200 * time.Millisecond},
		{attempt: 3, base: 400 * time.Millisecond},
		{attempt: 8, base: 2 * time.Second}, // capped
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.attempt), func(t *testing.T) {
			t.Parallel()
			lo := time.Duration(float64(tt.base) * (1 - jitterFraction))
			hi := time.Duration(float64(tt.base) * (1 + jitterFraction))
			for range 50 {
				if got := backoff(tt.attempt, testRetry); got < lo || got > hi {
					t.Fatalf("backoff(%d) = %v, want within [%v, %v]", tt.attempt, got, lo, hi)
				}
			}
		})
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		header string
		want   time.Duration
	}{
		{name: "seconds on 429", status: http.StatusTooManyRequests, header: "1", want: time.Second},
		{name: "seconds on 503", status: http.StatusServiceUnavailable, header: "1", want: time.Second},
		{name: "capped", status: http.StatusTooManyRequests, header: "120", want: testRetry.maxInterval},
		{name: "ignored on 500", status: http.StatusInternalServerError, header: "1", want: 0},
		{name: "absent", status: http.StatusTooManyRequests, want: 0},
		{name: "garbage", status: http.StatusTooManyRequests, header: "soon", want: 0},
		{name: "date in the past", status: http.StatusTooManyRequests, header: "Mon, 01 Jan 2024 00:00:00 GMT", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &http.Response{StatusCode: tt.status, Header: http.Header{}}
			if tt.header != "" {
				r.Header.Set("Retry-After", tt.header)
			}
			if got := retryAfter(r, testRetry.maxInterval); got != tt.want {
				t.Errorf("retryAfter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "superseded fetch", err: context.Canceled, want: false},
		{name: "deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: false},
		{name: "connection refused", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "unknown", err: errors.New("EOF"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	for code, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusBadRequest:          false,
		http.StatusNotFound:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
	} {
		if got := isRetryableStatus(code); got != want {
			t.Errorf("isRetryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	for method, want := range map[string]bool{
		http.MethodGet:    true,
		http.MethodPut:    true,
		http.MethodDelete: true,
		http.MethodPost:   false,
		http.MethodPatch:  false,
	} {
		if got := idempotent(method); got != want {
			t.Errorf("idempotent(%s) = %v, want %v", method, got, want)
		}
	}
}

func TestBodyRewinder(t *testing.T) {
	t.Parallel()

	t.Run("uses GetBody", func(t *testing.T) {
		t.Parallel()
		req, _ := http.NewRequest(http.MethodPut, "http://merchant.test/merchant/reward", strings.NewReader(`{"rewardCap":10000}`))
		rewind, err := bodyRewinder(req)
		if err != nil {
			t.Fatalf("bodyRewinder() error = %v", err)
		}
		_, _ = io.ReadAll(req.Body)
		if err := rewind(); err != nil {
			t.Fatalf("rewind() error = %v", err)
		}
		if got, _ := io.ReadAll(req.Body); string(got) != `{"rewardCap":10000}` {
			t.Errorf("body after rewind = %q", got)
		}
	})

	t.Run("buffers opaque bodies", func(t *testing.T) {
		t.Parallel()
		req, _ := http.NewRequest(http.MethodPut, "http://merchant.test/merchant/reward", io.NopCloser(strings.NewReader("cap")))
		req.GetBody = nil
		rewind, err := bodyRewinder(req)
		if err != nil {
			t.Fatalf("bodyRewinder() error = %v", err)
		}
		if req.ContentLength != 3 {
			t.Errorf("ContentLength = %d, want 3", req.ContentLength)
		}
		_, _ = io.ReadAll(req.Body)
		_ = rewind()
		if got, _ := io.ReadAll(req.Body); string(got) != "cap" {
			t.Errorf("body after rewind = %q, want cap", got)
		}
	})

	t.Run("no body", func(t *testing.T) {
		t.Parallel()
		req, _ := http.NewRequest(http.MethodGet, "http://merchant.test/merchant/info", http.NoBody)
		rewind, err := bodyRewinder(req)
		if err != nil || rewind() != nil {
			t.Errorf("bodyRewinder() on empty body failed: %v", err)
		}
	})
}
