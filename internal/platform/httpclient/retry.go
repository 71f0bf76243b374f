package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/logging"
)

// jitterFraction spreads each backoff by up to ±25%.
const jitterFraction = 0.25

// doWithRetry sends req, retrying idempotent requests on transport errors,
// 429 and 5xx. Delays grow exponentially with jitter; a Retry-After header
// on 429 or 503 replaces the computed delay, capped at the max interval.
//
// The final response is stored in resp rather than returned so the
// bodyclose linter stays quiet. When every attempt fails with a retryable
// status, both resp (body open) and the error are set.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	attempts := c.retryCfg.maxAttempts
	if !idempotent(req.Method) {
		attempts = 1
	}

	rewind, err := bodyRewinder(req)
	if err != nil {
		return err
	}

	var (
		lastErr error
		wait    time.Duration
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.sleep(ctx, req, attempt, wait, lastErr); err != nil {
				return err
			}
			if err := rewind(); err != nil {
				return err
			}
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			wait = backoff(attempt+1, c.retryCfg)
			if !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}

		wait = retryAfter(r, c.retryCfg.maxInterval)
		if wait <= 0 {
			wait = backoff(attempt+1, c.retryCfg)
		}
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}

	return lastErr
}

// idempotent reports whether a request may be sent twice. Reward updates
// are whole-document PUTs and qualify.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// bodyRewinder returns a func that restores req.Body before a retry. It uses
// req.GetBody when the request was built from an in-memory reader and
// otherwise buffers the body once.
func bodyRewinder(req *http.Request) (func() error, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return func() error { return nil }, nil
	}
	if req.GetBody != nil {
		return func() error {
			body, err := req.GetBody()
			if err != nil {
				return fmt.Errorf("rewinding request body: %w", err)
			}
			req.Body = body
			return nil
		}, nil
	}

	buf, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(buf))
	req.ContentLength = int64(len(buf))
	return func() error {
		req.Body = io.NopCloser(bytes.NewReader(buf))
		return nil
	}, nil
}

func (c *Client) sleep(ctx context.Context, req *http.Request, attempt int, wait time.Duration, lastErr error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying merchant API request",
		slog.String("peer_service", c.serviceName),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", wait),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff is the jittered delay before retry number attempt (1-based).
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	delay = math.Min(delay, float64(cfg.maxInterval))
	delay += delay * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(math.Max(delay, 0))
}

// retryAfter parses a Retry-After header given in seconds or as an HTTP
// date on 429 and 503 responses. It returns 0 when absent or unparsable.
func retryAfter(r *http.Response, ceiling time.Duration) time.Duration {
	if r.StatusCode != http.StatusTooManyRequests && r.StatusCode != http.StatusServiceUnavailable {
		return 0
	}
	v := r.Header.Get("Retry-After")
	if v == "" {
		return 0
	}

	var d time.Duration
	if secs, err := strconv.Atoi(v); err == nil {
		d = time.Duration(secs) * time.Second
	} else if at, err := http.ParseTime(v); err == nil {
		d = time.Until(at)
	}
	if d <= 0 {
		return 0
	}
	return min(d, ceiling)
}

// isRetryable reports whether a transport error is worth another attempt.
// A cancelled or expired context never is: for a list view it means a newer
// request superseded this one.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports 429 and any 5xx.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
