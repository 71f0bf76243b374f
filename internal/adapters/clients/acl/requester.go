package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/httpclient"
)

// Requester runs one merchant API call end to end: build the request,
// send it through httpclient.Client, translate failures and decode the
// JSON body. The response body is always closed.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Get sends GET path?rawQuery and decodes the body into out. rawQuery is
// sent verbatim so callers control parameter order.
func (r *Requester) Get(ctx context.Context, path, rawQuery string, out any) error {
	return r.do(ctx, http.MethodGet, path, rawQuery, nil, out)
}

// Put sends in as a JSON body and decodes the response into out.
func (r *Requester) Put(ctx context.Context, path string, in, out any) error {
	return r.do(ctx, http.MethodPut, path, "", in, out)
}

// CircuitBreakerState returns the circuit breaker state from the underlying
// HTTP client.
func (r *Requester) CircuitBreakerState() string {
	return r.client.CircuitBreakerState()
}

func (r *Requester) do(ctx context.Context, method, path, rawQuery string, in, out any) error {
	url := r.client.BaseURL() + path
	if rawQuery != "" {
		url += "?" + rawQuery
	}

	var body io.Reader = http.NoBody
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(req, out)
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

func successful(code int) bool {
	return code >= 200 && code < 300
}

func (r *Requester) execute(req *http.Request, out any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Exhausted retries on a retryable status return both; the status
		// says more than the retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if !successful(resp.StatusCode) {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "merchant api request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	if !successful(resp.StatusCode) {
		r.logger.ErrorContext(ctx, "unexpected status from merchant api",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
