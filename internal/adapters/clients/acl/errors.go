// Package acl is the anti-corruption layer in front of the merchant API. It
// translates the API's JSON envelopes into domain types (subpackages
// transactions and account) and its failures into domain sentinels.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody covers both shapes the merchant API fails with: RFC 7807
// problem details (detail, errors[].location) and its own JSON envelope
// (message, errors[].field).
type errorBody struct {
	Detail  string        `json:"detail"`
	Message string        `json:"message"`
	Errors  []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

func (b errorBody) text() string {
	if b.Detail != "" {
		return b.Detail
	}
	return b.Message
}

// TranslateHTTPError maps a failed merchant API response to a domain error.
// 400 and 422 bodies with field errors become a *domain.ValidationError.
// 429 and 5xx are ErrUnavailable.
func TranslateHTTPError(resp *http.Response) error {
	body := parseErrorBody(resp)

	detail := body.text()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(body.Errors) > 0 {
			return toValidationError(body.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case code == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}
}

// parseErrorBody reads a JSON error body. Anything else yields a zero value.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mt != "application/problem+json" && mt != "application/json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}

	var b errorBody
	if err := json.Unmarshal(raw, &b); err != nil {
		return errorBody{}
	}
	return b
}

// toValidationError keys field errors by field name, stripping the "body."
// and "query." location prefixes.
func toValidationError(details []errorDetail) *domain.ValidationError {
	verr := &domain.ValidationError{}
	for _, d := range details {
		field := d.Field
		if field == "" {
			field = strings.TrimPrefix(strings.TrimPrefix(d.Location, "body."), "query.")
		}
		verr.Add(field, d.Message)
	}
	return verr
}
