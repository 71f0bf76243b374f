package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/logging"
)

// ErrorResponse is an RFC 9457 problem document. RequestID is an extension
// member so a dashboard user can quote it in a support request.
type ErrorResponse struct {
	Type      string        `json:"type"`
	Title     string        `json:"title"`
	Status    int           `json:"status"`
	Detail    string        `json:"detail,omitempty"`
	Instance  string        `json:"instance,omitempty"`
	RequestID string        `json:"requestId,omitempty"`
	Errors    []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected field, located as "query.preset" or
// "body.pageSize".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// internalDetail replaces the error text of 500 responses.
const internalDetail = "the dashboard hit an unexpected error"

var statusRules = []struct {
	target error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

// StatusFor maps err onto an HTTP status, defaulting to 500.
func StatusFor(err error) int {
	for _, rule := range statusRules {
		if errors.Is(err, rule.target) {
			return rule.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem document for err. Unclassified
// errors keep their text out of the response.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusFor(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if status == http.StatusInternalServerError {
		resp.Detail = internalDetail
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(fieldLocation(r), verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json. The request ID
// is taken from the response headers set by the RequestID middleware.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	resp.RequestID = w.Header().Get("X-Request-ID")

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "writing problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", encErr),
		)
	}
}

// fieldLocation is "query" for reads and "body" otherwise.
func fieldLocation(r *http.Request) string {
	if r.Method == http.MethodGet || r.Method == http.MethodDelete {
		return "query"
	}
	return "body"
}

func fieldDetails(location string, fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: location + "." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
