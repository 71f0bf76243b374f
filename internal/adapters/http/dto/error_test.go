package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: domain.NewValidationError("preset", domain.MsgInvalid), want: http.StatusBadRequest},
		{name: "unknown view", err: fmt.Errorf("view v-9: %w", domain.ErrNotFound), want: http.StatusNotFound},
		{name: "forbidden", err: domain.ErrForbidden, want: http.StatusForbidden},
		{name: "conflict", err: domain.ErrConflict, want: http.StatusConflict},
		{name: "merchant API down", err: domain.ErrUnavailable, want: http.StatusBadGateway},
		{name: "await deadline", err: fmt.Errorf("awaiting view: %w", context.DeadlineExceeded), want: http.StatusGatewayTimeout},
		{name: "unclassified", err: errors.New("oops"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := dto.StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantTitle  string
		wantDetail string
	}{
		{name: "not found keeps detail", err: fmt.Errorf("view v-42: %w", domain.ErrNotFound), wantTitle: "Not Found", wantDetail: "view v-42: not found"},
		{name: "internal hides detail", err: errors.New("nil pointer in reducer"), wantTitle: "Internal Server Error", wantDetail: "the dashboard hit an unexpected error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/api/v1/views/v-42", nil)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Type != "about:blank" {
				t.Errorf("Type = %q, want about:blank", got.Type)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", got.Detail, tt.wantDetail)
			}
			if got.Instance != "/api/v1/views/v-42" {
				t.Errorf("Instance = %q, want /api/v1/views/v-42", got.Instance)
			}
			if got.Errors != nil {
				t.Errorf("Errors = %v, want nil", got.Errors)
			}
		})
	}
}

func TestNewErrorResponse_FieldLocations(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"preset":   "invalid: \"Fortnight\"",
		"kind":     "is required",
		"pageSize": "must be at most 100",
	}}

	tests := []struct {
		method string
		want   []string
	}{
		{method: http.MethodPost, want: []string{"body.kind", "body.pageSize", "body.preset"}},
		{method: http.MethodGet, want: []string{"query.kind", "query.pageSize", "query.preset"}},
		{method: http.MethodDelete, want: []string{"query.kind", "query.pageSize", "query.preset"}},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			got := dto.NewErrorResponse(httptest.NewRequest(tt.method, "/api/v1/views", nil), verr)
			if len(got.Errors) != len(tt.want) {
				t.Fatalf("len(Errors) = %d, want %d", len(got.Errors), len(tt.want))
			}
			for i, want := range tt.want {
				if got.Errors[i].Location != want {
					t.Errorf("Errors[%d].Location = %q, want %q", i, got.Errors[i].Location, want)
				}
			}
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	w.Header().Set("X-Request-ID", "req-7")
	r := httptest.NewRequest(http.MethodPost, "/api/v1/views", nil)

	dto.WriteErrorResponse(w, r, domain.NewValidationError("kind", domain.MsgRequired))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if resp.RequestID != "req-7" {
		t.Errorf("RequestID = %q, want req-7", resp.RequestID)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.kind" {
		t.Fatalf("Errors = %+v, want one body.kind entry", resp.Errors)
	}
}
