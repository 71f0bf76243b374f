package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
)

func merchantResponse(status int, contentType, body string) *http.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &http.Response{StatusCode: status, Header: h, Body: io.NopCloser(strings.NewReader(body))}
}

func TestTranslateHTTPError(t *testing.T) {
	t.Parallel()

	const (
		problem  = "application/problem+json"
		envelope = "application/json; charset=utf-8"
	)

	tests := []struct {
		name       string
		resp       *http.Response
		wantErr    error
		wantSubstr string
		wantFields map[string]string
	}{
		{name: "404", resp: merchantResponse(http.StatusNotFound, "", ""), wantErr: domain.ErrNotFound, wantSubstr: "Not Found"},
		{name: "400 without fields", resp: merchantResponse(http.StatusBadRequest, "", ""), wantErr: domain.ErrValidation},
		{name: "422", resp: merchantResponse(http.StatusUnprocessableEntity, "", ""), wantErr: domain.ErrValidation},
		{name: "409", resp: merchantResponse(http.StatusConflict, "text/plain", "busy"), wantErr: domain.ErrConflict, wantSubstr: "Conflict"},
		{name: "401 expired session", resp: merchantResponse(http.StatusUnauthorized, "", ""), wantErr: domain.ErrForbidden},
		{name: "403", resp: merchantResponse(http.StatusForbidden, "", ""), wantErr: domain.ErrForbidden},
		{name: "429", resp: merchantResponse(http.StatusTooManyRequests, "", ""), wantErr: domain.ErrUnavailable},
		{name: "500", resp: merchantResponse(http.StatusInternalServerError, "", ""), wantErr: domain.ErrUnavailable},
		{name: "503", resp: merchantResponse(http.StatusServiceUnavailable, "", ""), wantErr: domain.ErrUnavailable},
		{
			name:       "problem detail",
			resp:       merchantResponse(http.StatusNotFound, problem, `{"type":"about:blank","status":404,"detail":"reward configuration not found"}`),
			wantErr:    domain.ErrNotFound,
			wantSubstr: "reward configuration not found",
		},
		{
			name:       "problem fields lose their location prefix",
			resp:       merchantResponse(http.StatusBadRequest, problem, `{"detail":"validation failed","errors":[{"location":"body.rewardCap","message":"is required"},{"location":"query.searchType","message":"is invalid"}]}`),
			wantErr:    domain.ErrValidation,
			wantFields: map[string]string{"rewardCap": "is required", "searchType": "is invalid"},
		},
		{
			name:       "envelope message",
			resp:       merchantResponse(http.StatusForbidden, envelope, `{"status":403,"message":"merchant account suspended","data":null}`),
			wantErr:    domain.ErrForbidden,
			wantSubstr: "merchant account suspended",
		},
		{
			name:       "envelope field errors",
			resp:       merchantResponse(http.StatusBadRequest, envelope, `{"message":"bad request","errors":[{"field":"fromDate","message":"must be dd-MM-yyyy"}]}`),
			wantErr:    domain.ErrValidation,
			wantSubstr: "fromDate: must be dd-MM-yyyy",
			wantFields: map[string]string{"fromDate": "must be dd-MM-yyyy"},
		},
		{
			name:       "json body with html content type is ignored",
			resp:       merchantResponse(http.StatusBadGateway, "text/html", `{"detail":"hidden"}`),
			wantErr:    domain.ErrUnavailable,
			wantSubstr: "Bad Gateway",
		},
		{
			name:       "malformed json",
			resp:       merchantResponse(http.StatusNotFound, problem, `{"detail":`),
			wantErr:    domain.ErrNotFound,
			wantSubstr: "Not Found",
		},
		{
			name:    "nil body",
			resp:    &http.Response{StatusCode: http.StatusNotFound, Header: http.Header{"Content-Type": []string{problem}}},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateHTTPError(tt.resp)

			if !errors.Is(got, tt.wantErr) {
				t.Fatalf("TranslateHTTPError() = %v, want errors.Is %v", got, tt.wantErr)
			}
			if !strings.Contains(got.Error(), tt.wantSubstr) {
				t.Errorf("error = %q, want substring %q", got.Error(), tt.wantSubstr)
			}
			if tt.wantFields == nil {
				return
			}
			var verr *domain.ValidationError
			if !errors.As(got, &verr) {
				t.Fatalf("error = %T, want *domain.ValidationError", got)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("Fields = %v, want %v", verr.Fields, tt.wantFields)
			}
			for field, msg := range tt.wantFields {
				if verr.Fields[field] != msg {
					t.Errorf("Fields[%s] = %q, want %q", field, verr.Fields[field], msg)
				}
			}
		})
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	got := TranslateHTTPError(merchantResponse(http.StatusTeapot, "", ""))

	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict, domain.ErrForbidden, domain.ErrUnavailable} {
		if errors.Is(got, sentinel) {
			t.Errorf("TranslateHTTPError(418) matches %v, want no domain sentinel", sentinel)
		}
	}
	if !strings.Contains(got.Error(), "418") {
		t.Errorf("error = %q, want the status code", got.Error())
	}
}
