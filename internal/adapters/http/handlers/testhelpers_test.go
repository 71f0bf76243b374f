package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/view"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

const testViewID = "9b2f6a0e-1c1d-4a53-9f65-2b7f3d8d2c11"

var june15 = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withViewID(r *http.Request) *http.Request {
	return withChiParams(r, map[string]string{"id": testViewID})
}

func testViewInfo(kind points.Kind) ports.ViewInfo {
	return ports.ViewInfo{ID: testViewID, Kind: kind, CreatedAt: june15}
}

func testRange() query.Range {
	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	return query.Range{Range: daterange.Range{From: day, To: day}}
}

// loadedMeta is a settled view on page 0 with one page of results.
func loadedMeta() view.Meta {
	state := query.NewState(10)
	r := testRange()
	return view.Meta{
		Name:        points.KindDistributed.String(),
		Version:     3,
		Status:      view.StatusLoaded,
		State:       state,
		ShouldFetch: true,
		Range:       r,
		Params:      query.BuildParams(state, r.Range),
		Pagination:  points.Pagination{TotalPages: 2, TotalElements: 12, CurrentPageElements: 10, PageSize: 10},
		UpdatedAt:   june15,
	}
}

func testDistributions() []points.Distribution {
	return []points.Distribution{
		{
			TransactionReference: "TX-1001",
			POSID:                "POS-7",
			CustomerName:         "Ada Obi",
			BranchName:           "Lekki",
			Type:                 points.TypeIssue,
			TotalAmountPaid:      1500,
			IssuedPoints:         15,
			Timestamp:            june15,
		},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
