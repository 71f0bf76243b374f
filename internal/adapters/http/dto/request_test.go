package dto_test

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/merchant"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestOpenViewRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.OpenViewRequest
		wantField string
	}{
		{name: "minimal", req: dto.OpenViewRequest{Kind: "distributed"}},
		{
			name: "all fields",
			req: dto.OpenViewRequest{
				Kind: "redeemed", PageSize: 25, Preset: "last-month", SearchType: "posId",
			},
		},
		{name: "custom dates", req: dto.OpenViewRequest{Kind: "redeemed", From: "2024-06-01", To: "2024-06-30"}},
		{name: "missing kind", req: dto.OpenViewRequest{}, wantField: "kind"},
		{name: "unknown kind", req: dto.OpenViewRequest{Kind: "refunds"}, wantField: "kind"},
		{name: "page size too large", req: dto.OpenViewRequest{Kind: "distributed", PageSize: 101}, wantField: "pageSize"},
		{name: "negative page size", req: dto.OpenViewRequest{Kind: "distributed", PageSize: -1}, wantField: "pageSize"},
		{name: "unknown preset", req: dto.OpenViewRequest{Kind: "distributed", Preset: "Fortnight"}, wantField: "preset"},
		{name: "bad date", req: dto.OpenViewRequest{Kind: "distributed", From: "01-06-2024"}, wantField: "from"},
		{name: "unknown search type", req: dto.OpenViewRequest{Kind: "distributed", SearchType: "email"}, wantField: "searchType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestOpenViewRequest_ToPort(t *testing.T) {
	t.Parallel()

	t.Run("preset and search type", func(t *testing.T) {
		t.Parallel()
		req := dto.OpenViewRequest{Kind: "redeemed", PageSize: 50, Preset: "LAST_MONTH", SearchType: "POSID"}
		got := req.ToPort()

		if got.Kind != points.KindRedeemed {
			t.Errorf("Kind = %q, want %q", got.Kind, points.KindRedeemed)
		}
		if got.PageSize != 50 {
			t.Errorf("PageSize = %d, want 50", got.PageSize)
		}
		if got.Preset != daterange.PresetLastMonth {
			t.Errorf("Preset = %q, want %q", got.Preset, daterange.PresetLastMonth)
		}
		if got.SearchField != query.SearchPOSID {
			t.Errorf("SearchField = %q, want %q", got.SearchField, query.SearchPOSID)
		}
		if got.Start != nil || got.End != nil {
			t.Errorf("Start, End = %v, %v, want nil for a non-custom preset", got.Start, got.End)
		}
	})

	t.Run("dates without preset select custom range", func(t *testing.T) {
		t.Parallel()
		req := dto.OpenViewRequest{Kind: "distributed", From: "2024-06-01"}
		got := req.ToPort()

		if got.Preset != daterange.PresetCustom {
			t.Errorf("Preset = %q, want %q", got.Preset, daterange.PresetCustom)
		}
		if got.Start == nil || daterange.FormatISO(*got.Start) != "2024-06-01" {
			t.Errorf("Start = %v, want 2024-06-01", got.Start)
		}
		if got.End != nil {
			t.Errorf("End = %v, want nil", got.End)
		}
	})

	t.Run("dates ignored for non-custom preset", func(t *testing.T) {
		t.Parallel()
		req := dto.OpenViewRequest{Kind: "distributed", Preset: "today", From: "2024-06-01", To: "2024-06-02"}
		got := req.ToPort()

		if got.Preset != daterange.PresetToday {
			t.Errorf("Preset = %q, want %q", got.Preset, daterange.PresetToday)
		}
		if got.Start != nil || got.End != nil {
			t.Errorf("Start, End = %v, %v, want nil", got.Start, got.End)
		}
	})
}

func TestActionRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.ActionRequest
		wantField string
	}{
		{name: "setPage", req: dto.ActionRequest{Type: "setPage", Page: intPtr(3)}},
		{name: "setPage zero", req: dto.ActionRequest{Type: "setPage", Page: intPtr(0)}},
		{name: "setPage missing page", req: dto.ActionRequest{Type: "setPage"}, wantField: "page"},
		{name: "setPage negative", req: dto.ActionRequest{Type: "setPage", Page: intPtr(-1)}, wantField: "page"},
		{name: "setPageSize", req: dto.ActionRequest{Type: "setPageSize", Size: intPtr(20)}},
		{name: "setPageSize missing", req: dto.ActionRequest{Type: "setPageSize"}, wantField: "size"},
		{name: "setPageSize too large", req: dto.ActionRequest{Type: "setPageSize", Size: intPtr(500)}, wantField: "size"},
		{name: "setSearchText empty clears", req: dto.ActionRequest{Type: "setSearchText", Text: stringPtr("")}},
		{name: "setSearchText missing", req: dto.ActionRequest{Type: "setSearchText"}, wantField: "text"},
		{name: "setSearchField", req: dto.ActionRequest{Type: "setSearchField", SearchType: "customerName"}},
		{name: "setSearchField missing", req: dto.ActionRequest{Type: "setSearchField"}, wantField: "searchType"},
		{name: "setSearchField unknown", req: dto.ActionRequest{Type: "setSearchField", SearchType: "email"}, wantField: "searchType"},
		{name: "setDateRangePreset", req: dto.ActionRequest{Type: "setDateRangePreset", Preset: "This Week"}},
		{name: "setDateRangePreset missing", req: dto.ActionRequest{Type: "setDateRangePreset"}, wantField: "preset"},
		{name: "setCustomDates partial", req: dto.ActionRequest{Type: "setCustomDates", From: "2024-06-01"}},
		{name: "setCustomDates bad date", req: dto.ActionRequest{Type: "setCustomDates", To: "June"}, wantField: "to"},
		{name: "settleSearch rejected", req: dto.ActionRequest{Type: "settleSearch", Text: stringPtr("x")}, wantField: "type"},
		{name: "missing type", req: dto.ActionRequest{}, wantField: "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestActionRequest_ToAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  dto.ActionRequest
		want query.Action
	}{
		{"page", dto.ActionRequest{Type: "setPage", Page: intPtr(2)}, query.SetPage{Page: 2}},
		{"size", dto.ActionRequest{Type: "setPageSize", Size: intPtr(25)}, query.SetPageSize{Size: 25}},
		{"text", dto.ActionRequest{Type: "setSearchText", Text: stringPtr("TX-1")}, query.SetSearchText{Text: "TX-1"}},
		{"field", dto.ActionRequest{Type: "setSearchField", SearchType: "posLocation"}, query.SetSearchField{Field: query.SearchPOSLocation}},
		{"preset", dto.ActionRequest{Type: "setDateRangePreset", Preset: "all-time"}, query.SetPreset{Preset: daterange.PresetAllTime}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.req.ToAction(); got != tt.want {
				t.Errorf("ToAction() = %#v, want %#v", got, tt.want)
			}
		})
	}

	t.Run("custom dates", func(t *testing.T) {
		t.Parallel()
		req := dto.ActionRequest{Type: "setCustomDates", From: "2024-06-10"}
		got, ok := req.ToAction().(query.SetCustomDates)
		if !ok {
			t.Fatalf("ToAction() type = %T, want query.SetCustomDates", req.ToAction())
		}
		if got.Start == nil || daterange.FormatISO(*got.Start) != "2024-06-10" {
			t.Errorf("Start = %v, want 2024-06-10", got.Start)
		}
		if got.End != nil {
			t.Errorf("End = %v, want nil", got.End)
		}
	})
}

func TestParseListQuery(t *testing.T) {
	t.Parallel()

	t.Run("full query", func(t *testing.T) {
		t.Parallel()
		v := url.Values{
			"preset":     {"last month"},
			"page":       {"2"},
			"size":       {"25"},
			"search":     {" Ada "},
			"searchType": {"customerName"},
		}
		q, err := dto.ParseListQuery(v)
		if err != nil {
			t.Fatalf("ParseListQuery() error = %v", err)
		}

		s := q.State(query.DefaultPageSize)
		if s.Page != 2 {
			t.Errorf("Page = %d, want 2", s.Page)
		}
		if s.PageSize != 25 {
			t.Errorf("PageSize = %d, want 25", s.PageSize)
		}
		if s.Search() != "Ada" {
			t.Errorf("Search() = %q, want %q", s.Search(), "Ada")
		}
		if s.Debouncing() {
			t.Error("Debouncing() = true, want false for a stateless query")
		}
		if s.SearchField != query.SearchCustomerName {
			t.Errorf("SearchField = %q, want %q", s.SearchField, query.SearchCustomerName)
		}
		if s.Dates.Preset != daterange.PresetLastMonth {
			t.Errorf("Preset = %q, want %q", s.Dates.Preset, daterange.PresetLastMonth)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		q, err := dto.ParseListQuery(url.Values{})
		if err != nil {
			t.Fatalf("ParseListQuery() error = %v", err)
		}
		s := q.State(15)
		if s.PageSize != 15 {
			t.Errorf("PageSize = %d, want 15", s.PageSize)
		}
		if s.SearchField != query.DefaultSearchField {
			t.Errorf("SearchField = %q, want %q", s.SearchField, query.DefaultSearchField)
		}
		if !s.ShouldFetch() {
			t.Error("ShouldFetch() = false, want true")
		}
	})

	t.Run("half custom range does not fetch", func(t *testing.T) {
		t.Parallel()
		q, err := dto.ParseListQuery(url.Values{"from": {"2024-06-01"}})
		if err != nil {
			t.Fatalf("ParseListQuery() error = %v", err)
		}
		if got := q.Selection().Preset; got != daterange.PresetCustom {
			t.Errorf("Preset = %q, want %q", got, daterange.PresetCustom)
		}
		if q.State(10).ShouldFetch() {
			t.Error("ShouldFetch() = true, want false")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			values    url.Values
			wantField string
		}{
			{url.Values{"page": {"two"}}, "page"},
			{url.Values{"page": {"-1"}}, "page"},
			{url.Values{"size": {"1000"}}, "size"},
			{url.Values{"limit": {"x"}}, "limit"},
			{url.Values{"preset": {"next week"}}, "preset"},
			{url.Values{"searchType": {"email"}}, "searchType"},
			{url.Values{"to": {"30/06/2024"}}, "to"},
		}
		for _, tt := range tests {
			_, err := dto.ParseListQuery(tt.values)
			requireValidationField(t, err, tt.wantField)
		}
	})
}

func TestRewardConfigRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		want      merchant.RewardConfig
		wantField string
	}{
		{
			name: "numeric cap",
			body: `{"receiveMethod":"INSTANT","rewardCap":5000,"pointExpiration":"7-days"}`,
			want: merchant.RewardConfig{ReceiveMethod: merchant.ReceiveInstant, RewardCap: 5000, Expiration: merchant.Expire7Days},
		},
		{
			name: "grouped string cap and lower-case method",
			body: `{"receiveMethod":"later","rewardCap":"10,000","pointExpiration":"10000days"}`,
			want: merchant.RewardConfig{ReceiveMethod: merchant.ReceiveLater, RewardCap: 10000, Expiration: merchant.ExpireNever},
		},
		{name: "missing cap", body: `{"receiveMethod":"INSTANT","pointExpiration":"7-days"}`, wantField: "rewardCap"},
		{name: "zero cap", body: `{"receiveMethod":"INSTANT","rewardCap":0,"pointExpiration":"7-days"}`, wantField: "rewardCap"},
		{name: "fractional cap", body: `{"receiveMethod":"INSTANT","rewardCap":"12.5","pointExpiration":"7-days"}`, wantField: "rewardCap"},
		{name: "bad method", body: `{"receiveMethod":"WEEKLY","rewardCap":10,"pointExpiration":"7-days"}`, wantField: "receiveMethod"},
		{name: "bad expiration", body: `{"receiveMethod":"INSTANT","rewardCap":10,"pointExpiration":"2-days"}`, wantField: "pointExpiration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var req dto.RewardConfigRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}

			err := req.Validate()
			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if got := req.ToDomain(); got != tt.want {
				t.Errorf("ToDomain() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
