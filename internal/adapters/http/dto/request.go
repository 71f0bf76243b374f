// Package dto defines the JSON request and response shapes of the HTTP API
// and their mapping to domain types.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/merchant"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

// OpenViewRequest is the body of POST /api/v1/views.
type OpenViewRequest struct {
	Kind       string `json:"kind" validate:"required,listkind"`
	PageSize   int    `json:"pageSize" validate:"gte=0,lte=100"`
	Preset     string `json:"preset" validate:"omitempty,preset"`
	From       string `json:"from" validate:"omitempty,isodate"`
	To         string `json:"to" validate:"omitempty,isodate"`
	SearchType string `json:"searchType" validate:"omitempty,searchfield"`
}

// Validate checks the request fields.
func (r *OpenViewRequest) Validate() error {
	return validateStruct(r)
}

// ToPort converts a validated request. Dates given without a preset select
// Custom Range.
func (r *OpenViewRequest) ToPort() ports.OpenViewRequest {
	sel := selection(r.Preset, r.From, r.To)
	req := ports.OpenViewRequest{
		Kind:     points.Kind(r.Kind),
		PageSize: r.PageSize,
		Preset:   sel.Preset,
		Start:    sel.Start,
		End:      sel.End,
	}
	if r.SearchType != "" {
		req.SearchField, _ = query.ParseSearchField(r.SearchType)
	}
	return req
}

// ActionRequest is the body of POST /api/v1/views/{id}/actions: one reducer
// action named by Type, with the payload field that action needs.
// settleSearch is not accepted; the view settles typed text itself.
type ActionRequest struct {
	Type       string  `json:"type" validate:"required,oneof=setPage setPageSize setSearchText setSearchField setDateRangePreset setCustomDates"`
	Page       *int    `json:"page" validate:"omitempty,gte=0"`
	Size       *int    `json:"size" validate:"omitempty,gte=1,lte=100"`
	Text       *string `json:"text" validate:"omitempty,max=200"`
	SearchType string  `json:"searchType" validate:"omitempty,searchfield"`
	Preset     string  `json:"preset" validate:"omitempty,preset"`
	From       string  `json:"from" validate:"omitempty,isodate"`
	To         string  `json:"to" validate:"omitempty,isodate"`
}

// Validate checks the field tags and that the payload for Type is present.
func (r *ActionRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}

	switch r.Type {
	case query.KindSetPage:
		if r.Page == nil {
			return domain.NewValidationError("page", domain.MsgRequired)
		}
	case query.KindSetPageSize:
		if r.Size == nil {
			return domain.NewValidationError("size", domain.MsgRequired)
		}
	case query.KindSetSearchText:
		if r.Text == nil {
			return domain.NewValidationError("text", domain.MsgRequired)
		}
	case query.KindSetSearchField:
		if r.SearchType == "" {
			return domain.NewValidationError("searchType", domain.MsgRequired)
		}
	case query.KindSetPreset:
		if r.Preset == "" {
			return domain.NewValidationError("preset", domain.MsgRequired)
		}
	}
	return nil
}

// ToAction converts a validated request.
func (r *ActionRequest) ToAction() query.Action {
	switch r.Type {
	case query.KindSetPage:
		return query.SetPage{Page: *r.Page}
	case query.KindSetPageSize:
		return query.SetPageSize{Size: *r.Size}
	case query.KindSetSearchText:
		return query.SetSearchText{Text: *r.Text}
	case query.KindSetSearchField:
		field, _ := query.ParseSearchField(r.SearchType)
		return query.SetSearchField{Field: field}
	case query.KindSetPreset:
		preset, _ := daterange.ParsePreset(r.Preset)
		return query.SetPreset{Preset: preset}
	default:
		return query.SetCustomDates{Start: parseDate(r.From), End: parseDate(r.To)}
	}
}

// ListQuery is the query string shared by the stateless list and merchant
// card endpoints.
type ListQuery struct {
	Preset     string `json:"preset" validate:"omitempty,preset"`
	From       string `json:"from" validate:"omitempty,isodate"`
	To         string `json:"to" validate:"omitempty,isodate"`
	Page       int    `json:"page" validate:"gte=0"`
	Size       int    `json:"size" validate:"gte=0,lte=100"`
	Search     string `json:"search" validate:"max=200"`
	SearchType string `json:"searchType" validate:"omitempty,searchfield"`
	Limit      int    `json:"limit" validate:"gte=0,lte=100"`
}

// ParseListQuery reads and validates a ListQuery from v.
func ParseListQuery(v url.Values) (ListQuery, error) {
	q := ListQuery{
		Preset:     v.Get("preset"),
		From:       v.Get("from"),
		To:         v.Get("to"),
		Search:     v.Get("search"),
		SearchType: v.Get("searchType"),
	}

	verr := &domain.ValidationError{}
	for name, dst := range map[string]*int{"page": &q.Page, "size": &q.Size, "limit": &q.Limit} {
		raw := v.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			verr.Add(name, "must be a valid integer")
			continue
		}
		*dst = n
	}
	if err := verr.OrNil(); err != nil {
		return ListQuery{}, err
	}

	if err := validateStruct(&q); err != nil {
		return ListQuery{}, err
	}
	return q, nil
}

// Selection returns the date selection. Dates given without a preset
// select Custom Range.
func (q ListQuery) Selection() daterange.Selection {
	return selection(q.Preset, q.From, q.To)
}

// State builds the query state through the reducer, as a view would after
// the same actions. defaultSize applies when no size was given.
func (q ListQuery) State(defaultSize int) query.State {
	size := q.Size
	if size == 0 {
		size = defaultSize
	}
	s := query.NewState(size)

	sel := q.Selection()
	actions := []query.Action{
		query.SetPreset{Preset: sel.Preset},
		query.SetCustomDates{Start: sel.Start, End: sel.End},
	}
	if q.SearchType != "" {
		field, _ := query.ParseSearchField(q.SearchType)
		actions = append(actions, query.SetSearchField{Field: field})
	}
	actions = append(actions,
		query.SetSearchText{Text: q.Search},
		query.SettleSearch{Text: q.Search},
		query.SetPage{Page: q.Page},
	)
	for _, a := range actions {
		s = query.Reduce(s, a)
	}
	return s
}

// RewardConfigRequest is the body of PUT /api/v1/merchant/reward-config.
// rewardCap may be a JSON number or a comma-grouped string such as
// "10,000".
type RewardConfigRequest struct {
	ReceiveMethod   string          `json:"receiveMethod" validate:"required,receivemethod"`
	RewardCap       json.RawMessage `json:"rewardCap"`
	PointExpiration string          `json:"pointExpiration" validate:"required,expiration"`

	rewardCap int64
}

// Validate checks the field tags and parses rewardCap.
func (r *RewardConfigRequest) Validate() error {
	verr := &domain.ValidationError{}
	if err := validateStruct(r); err != nil && !verr.Merge(err) {
		return err
	}

	n, err := parseRewardCap(r.RewardCap)
	switch {
	case err != nil:
		if !verr.Merge(err) {
			return err
		}
	case n <= 0:
		verr.Add("rewardCap", fmt.Sprintf("must be positive, got %d", n))
	default:
		r.rewardCap = n
	}
	return verr.OrNil()
}

// ToDomain converts a validated request.
func (r *RewardConfigRequest) ToDomain() merchant.RewardConfig {
	return merchant.RewardConfig{
		ReceiveMethod: merchant.ReceiveMethod(strings.ToUpper(r.ReceiveMethod)),
		RewardCap:     r.rewardCap,
		Expiration:    merchant.Expiration(r.PointExpiration),
	}
}

func parseRewardCap(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, domain.NewValidationError("rewardCap", domain.MsgRequired)
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, domain.NewValidationError("rewardCap", domain.MsgInvalid)
		}
		return merchant.ParseRewardCap(s)
	}
	return merchant.ParseRewardCap(string(raw))
}

// selection maps validated preset and ISO date strings to a Selection.
func selection(presetName, from, to string) daterange.Selection {
	preset, _ := daterange.ParsePreset(presetName)
	if preset == daterange.PresetNone && (from != "" || to != "") {
		preset = daterange.PresetCustom
	}
	if preset != daterange.PresetCustom {
		return daterange.Selection{Preset: preset}
	}
	return daterange.Custom(parseDate(from), parseDate(to))
}

// parseDate reads a validated YYYY-MM-DD date as local midnight; empty is nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := daterange.ParseISO(s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}
