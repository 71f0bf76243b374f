package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
)

// Params are the outbound query parameters for one list fetch.
type Params struct {
	From        string
	To          string
	Page        int
	Size        int
	Search      string
	SearchField SearchField
}

// BuildParams derives the outbound parameters from a state and its
// effective range.
func BuildParams(s State, r daterange.Range) Params {
	from, to := r.Wire()
	p := Params{
		From: from,
		To:   to,
		Page: s.Page,
		Size: s.PageSize,
	}
	if search := s.Search(); search != "" {
		p.Search = search
		p.SearchField = s.SearchField
	}
	return p
}

// Values returns the parameters as url.Values. search and searchType are
// present only when a search is set.
func (p Params) Values() url.Values {
	v := url.Values{}
	for _, kv := range p.pairs() {
		v.Set(kv[0], kv[1])
	}
	return v
}

// Encode renders the query string in the fixed order fromDate, toDate,
// page, size, search, searchType. url.Values.Encode would sort the keys.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p.pairs() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[1]))
	}
	return b.String()
}

// Key identifies the request for deduplication; two Params with the same
// Key produce the same downstream request.
func (p Params) Key() string {
	return p.Encode()
}

func (p Params) pairs() [][2]string {
	pairs := [][2]string{
		{"fromDate", p.From},
		{"toDate", p.To},
		{"page", strconv.Itoa(p.Page)},
		{"size", strconv.Itoa(p.Size)},
	}
	if p.Search != "" {
		pairs = append(pairs, [2]string{"search", p.Search})
		if p.SearchField != "" {
			pairs = append(pairs, [2]string{"searchType", string(p.SearchField)})
		}
	}
	return pairs
}
