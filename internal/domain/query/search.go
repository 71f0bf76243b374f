package query

import (
	"fmt"
	"strings"
)

// SearchField selects which transaction attribute the search text matches.
type SearchField string

const (
	SearchTransactionReference SearchField = "transactionReference"
	SearchPOSID                SearchField = "posId"
	SearchCustomerName         SearchField = "customerName"
	SearchPOSLocation          SearchField = "posLocation"
)

// DefaultSearchField is the field selected when a view opens.
const DefaultSearchField = SearchTransactionReference

// SearchFields returns the supported fields in selector order.
func SearchFields() []SearchField {
	return []SearchField{
		SearchTransactionReference,
		SearchPOSID,
		SearchCustomerName,
		SearchPOSLocation,
	}
}

// IsValid returns true if the field is one of the defined constants.
func (f SearchField) IsValid() bool {
	switch f {
	case SearchTransactionReference, SearchPOSID, SearchCustomerName, SearchPOSLocation:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (f SearchField) String() string {
	return string(f)
}

// Label is the human-readable name shown in the field selector.
func (f SearchField) Label() string {
	switch f {
	case SearchTransactionReference:
		return "Transaction Reference"
	case SearchPOSID:
		return "POS ID"
	case SearchCustomerName:
		return "Customer Name"
	case SearchPOSLocation:
		return "POS Location"
	default:
		return string(f)
	}
}

// Placeholder is the search box hint for the field.
func (f SearchField) Placeholder() string {
	return "Search by " + strings.ToLower(f.Label()) + "..."
}

// ParseSearchField accepts the wire name of a field, case-insensitively.
// An empty string yields DefaultSearchField.
func ParseSearchField(s string) (SearchField, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultSearchField, nil
	}
	for _, f := range SearchFields() {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown search field %q", s)
}
