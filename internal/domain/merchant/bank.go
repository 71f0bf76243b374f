// Package merchant holds the merchant-level views of the dashboard: the
// payout bank account, the transaction summary cards, the reward
// configuration and the customer ranking.
package merchant

import (
	"fmt"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
)

// BankAccount is one payout account registered by the merchant.
type BankAccount struct {
	BankName          string
	AccountNumber     string
	AccountHolderName string
	Primary           bool
	// Active is nil when the API did not report it.
	Active *bool
}

// Profile is the part of the merchant profile the dashboard shows.
type Profile struct {
	ID           string
	BusinessName string
	Email        string
	Banks        []BankAccount
}

// PrimaryBank returns the first account flagged primary, or the first
// account when none is. It returns domain.ErrNotFound when the merchant has
// no accounts.
func (p Profile) PrimaryBank() (BankAccount, error) {
	if len(p.Banks) == 0 {
		return BankAccount{}, fmt.Errorf("merchant %s bank account: %w", p.ID, domain.ErrNotFound)
	}
	for _, b := range p.Banks {
		if b.Primary {
			return b, nil
		}
	}
	return p.Banks[0], nil
}

// MaskedAccountNumber hides all but the last four digits.
func (b BankAccount) MaskedAccountNumber() string {
	n := b.AccountNumber
	if len(n) <= 4 {
		return n
	}
	masked := make([]byte, len(n))
	for i := range n {
		if i < len(n)-4 {
			masked[i] = '*'
		} else {
			masked[i] = n[i]
		}
	}
	return string(masked)
}

// Status is the account's activity label, empty when unknown.
func (b BankAccount) Status() string {
	switch {
	case b.Active == nil:
		return ""
	case *b.Active:
		return "Active"
	default:
		return "Inactive"
	}
}
