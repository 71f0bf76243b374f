package merchant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
)

// ReceiveMethod is when customers receive earned points.
type ReceiveMethod string

const (
	ReceiveInstant ReceiveMethod = "INSTANT"
	ReceiveLater   ReceiveMethod = "LATER"
)

// IsValid returns true if the method is one of the defined constants.
func (m ReceiveMethod) IsValid() bool {
	return m == ReceiveInstant || m == ReceiveLater
}

// Expiration is how long issued points stay valid.
type Expiration string

const (
	Expire1Day   Expiration = "1-day"
	Expire3Days  Expiration = "3-days"
	Expire7Days  Expiration = "7-days"
	Expire14Days Expiration = "14-days"
	Expire30Days Expiration = "30-days"
	ExpireNever  Expiration = "10000days"
)

// Expirations returns the expiration options in selector order.
func Expirations() []Expiration {
	return []Expiration{Expire1Day, Expire3Days, Expire7Days, Expire14Days, Expire30Days, ExpireNever}
}

// IsValid returns true if the expiration is one of the defined constants.
func (e Expiration) IsValid() bool {
	for _, v := range Expirations() {
		if e == v {
			return true
		}
	}
	return false
}

// Days is the expiration window in days.
func (e Expiration) Days() int {
	n, err := strconv.Atoi(strings.TrimRight(string(e), "-adys"))
	if err != nil {
		return 0
	}
	return n
}

// Label is the selector text.
func (e Expiration) Label() string {
	switch e {
	case ExpireNever:
		return "Never"
	case Expire1Day:
		return "1 Day"
	default:
		return fmt.Sprintf("%d Days", e.Days())
	}
}

// RewardConfig is the merchant's point reward programme.
type RewardConfig struct {
	ReceiveMethod ReceiveMethod
	// RewardCap is the most points a customer can earn per transaction.
	RewardCap  int64
	Expiration Expiration
}

// DefaultRewardConfig is used when the merchant has not configured rewards.
func DefaultRewardConfig() RewardConfig {
	return RewardConfig{ReceiveMethod: ReceiveInstant, Expiration: ExpireNever}
}

// Validate checks business rules for the reward configuration.
func (c RewardConfig) Validate() error {
	verr := &domain.ValidationError{}
	if !c.ReceiveMethod.IsValid() {
		verr.Add("receiveMethod", fmt.Sprintf("invalid: %q", c.ReceiveMethod))
	}
	if c.RewardCap <= 0 {
		verr.Add("rewardCap", fmt.Sprintf("must be positive, got %d", c.RewardCap))
	}
	if !c.Expiration.IsValid() {
		verr.Add("pointExpiration", fmt.Sprintf("invalid: %q", c.Expiration))
	}
	return verr.OrNil()
}

// ParseRewardCap accepts comma-grouped input such as "10,000".
func ParseRewardCap(s string) (int64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if clean == "" {
		return 0, domain.NewValidationError("rewardCap", domain.MsgRequired)
	}
	n, err := strconv.ParseInt(clean, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("rewardCap", fmt.Sprintf("not a whole number: %q", s))
	}
	return n, nil
}
