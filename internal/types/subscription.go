package types

import (
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/samber/lo"
)

// SubscriptionType tags the billing model a line item was priced under
type SubscriptionType string

const (
	// SubscriptionTypeLimited is volume-metered (per-GB), independently
	// rated for each duration tier
	SubscriptionTypeLimited SubscriptionType = "limited"
	// SubscriptionTypeUnlimited is flat-rate, priced as monthly rate
	// multiplied by the duration in months
	SubscriptionTypeUnlimited SubscriptionType = "unlimited"
)

func (t SubscriptionType) String() string {
	return string(t)
}

func (t SubscriptionType) Validate() error {
	allowed := []SubscriptionType{
		SubscriptionTypeLimited,
		SubscriptionTypeUnlimited,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid subscription type").
			WithHint("Please provide a valid subscription type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Subscriptions are sold in whole-month durations from 1 to 6 months.
const (
	MinDurationMonths = 1
	MaxDurationMonths = 6
	DurationTierCount = MaxDurationMonths - MinDurationMonths + 1
)

// ValidDurationMonths reports whether months falls in the sellable range
func ValidDurationMonths(months int) bool {
	return months >= MinDurationMonths && months <= MaxDurationMonths
}
