package usage

import (
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/shopspring/decimal"
)

// Record is the normalized unit of usage-reporting input. Records are
// ephemeral: they exist only for the duration of one import operation.
type Record struct {
	AdminUsername string `json:"admin_username"`
	FullName      string `json:"full_name,omitempty"`
	Phone         string `json:"phone,omitempty"`
	TelegramID    string `json:"telegram_id,omitempty"`
	StoreName     string `json:"store_name,omitempty"`

	// Row-level rate overrides carried from the tabular source. Zero means
	// no override; the representative's pricing profile applies.
	PricePerGBOverride       decimal.Decimal `json:"price_per_gb_override"`
	UnlimitedMonthlyOverride decimal.Decimal `json:"unlimited_monthly_override"`

	// LimitedVolumes[t-1] is the GB volume sold on t-month limited
	// subscriptions; UnlimitedCounts[t-1] is the number of t-month
	// unlimited subscriptions sold.
	LimitedVolumes  [types.DurationTierCount]decimal.Decimal `json:"limited_volumes"`
	UnlimitedCounts [types.DurationTierCount]int             `json:"unlimited_counts"`
}

// HasUsage reports whether any of the 12 quantity slots is greater than zero
func (r *Record) HasUsage() bool {
	for _, v := range r.LimitedVolumes {
		if v.IsPositive() {
			return true
		}
	}
	for _, c := range r.UnlimitedCounts {
		if c > 0 {
			return true
		}
	}
	return false
}

// Validate applies the per-record business rules. Coercion problems found
// during normalization are checked by the batch validator before this runs.
func (r *Record) Validate() error {
	if r.AdminUsername == "" {
		return ierr.NewError("admin username required").
			WithHint("admin username required").
			Mark(ierr.ErrValidation)
	}

	for _, v := range r.LimitedVolumes {
		if v.IsNegative() {
			return ierr.NewError("negative limited volume").
				WithHint("must be a valid non-negative number").
				Mark(ierr.ErrValidation)
		}
	}
	for _, c := range r.UnlimitedCounts {
		if c < 0 {
			return ierr.NewError("negative unlimited count").
				WithHint("must be a valid non-negative number").
				Mark(ierr.ErrValidation)
		}
	}

	if !r.HasUsage() {
		return ierr.NewError("record has no usage").
			WithHint("no subscription data present").
			Mark(ierr.ErrValidation)
	}

	return nil
}
