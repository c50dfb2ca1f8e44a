package representative

import (
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/shopspring/decimal"
)

// Representative is a reseller account that gets billed for the usage its
// customers generate. The profile it owns drives the pricing calculator.
type Representative struct {
	ID            string          `db:"id" json:"id"`
	AdminUsername string          `db:"admin_username" json:"admin_username"`
	FullName      string          `db:"full_name" json:"full_name,omitempty"`
	Phone         string          `db:"phone" json:"phone,omitempty"`
	TelegramID    string          `db:"telegram_id" json:"telegram_id,omitempty"`
	StoreName     string          `db:"store_name" json:"store_name,omitempty"`
	Pricing       PricingProfile  `json:"pricing"`
	types.BaseModel
}

func (r *Representative) TableName() string {
	return "representatives"
}

// PricingProfile holds the rates a representative is billed at. Limited
// tiers are independently priced per duration; unlimited subscriptions are
// priced as monthly rate times duration.
type PricingProfile struct {
	// LimitedPrices[t-1] is the per-GB rate for a t-month limited
	// subscription, t in 1..6
	LimitedPrices [types.DurationTierCount]decimal.Decimal `json:"limited_prices"`
	// UnlimitedMonthlyPrice is the base monthly rate for unlimited
	// subscriptions
	UnlimitedMonthlyPrice decimal.Decimal `json:"unlimited_monthly_price"`
}

// LimitedPriceFor returns the per-GB rate for the given duration in months,
// or zero when the duration is out of range.
func (p PricingProfile) LimitedPriceFor(months int) decimal.Decimal {
	if !types.ValidDurationMonths(months) {
		return decimal.Zero
	}
	return p.LimitedPrices[months-types.MinDurationMonths]
}

// UnlimitedPriceFor returns the unit price for an unlimited subscription of
// the given duration: monthly rate multiplied by the number of months.
func (p PricingProfile) UnlimitedPriceFor(months int) decimal.Decimal {
	if !types.ValidDurationMonths(months) {
		return decimal.Zero
	}
	return p.UnlimitedMonthlyPrice.Mul(decimal.NewFromInt(int64(months)))
}

// Configured reports whether any pricing dimension is set to a positive
// rate. An unconfigured profile yields zero line items for every record,
// which the import pipeline counts as skipped rather than failed.
func (p PricingProfile) Configured() bool {
	for _, price := range p.LimitedPrices {
		if price.IsPositive() {
			return true
		}
	}
	return p.UnlimitedMonthlyPrice.IsPositive()
}
