package service

import (
	"fmt"

	"github.com/Iscgrou/repbill/internal/domain/invoice"
	"github.com/Iscgrou/repbill/internal/domain/representative"
	"github.com/Iscgrou/repbill/internal/domain/usage"
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/shopspring/decimal"
)

// PricingService deterministically turns one valid usage record plus the
// owning representative's pricing profile into invoice line items. It is a
// pure calculation with no storage access and no clock, so identical inputs
// always produce identical output.
type PricingService interface {
	// Calculate returns the chargeable line items and their total. A valid
	// record can still price to zero items when no applicable rate is
	// configured; callers treat that as "no invoice", not as an error.
	Calculate(record *usage.Record, profile representative.PricingProfile) ([]*invoice.LineItem, decimal.Decimal)
}

type pricingService struct{}

func NewPricingService() PricingService {
	return pricingService{}
}

func (pricingService) Calculate(record *usage.Record, profile representative.PricingProfile) ([]*invoice.LineItem, decimal.Decimal) {
	var items []*invoice.LineItem
	total := decimal.Zero

	for months := types.MinDurationMonths; months <= types.MaxDurationMonths; months++ {
		volume := record.LimitedVolumes[months-types.MinDurationMonths]
		if !volume.IsPositive() {
			continue
		}

		// a positive per-row override supersedes the profile rate
		unitPrice := profile.LimitedPriceFor(months)
		if record.PricePerGBOverride.IsPositive() {
			unitPrice = record.PricePerGBOverride
		}
		if !unitPrice.IsPositive() {
			continue
		}

		amount := volume.Mul(unitPrice)
		items = append(items, &invoice.LineItem{
			Description:      fmt.Sprintf("Limited subscription - %d month volume (GB)", months),
			Quantity:         volume,
			UnitPrice:        unitPrice,
			Amount:           amount,
			SubscriptionType: types.SubscriptionTypeLimited,
			DurationMonths:   months,
		})
		total = total.Add(amount)
	}

	for months := types.MinDurationMonths; months <= types.MaxDurationMonths; months++ {
		count := record.UnlimitedCounts[months-types.MinDurationMonths]
		if count <= 0 {
			continue
		}

		// duration multiplies the base monthly rate
		unitPrice := profile.UnlimitedPriceFor(months)
		if record.UnlimitedMonthlyOverride.IsPositive() {
			unitPrice = record.UnlimitedMonthlyOverride.Mul(decimal.NewFromInt(int64(months)))
		}
		if !unitPrice.IsPositive() {
			continue
		}

		quantity := decimal.NewFromInt(int64(count))
		amount := unitPrice.Mul(quantity)
		items = append(items, &invoice.LineItem{
			Description:      fmt.Sprintf("Unlimited subscription - %d month", months),
			Quantity:         quantity,
			UnitPrice:        unitPrice,
			Amount:           amount,
			SubscriptionType: types.SubscriptionTypeUnlimited,
			DurationMonths:   months,
		})
		total = total.Add(amount)
	}

	return items, total
}
