package service

import (
	"testing"

	"github.com/Iscgrou/repbill/internal/domain/representative"
	"github.com/Iscgrou/repbill/internal/domain/usage"
	"github.com/Iscgrou/repbill/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullProfile() representative.PricingProfile {
	var p representative.PricingProfile
	for i := range p.LimitedPrices {
		p.LimitedPrices[i] = decimal.NewFromInt(int64(1000 * (i + 1)))
	}
	p.UnlimitedMonthlyPrice = decimal.NewFromInt(40000)
	return p
}

func TestPricingLimitedSubscription(t *testing.T) {
	svc := NewPricingService()

	rec := &usage.Record{AdminUsername: "rep1"}
	rec.LimitedVolumes[2] = decimal.NewFromInt(5) // 5 GB on the 3 month tier

	items, total := svc.Calculate(rec, fullProfile())
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, types.SubscriptionTypeLimited, item.SubscriptionType)
	assert.Equal(t, 3, item.DurationMonths)
	assert.True(t, item.Quantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(3000)))
	assert.True(t, item.Amount.Equal(decimal.NewFromInt(15000)), "5 GB * 3000 per GB")
	assert.True(t, total.Equal(decimal.NewFromInt(15000)))
}

func TestPricingUnlimitedSubscription(t *testing.T) {
	svc := NewPricingService()

	rec := &usage.Record{AdminUsername: "rep1"}
	rec.UnlimitedCounts[2] = 2 // two 3 month unlimited subscriptions

	items, total := svc.Calculate(rec, fullProfile())
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, types.SubscriptionTypeUnlimited, item.SubscriptionType)
	assert.Equal(t, 3, item.DurationMonths)
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(120000)), "monthly 40000 * 3 months")
	assert.True(t, item.Amount.Equal(decimal.NewFromInt(240000)), "2 * 120000")
	assert.True(t, total.Equal(decimal.NewFromInt(240000)))
}

func TestPricingMixedUsageSumsAllTiers(t *testing.T) {
	svc := NewPricingService()

	rec := &usage.Record{AdminUsername: "rep1"}
	rec.LimitedVolumes[0] = decimal.NewFromInt(10) // 10 GB * 1000
	rec.LimitedVolumes[5] = decimal.NewFromInt(1)  // 1 GB * 6000
	rec.UnlimitedCounts[0] = 1                     // 1 * 40000

	items, total := svc.Calculate(rec, fullProfile())
	assert.Len(t, items, 3)
	assert.True(t, total.Equal(decimal.NewFromInt(56000)))
}

func TestPricingFractionalVolume(t *testing.T) {
	svc := NewPricingService()

	rec := &usage.Record{AdminUsername: "rep1"}
	rec.LimitedVolumes[0] = decimal.RequireFromString("2.5")

	items, total := svc.Calculate(rec, fullProfile())
	require.Len(t, items, 1)
	assert.True(t, total.Equal(decimal.NewFromInt(2500)), "2.5 GB * 1000, exact decimal arithmetic")
	assert.True(t, items[0].Amount.Equal(items[0].Quantity.Mul(items[0].UnitPrice)))
}

func TestPricingUnconfiguredProfileYieldsNothing(t *testing.T) {
	svc := NewPricingService()

	rec := &usage.Record{AdminUsername: "rep1"}
	rec.LimitedVolumes[0] = decimal.NewFromInt(10)
	rec.UnlimitedCounts[0] = 2

	items, total := svc.Calculate(rec, representative.PricingProfile{})
	assert.Empty(t, items)
	assert.True(t, total.IsZero())
}

func TestPricingRowOverridesSupersedeProfile(t *testing.T) {
	svc := NewPricingService()

	rec := &usage.Record{AdminUsername: "rep1"}
	rec.LimitedVolumes[0] = decimal.NewFromInt(4)
	rec.UnlimitedCounts[1] = 1
	rec.PricePerGBOverride = decimal.NewFromInt(2000)
	rec.UnlimitedMonthlyOverride = decimal.NewFromInt(50000)

	items, total := svc.Calculate(rec, fullProfile())
	require.Len(t, items, 2)
	assert.True(t, items[0].Amount.Equal(decimal.NewFromInt(8000)), "4 GB * override 2000")
	assert.True(t, items[1].Amount.Equal(decimal.NewFromInt(100000)), "1 * override 50000 * 2 months")
	assert.True(t, total.Equal(decimal.NewFromInt(108000)))
}

func TestPricingIsDeterministic(t *testing.T) {
	svc := NewPricingService()

	rec := &usage.Record{AdminUsername: "rep1"}
	rec.LimitedVolumes[1] = decimal.RequireFromString("3.75")
	rec.UnlimitedCounts[4] = 2
	profile := fullProfile()

	firstItems, firstTotal := svc.Calculate(rec, profile)
	for i := 0; i < 10; i++ {
		items, total := svc.Calculate(rec, profile)
		require.Len(t, items, len(firstItems))
		assert.True(t, total.Equal(firstTotal))
		for j := range items {
			assert.True(t, items[j].Amount.Equal(firstItems[j].Amount))
			assert.Equal(t, items[j].Description, firstItems[j].Description)
		}
	}
}
