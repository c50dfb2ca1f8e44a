package representative

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testProfile() PricingProfile {
	var p PricingProfile
	for i := range p.LimitedPrices {
		p.LimitedPrices[i] = decimal.NewFromInt(int64(1000 * (i + 1)))
	}
	p.UnlimitedMonthlyPrice = decimal.NewFromInt(40000)
	return p
}

func TestLimitedPriceFor(t *testing.T) {
	p := testProfile()

	assert.True(t, p.LimitedPriceFor(1).Equal(decimal.NewFromInt(1000)))
	assert.True(t, p.LimitedPriceFor(6).Equal(decimal.NewFromInt(6000)))

	// out-of-range durations price to zero rather than panicking
	assert.True(t, p.LimitedPriceFor(0).IsZero())
	assert.True(t, p.LimitedPriceFor(7).IsZero())
}

func TestUnlimitedPriceFor(t *testing.T) {
	p := testProfile()

	assert.True(t, p.UnlimitedPriceFor(1).Equal(decimal.NewFromInt(40000)))
	assert.True(t, p.UnlimitedPriceFor(3).Equal(decimal.NewFromInt(120000)), "monthly rate times duration")
	assert.True(t, p.UnlimitedPriceFor(0).IsZero())
	assert.True(t, p.UnlimitedPriceFor(7).IsZero())
}

func TestConfigured(t *testing.T) {
	var empty PricingProfile
	assert.False(t, empty.Configured())

	var limitedOnly PricingProfile
	limitedOnly.LimitedPrices[4] = decimal.NewFromInt(500)
	assert.True(t, limitedOnly.Configured())

	var unlimitedOnly PricingProfile
	unlimitedOnly.UnlimitedMonthlyPrice = decimal.NewFromInt(40000)
	assert.True(t, unlimitedOnly.Configured())
}
