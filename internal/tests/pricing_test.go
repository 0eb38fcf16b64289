package tests

import (
	"testing"
	"time"

	"af-restro/internal/domain"
	"af-restro/internal/pricing"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 29, hour, minute, 0, 0, time.UTC)
}

func TestTiers(t *testing.T) {
	tests := []struct {
		option string
		tiers  int
	}{
		{"3", 3},
		{"Single", 3},
		{"single/half/full", 3},
		{"2", 2},
		{"half", 2},
		{"Regular", 2},
		{"1", 1},
		{"", 1},
		{"full only", 1},
	}
	for _, testCase := range tests {
		assert.Equal(t, testCase.tiers, pricing.Tiers(testCase.option), "option %q", testCase.option)
	}
}

func TestSizeMultiplier(t *testing.T) {
	assert.Equal(t, 0.4, pricing.SizeMultiplier(domain.SizeSingle))
	assert.Equal(t, 0.7, pricing.SizeMultiplier(domain.SizeRegular))
	assert.Equal(t, 1.0, pricing.SizeMultiplier(domain.SizeLarge))
	assert.Equal(t, 1.0, pricing.SizeMultiplier("anything else"))
}

func TestEffectiveSize_SingleTierAlwaysLarge(t *testing.T) {
	fixed := domain.MenuItem{PricingOption: "1"}
	assert.Equal(t, domain.SizeLarge, pricing.EffectiveSize(fixed, domain.SizeSingle))
	assert.Equal(t, domain.SizeLarge, pricing.EffectiveSize(fixed, ""))

	tiered := domain.MenuItem{PricingOption: "3"}
	assert.Equal(t, domain.SizeSingle, pricing.EffectiveSize(tiered, domain.SizeSingle))
	assert.Equal(t, domain.SizeLarge, pricing.EffectiveSize(tiered, ""))
}

func TestResolveDiscount(t *testing.T) {
	discounts := []domain.Discount{
		{ID: "1", Category: "Grills & Kebabs", Percentage: 20, Type: domain.DiscountFlat},
		{ID: "2", Category: "grills & kebabs", Percentage: 50, Type: domain.DiscountFlat},
		{ID: "3", Category: "Biryani", Percentage: 10, Type: domain.DiscountFlat},
	}

	t.Run("first_match_wins", func(t *testing.T) {
		d := pricing.ResolveDiscount("Grills & Kebabs", discounts)
		assert.NotNil(t, d)
		assert.Equal(t, "1", d.ID)
	})

	t.Run("case_and_space_insensitive", func(t *testing.T) {
		d := pricing.ResolveDiscount("  GRILLS & KEBABS  ", discounts)
		assert.NotNil(t, d)
		assert.Equal(t, "1", d.ID)
	})

	t.Run("no_match", func(t *testing.T) {
		assert.Nil(t, pricing.ResolveDiscount("Desserts", discounts))
	})
}

func TestDiscountActive(t *testing.T) {
	flat := &domain.Discount{Type: domain.DiscountFlat, Percentage: 20}
	happy := &domain.Discount{Type: domain.DiscountHappyHour, Percentage: 20, StartTime: "17:00", EndTime: "19:00"}

	tests := []struct {
		name     string
		discount *domain.Discount
		now      time.Time
		active   bool
	}{
		{"flat_any_time", flat, at(3, 0), true},
		{"happy_before_window", happy, at(16, 59), false},
		{"happy_start_boundary", happy, at(17, 0), true},
		{"happy_inside_window", happy, at(18, 30), true},
		{"happy_end_boundary", happy, at(19, 0), true},
		{"happy_after_window", happy, at(19, 1), false},
		{"nil_discount", nil, at(12, 0), false},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.active, pricing.Active(testCase.discount, testCase.now))
		})
	}

	t.Run("missing_times_default_to_whole_day", func(t *testing.T) {
		allDay := &domain.Discount{Type: domain.DiscountHappyHour, Percentage: 10}
		assert.True(t, pricing.Active(allDay, at(0, 0)))
		assert.True(t, pricing.Active(allDay, at(23, 59)))
	})

	t.Run("inverted_window_never_matches", func(t *testing.T) {
		inverted := &domain.Discount{Type: domain.DiscountHappyHour, Percentage: 10, StartTime: "22:00", EndTime: "02:00"}
		assert.False(t, pricing.Active(inverted, at(23, 0)))
		assert.False(t, pricing.Active(inverted, at(1, 0)))
	})

	t.Run("malformed_times_never_active", func(t *testing.T) {
		malformed := &domain.Discount{Type: domain.DiscountHappyHour, Percentage: 10, StartTime: "late", EndTime: "19:00"}
		assert.False(t, pricing.Active(malformed, at(12, 0)))

		malformedEnd := &domain.Discount{Type: domain.DiscountHappyHour, Percentage: 10, StartTime: "17:00", EndTime: "later"}
		assert.False(t, pricing.Active(malformedEnd, at(18, 0)))
	})
}

func TestPriceLine_FlatDiscount(t *testing.T) {
	item := domain.MenuItem{ID: "d1", Category: "Grills & Kebabs", Price: 100, PricingOption: "3"}
	discounts := []domain.Discount{{Category: "Grills & Kebabs", Percentage: 20, Type: domain.DiscountFlat}}

	lp := pricing.PriceLine(item, domain.SizeRegular, nil, discounts, at(12, 0))
	assert.InDelta(t, 56.0, lp.Adjusted, 1e-9)
	assert.InDelta(t, 70.0, lp.Original, 1e-9)
}

func TestPriceLine_HappyHourWindow(t *testing.T) {
	item := domain.MenuItem{ID: "d1", Category: "Grills & Kebabs", Price: 100, PricingOption: "3"}
	discounts := []domain.Discount{{
		Category: "Grills & Kebabs", Percentage: 20,
		Type: domain.DiscountHappyHour, StartTime: "17:00", EndTime: "19:00",
	}}

	inside := pricing.PriceLine(item, domain.SizeLarge, nil, discounts, at(18, 0))
	assert.InDelta(t, 80.0, inside.Adjusted, 1e-9)
	assert.InDelta(t, 100.0, inside.Original, 1e-9)

	outside := pricing.PriceLine(item, domain.SizeLarge, nil, discounts, at(20, 0))
	assert.InDelta(t, 100.0, outside.Adjusted, 1e-9)
	assert.Equal(t, outside.Adjusted, outside.Original)
}

func TestPriceLine_AddonsNeitherDiscountedNorScaled(t *testing.T) {
	item := domain.MenuItem{ID: "d1", Category: "Grills & Kebabs", Price: 100, PricingOption: "3"}
	discounts := []domain.Discount{{Category: "Grills & Kebabs", Percentage: 50, Type: domain.DiscountFlat}}
	addons := []domain.SelectedAddon{{
		CategoryID: "a1", CategoryName: "Extras",
		Items: []domain.AddonItem{{ID: "x1", Name: "Cheese", Price: 10}, {ID: "x2", Name: "Fries", Price: 15}},
	}}

	lp := pricing.PriceLine(item, domain.SizeSingle, addons, discounts, at(12, 0))
	assert.InDelta(t, 50*0.4+25, lp.Adjusted, 1e-9)
	assert.InDelta(t, 100*0.4+25, lp.Original, 1e-9)
}

func TestPriceLine_SingleTierIgnoresRequestedSize(t *testing.T) {
	item := domain.MenuItem{ID: "d1", Category: "Biryani", Price: 80, PricingOption: "1"}

	lp := pricing.PriceLine(item, domain.SizeSingle, nil, nil, at(12, 0))
	assert.InDelta(t, 80.0, lp.Adjusted, 1e-9)
	assert.InDelta(t, 80.0, lp.Original, 1e-9)
}

func TestTotals(t *testing.T) {
	lines := []domain.CartLine{
		{Quantity: 2, AdjustedPrice: 56, OriginalPrice: 70},
		{Quantity: 1, AdjustedPrice: 30},
	}

	totals := pricing.Totals(lines)
	assert.InDelta(t, 142.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 170.0, totals.OriginalTotal, 1e-9)
	assert.InDelta(t, 28.0, totals.DiscountTotal, 1e-9)
	assert.InDelta(t, 142*0.05, totals.Tax, 1e-9)
	assert.InDelta(t, 142*1.05, totals.GrandTotal, 1e-9)
}

func TestTotals_DiscountNeverNegative(t *testing.T) {
	lines := []domain.CartLine{{Quantity: 1, AdjustedPrice: 120, OriginalPrice: 100}}
	totals := pricing.Totals(lines)
	assert.Equal(t, 0.0, totals.DiscountTotal)
}

func TestTotals_EmptyCart(t *testing.T) {
	totals := pricing.Totals(nil)
	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.GrandTotal)
}
