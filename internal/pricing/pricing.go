// Package pricing is the only place discount, size-multiplier and add-on
// math happens. Browse views, the item modal and the cart all call into
// these functions so the same item can never show three different prices.
package pricing

import (
	"strconv"
	"strings"
	"time"

	"af-restro/internal/domain"
)

// Size multipliers applied to an item's base (Large) price.
const (
	MultiplierSingle  = 0.4
	MultiplierRegular = 0.7
	MultiplierLarge   = 1.0
)

// TaxRate is the fixed 5% applied on the cart subtotal.
const TaxRate = 0.05

type LinePrice struct {
	Adjusted float64
	Original float64
}

func normalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ResolveDiscount returns the first discount whose category matches the
// given category, ignoring case and surrounding whitespace. Multiple
// matching discounts are never aggregated; list order wins. The returned
// rule may still be outside its happy-hour window; see Active.
func ResolveDiscount(category string, discounts []domain.Discount) *domain.Discount {
	want := normalizeCategory(category)
	for i := range discounts {
		if normalizeCategory(discounts[i].Category) == want {
			return &discounts[i]
		}
	}
	return nil
}

// parseMinutes parses "HH:MM" into minutes of day.
func parseMinutes(v string) (int, bool) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return h*60 + m, true
}

// Active reports whether the discount applies at the given time. FLAT
// discounts always apply. HAPPY_HOUR discounts apply when the current
// minute of day falls inside [start, end], both bounds inclusive, with
// defaults 00:00 and 23:59. A bound that fails to parse deactivates the
// window entirely, as do windows crossing midnight (start > end).
func Active(d *domain.Discount, now time.Time) bool {
	if d == nil {
		return false
	}
	if d.Type != domain.DiscountHappyHour {
		return true
	}
	nowMinutes := now.Hour()*60 + now.Minute()
	start := 0
	if d.StartTime != "" {
		parsed, ok := parseMinutes(d.StartTime)
		if !ok {
			return false
		}
		start = parsed
	}
	end := 23*60 + 59
	if d.EndTime != "" {
		parsed, ok := parseMinutes(d.EndTime)
		if !ok {
			return false
		}
		end = parsed
	}
	return nowMinutes >= start && nowMinutes <= end
}

// PriceAfterDiscount returns the base price with the discount applied,
// or the base price unchanged when there is no discount or the
// happy-hour window is closed. Percentage is assumed validated (0-100)
// at data entry.
func PriceAfterDiscount(base float64, d *domain.Discount, now time.Time) float64 {
	if !Active(d, now) {
		return base
	}
	return base * (1 - d.Percentage/100)
}

// Tiers interprets an item's pricing option into the number of size
// tiers offered: 3 (Single/Regular/Large), 2 (Regular/Large) or 1
// (Large only).
func Tiers(option string) int {
	opt := strings.ToLower(option)
	if opt == "" {
		return 1
	}
	switch {
	case opt == "3" || strings.Contains(opt, "single"):
		return 3
	case opt == "2" || strings.Contains(opt, "half") || strings.Contains(opt, "regular"):
		return 2
	default:
		return 1
	}
}

func SizeMultiplier(size string) float64 {
	switch size {
	case domain.SizeSingle:
		return MultiplierSingle
	case domain.SizeRegular:
		return MultiplierRegular
	default:
		return MultiplierLarge
	}
}

// EffectiveSize maps the caller's size selection through the item's
// pricing option: single-tier items are always priced as Large
// regardless of what was requested.
func EffectiveSize(item domain.MenuItem, size string) string {
	if Tiers(item.PricingOption) == 1 {
		return domain.SizeLarge
	}
	if size == "" {
		return domain.SizeLarge
	}
	return size
}

// AddonTotal sums every selected add-on item across all categories.
// Add-ons are unit-additive: neither discounted nor size-scaled.
func AddonTotal(addons []domain.SelectedAddon) float64 {
	var total float64
	for _, cat := range addons {
		for _, item := range cat.Items {
			total += item.Price
		}
	}
	return total
}

// PriceLine computes the per-unit adjusted (post-discount) and original
// (pre-discount) prices for one item + size + add-on selection.
// Adjusted <= Original always, with equality when no discount is active.
func PriceLine(item domain.MenuItem, size string, addons []domain.SelectedAddon, discounts []domain.Discount, now time.Time) LinePrice {
	mult := SizeMultiplier(EffectiveSize(item, size))
	addonCost := AddonTotal(addons)

	discount := ResolveDiscount(item.Category, discounts)
	discountedBase := PriceAfterDiscount(item.Price, discount, now)

	return LinePrice{
		Adjusted: discountedBase*mult + addonCost,
		Original: item.Price*mult + addonCost,
	}
}

// Totals folds stored line prices into the cart totals. Line prices are
// never recomputed here; whatever was locked in at add/resize time is
// what gets summed.
func Totals(lines []domain.CartLine) domain.CartTotals {
	var subtotal, original float64
	for _, line := range lines {
		qty := float64(line.Quantity)
		subtotal += line.AdjustedPrice * qty
		unitOriginal := line.OriginalPrice
		if unitOriginal == 0 {
			unitOriginal = line.AdjustedPrice
		}
		original += unitOriginal * qty
	}

	discountTotal := original - subtotal
	if discountTotal < 0 {
		discountTotal = 0
	}
	tax := subtotal * TaxRate

	return domain.CartTotals{
		Subtotal:      subtotal,
		OriginalTotal: original,
		DiscountTotal: discountTotal,
		Tax:           tax,
		GrandTotal:    subtotal + tax,
	}
}
