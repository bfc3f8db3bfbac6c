package loyalty

import (
	"time"

	"github.com/Nagesh2809/cafe-management/internal/domain"
	"github.com/shopspring/decimal"
)

// Status is derived from the account's join date on every request and is
// never stored. NextTierPercent and MonthsToNextTier are absent at the
// terminal tier.
type Status struct {
	TierName         string `json:"tierName"`
	DiscountPercent  int    `json:"discountPercent"`
	MonthsActive     int    `json:"monthsActive"`
	NextTierPercent  *int   `json:"nextTierPercent,omitempty"`
	MonthsToNextTier *int   `json:"monthsToNextTier,omitempty"`
}

type tier struct {
	minMonths       int
	name            string
	discountPercent int
}

// Evaluated from highest to lowest; the lower bound is inclusive.
var tiers = []tier{
	{36, "Royal Patron", 15},
	{18, "Connoisseur", 10},
	{6, "Regular", 5},
	{0, "Newcomer", 0},
}

// Calculate maps a join date and the current time to a loyalty status.
// Pure function of its inputs; only the date parts matter.
func Calculate(joinDate, now time.Time) Status {
	monthsActive := monthsBetween(joinDate, now)

	idx := len(tiers) - 1
	for i, t := range tiers {
		if monthsActive >= t.minMonths {
			idx = i
			break
		}
	}

	status := Status{
		TierName:        tiers[idx].name,
		DiscountPercent: tiers[idx].discountPercent,
		MonthsActive:    monthsActive,
	}

	if idx > 0 {
		next := tiers[idx-1]
		remaining := next.minMonths - monthsActive
		if remaining < 0 {
			remaining = 0
		}
		status.NextTierPercent = &next.discountPercent
		status.MonthsToNextTier = &remaining
	}

	return status
}

// monthsBetween counts whole calendar months from a to b. A month counts
// as complete only once b's day-of-month reaches a's day-of-month, so
// partial months truncate toward zero. This is calendar arithmetic, not
// division by a 30-day span.
func monthsBetween(a, b time.Time) int {
	a, b = a.UTC(), b.UTC()

	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}

	return months
}

// DiscountAmount applies a tier percentage to a cart subtotal, rounding
// half-up on the discount amount itself. The rounding point is user
// visible currency, so it must not move to the resulting total.
func DiscountAmount(subtotal domain.Price, percent int) domain.Price {
	if subtotal <= 0 || percent <= 0 {
		return 0
	}

	amount := decimal.NewFromInt(int64(subtotal)).
		Mul(decimal.NewFromInt(int64(percent))).
		Div(decimal.NewFromInt(100)).
		Round(0)

	return domain.Price(amount.IntPart())
}
