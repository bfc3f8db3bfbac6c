package loyalty

import (
	"testing"
	"time"

	"github.com/Nagesh2809/cafe-management/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateTiers(t *testing.T) {
	now := date(2026, time.August, 15)

	tests := []struct {
		name             string
		joinDate         time.Time
		wantMonths       int
		wantTier         string
		wantPercent      int
		wantNextPercent  *int
		wantMonthsToNext *int
	}{
		{
			name:             "joined today",
			joinDate:         now,
			wantMonths:       0,
			wantTier:         "Newcomer",
			wantPercent:      0,
			wantNextPercent:  ptr(5),
			wantMonthsToNext: ptr(6),
		},
		{
			name:             "one day before the six month mark",
			joinDate:         date(2026, time.February, 16),
			wantMonths:       5,
			wantTier:         "Newcomer",
			wantPercent:      0,
			wantNextPercent:  ptr(5),
			wantMonthsToNext: ptr(1),
		},
		{
			name:             "exactly six months",
			joinDate:         date(2026, time.February, 15),
			wantMonths:       6,
			wantTier:         "Regular",
			wantPercent:      5,
			wantNextPercent:  ptr(10),
			wantMonthsToNext: ptr(12),
		},
		{
			name:             "seven months",
			joinDate:         date(2026, time.January, 15),
			wantMonths:       7,
			wantTier:         "Regular",
			wantPercent:      5,
			wantNextPercent:  ptr(10),
			wantMonthsToNext: ptr(11),
		},
		{
			name:             "exactly eighteen months",
			joinDate:         date(2025, time.February, 15),
			wantMonths:       18,
			wantTier:         "Connoisseur",
			wantPercent:      10,
			wantNextPercent:  ptr(15),
			wantMonthsToNext: ptr(18),
		},
		{
			name:        "exactly thirty six months is terminal",
			joinDate:    date(2023, time.August, 15),
			wantMonths:  36,
			wantTier:    "Royal Patron",
			wantPercent: 15,
		},
		{
			name:        "well past the terminal tier",
			joinDate:    date(2019, time.March, 1),
			wantMonths:  89,
			wantTier:    "Royal Patron",
			wantPercent: 15,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.joinDate, now)

			assert.Equal(t, tc.wantMonths, got.MonthsActive)
			assert.Equal(t, tc.wantTier, got.TierName)
			assert.Equal(t, tc.wantPercent, got.DiscountPercent)
			assert.Equal(t, tc.wantNextPercent, got.NextTierPercent)
			assert.Equal(t, tc.wantMonthsToNext, got.MonthsToNextTier)
		})
	}
}

func TestMonthsBetweenUsesCalendarDays(t *testing.T) {
	// joining on the 31st: February's 28th has not reached day 31, so
	// no whole month has elapsed yet
	assert.Equal(t, 0, monthsBetween(date(2026, time.January, 31), date(2026, time.February, 28)))
	assert.Equal(t, 1, monthsBetween(date(2026, time.January, 31), date(2026, time.March, 31)))

	// year boundary
	assert.Equal(t, 2, monthsBetween(date(2025, time.November, 10), date(2026, time.January, 10)))
	assert.Equal(t, 1, monthsBetween(date(2025, time.November, 10), date(2026, time.January, 9)))
}

func TestCalculateDiscountIsMonotonic(t *testing.T) {
	now := date(2026, time.August, 15)

	prev := -1
	for months := 0; months <= 48; months++ {
		join := now.AddDate(0, -months, 0)
		got := Calculate(join, now)
		require.GreaterOrEqual(t, got.DiscountPercent, prev, "months=%d", months)
		prev = got.DiscountPercent
	}
}

func TestDiscountAmount(t *testing.T) {
	// worked example: subtotal 80 at 5% => 4.0 rounds to 4
	assert.Equal(t, domain.Price(4), DiscountAmount(80, 5))

	// half-up at the .5 boundary: 50 * 5% = 2.5 => 3
	assert.Equal(t, domain.Price(3), DiscountAmount(50, 5))

	assert.Equal(t, domain.Price(0), DiscountAmount(0, 15))
	assert.Equal(t, domain.Price(0), DiscountAmount(100, 0))

	// 333 * 10% = 33.3 => 33
	assert.Equal(t, domain.Price(33), DiscountAmount(333, 10))
}

func ptr(v int) *int { return &v }
