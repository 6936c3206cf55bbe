package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		date, err := ParseDate("2025-11-28")
		assert.NoError(t, err)
		assert.Equal(t, 2025, date.Year)
		assert.Equal(t, 11, date.Month)
		assert.Equal(t, 28, date.Day)
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := ParseDate("2025/11/28")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date format")
	})

	t.Run("Invalid month", func(t *testing.T) {
		_, err := ParseDate("2025-13-01")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "month must be between 1 and 12")
	})

	t.Run("Day out of range for month", func(t *testing.T) {
		_, err := ParseDate("2025-02-30")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year     int
		month    int
		expected int
	}{
		{2024, 1, 31},  // January
		{2024, 2, 29},  // February (leap year)
		{2023, 2, 28},  // February (non-leap year)
		{2024, 4, 30},  // April
		{2024, 9, 30},  // September
		{2000, 2, 29},  // Leap year (divisible by 400)
		{1900, 2, 28},  // Not a leap year (divisible by 100 but not 400)
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			days := DaysInMonth(tt.year, tt.month)
			assert.Equal(t, tt.expected, days)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	t.Run("Same day", func(t *testing.T) {
		d := Date{Year: 2025, Month: 11, Day: 28}
		assert.Equal(t, 0, DaysBetween(d, d))
	})

	t.Run("Across a month boundary", func(t *testing.T) {
		from := Date{Year: 2025, Month: 11, Day: 28}
		to := Date{Year: 2025, Month: 12, Day: 1}
		assert.Equal(t, 3, DaysBetween(from, to))
	})

	t.Run("Across a leap day", func(t *testing.T) {
		from := Date{Year: 2024, Month: 2, Day: 27}
		to := Date{Year: 2024, Month: 3, Day: 1}
		assert.Equal(t, 3, DaysBetween(from, to))
	})

	t.Run("Backwards is negative", func(t *testing.T) {
		from := Date{Year: 2025, Month: 12, Day: 1}
		to := Date{Year: 2025, Month: 11, Day: 28}
		assert.Equal(t, -3, DaysBetween(from, to))
	})
}

func TestQuoteExtension(t *testing.T) {
	t.Run("Three day extension", func(t *testing.T) {
		quote := QuoteExtension("2025-11-28", "2025-12-01", 5000)
		assert.True(t, quote.Valid)
		assert.Equal(t, int32(3), quote.ExtraDays)
		assert.Equal(t, int32(15000), quote.ExtraCostCents)
	})

	t.Run("Candidate equal to current end date", func(t *testing.T) {
		quote := QuoteExtension("2025-11-28", "2025-11-28", 5000)
		assert.False(t, quote.Valid)
		assert.Equal(t, int32(0), quote.ExtraDays)
		assert.Equal(t, int32(0), quote.ExtraCostCents)
	})

	t.Run("Candidate before current end date", func(t *testing.T) {
		quote := QuoteExtension("2025-11-28", "2025-11-20", 5000)
		assert.False(t, quote.Valid)
		assert.Equal(t, int32(0), quote.ExtraDays)
		assert.Equal(t, int32(0), quote.ExtraCostCents)
	})

	t.Run("Empty candidate means no selection yet", func(t *testing.T) {
		quote := QuoteExtension("2025-11-28", "", 5000)
		assert.False(t, quote.Valid)
		assert.Equal(t, int32(0), quote.ExtraCostCents)
	})

	t.Run("Unparseable candidate yields invalid quote", func(t *testing.T) {
		quote := QuoteExtension("2025-11-28", "not-a-date", 5000)
		assert.False(t, quote.Valid)
	})

	t.Run("Year boundary", func(t *testing.T) {
		quote := QuoteExtension("2025-12-30", "2026-01-02", 1000)
		assert.True(t, quote.Valid)
		assert.Equal(t, int32(3), quote.ExtraDays)
		assert.Equal(t, int32(3000), quote.ExtraCostCents)
	})
}

func TestBookingCost(t *testing.T) {
	t.Run("Inclusive of pickup and return day", func(t *testing.T) {
		cost, err := BookingCost("2025-11-02", "2025-11-04", 5000)
		assert.NoError(t, err)
		assert.Equal(t, int32(15000), cost)
	})

	t.Run("Same day rental is one day", func(t *testing.T) {
		cost, err := BookingCost("2025-11-02", "2025-11-02", 5000)
		assert.NoError(t, err)
		assert.Equal(t, int32(5000), cost)
	})

	t.Run("Return before pickup", func(t *testing.T) {
		_, err := BookingCost("2025-11-04", "2025-11-02", 5000)
		assert.Error(t, err)
	})
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "KES 150.00", FormatMoney(15000, "KES"))
	assert.Equal(t, "KES 0.05", FormatMoney(5, "KES"))
	assert.Equal(t, "USD -12.50", FormatMoney(-1250, "USD"))
}
