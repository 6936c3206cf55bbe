package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date represents a calendar date
type Date struct {
	Year  int
	Month int
	Day   int
}

// ExtensionQuote is the derived extra-days/extra-cost computation for a trip
// extension. It is never persisted; callers recompute it on every change to
// the candidate end date.
type ExtensionQuote struct {
	ExtraDays      int32 `json:"extra_days"`
	ExtraCostCents int32 `json:"extra_cost_cents"`
	// Valid is true only when the candidate date is strictly after the
	// current end date. An invalid quote must not be submitted.
	Valid bool `json:"valid"`
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date struct
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("day %d out of range for %04d-%02d", day, year, month)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	// All other months have 31 days
	return 31
}

// DaysBetween returns the number of calendar days from one date to a later
// date. Dates are anchored at midnight UTC, so the result is the exact
// calendar-day difference with no daylight-saving or time-of-day drift.
// A negative result means 'to' is before 'from'.
func DaysBetween(from, to Date) int {
	a := time.Date(from.Year, time.Month(from.Month), from.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year, time.Month(to.Month), to.Day, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// AddDays returns the calendar date n days after d.
func AddDays(d Date, n int) Date {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// FormatDate renders a Date as yyyy-mm-dd.
func FormatDate(d Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// QuoteExtension maps (currentEndDate, candidateEndDate, dailyRateCents) to
// an ExtensionQuote. The day count covers the delta range
// (currentEndDate, candidateEndDate]: exclusive of the day the vehicle was
// already due back, inclusive of the new return day.
//
// A candidate that is empty, unparseable, or not strictly after the current
// end date yields a zero, invalid quote rather than an error, so the
// function is safe to call on every keystroke.
func QuoteExtension(currentEndDate, candidateEndDate string, dailyRateCents int32) ExtensionQuote {
	if candidateEndDate == "" {
		return ExtensionQuote{}
	}

	current, err := ParseDate(currentEndDate)
	if err != nil {
		return ExtensionQuote{}
	}
	candidate, err := ParseDate(candidateEndDate)
	if err != nil {
		return ExtensionQuote{}
	}

	days := DaysBetween(current, candidate)
	if days <= 0 {
		return ExtensionQuote{}
	}

	return ExtensionQuote{
		ExtraDays:      int32(days),
		ExtraCostCents: int32(days) * dailyRateCents,
		Valid:          true,
	}
}

// BookingCost computes the rental cost for a booking period at a daily
// rate. The duration includes both the pickup and the return day.
func BookingCost(startDate, endDate string, dailyRateCents int32) (int32, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %v", err)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date: %v", err)
	}

	days := DaysBetween(start, end)
	if days < 0 {
		return 0, fmt.Errorf("end date must be on or after start date")
	}

	return int32(days+1) * dailyRateCents, nil
}

// FormatMoney renders a cent amount with its currency code, e.g. "KES 150.00".
func FormatMoney(cents int32, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s %s%d.%02d", currency, sign, cents/100, cents%100)
}
