// Package datetime provides calendar date utility functions.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/andre1397/calculadora-TOTVS/pkg/constants"
)

const (
	// DateLayout is the format expected on the wire and in config files and is
	// also the output date format.
	DateLayout = constants.DateLayout

	hoursPerDay = 24
)

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD) into UTC midnight.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s", value, DateLayout)
	}
	return t, nil
}

// MustParseDate parses a date string and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(value string) time.Time {
	t, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return t
}

// Normalize drops the clock and location of t, keeping its calendar date.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Format renders t using DateLayout.
func Format(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the number of calendar days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(Normalize(end).Sub(Normalize(start)).Hours() / hoursPerDay)
}

// MonthsBetween returns the difference in calendar months between the months
// of start and end, ignoring the day of month.
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// DaysInMonth returns the length of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EndOfMonth returns the last day of the month containing t.
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}

// IsEndOfMonth reports whether t is the last calendar day of its month.
func IsEndOfMonth(t time.Time) bool {
	return t.Day() == DaysInMonth(t.Year(), t.Month())
}

// AddMonths behaves like a spreadsheet EDATE: the day of month of t is kept and
// clamped to the length of the target month instead of overflowing into the
// next one. When endOfMonth is set the result is always a month end.
func AddMonths(t time.Time, months int, endOfMonth bool) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := DaysInMonth(first.Year(), first.Month())
	day := t.Day()
	if endOfMonth || day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// MonthEnds returns every month end strictly between start and end.
func MonthEnds(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := EndOfMonth(start); d.Before(end); d = EndOfMonth(d.AddDate(0, 0, 1)) {
		if d.After(start) {
			dates = append(dates, d)
		}
	}
	return dates
}
