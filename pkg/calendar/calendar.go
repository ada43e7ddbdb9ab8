// Package calendar decides which dates are business days and rolls payment
// dates that fall on weekends or fixed holidays.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

const monthDayLayout = "01-02"

// MonthDay is a fixed-date holiday that recurs every year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// String renders the holiday as MM-DD.
func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

// ParseMonthDay parses an "MM-DD" string.
func ParseMonthDay(value string) (MonthDay, error) {
	t, err := time.Parse(monthDayLayout, strings.TrimSpace(value))
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid holiday %q: expected MM-DD", value)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

// Calendar is an immutable set of fixed holidays plus the weekend rule.
type Calendar struct {
	holidays map[MonthDay]struct{}
}

// New builds a Calendar from "MM-DD" holiday strings.
func New(holidays []string) (*Calendar, error) {
	c := &Calendar{holidays: make(map[MonthDay]struct{}, len(holidays))}
	for _, h := range holidays {
		md, err := ParseMonthDay(h)
		if err != nil {
			return nil, err
		}
		c.holidays[md] = struct{}{}
	}
	return c, nil
}

// IsHoliday reports whether t falls on one of the fixed holidays.
func (c *Calendar) IsHoliday(t time.Time) bool {
	_, ok := c.holidays[MonthDay{Month: t.Month(), Day: t.Day()}]
	return ok
}

// IsBusinessDay checks weekends and the holiday set.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !c.IsHoliday(t)
}

// AdjustFollowing applies the Following convention: t moves forward to the
// next business day, possibly into the next month.
func (c *Calendar) AdjustFollowing(t time.Time) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}
