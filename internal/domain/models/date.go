package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrDateFormat indicates a date token could not be split into numeric month, day and year.
var ErrDateFormat = errors.New("invalid date format")

const (
	quadrennial      = 4
	centennial       = 100
	quatercentennial = 400
	monthsPerYear    = 12
	bigMonthDays     = 31
	smallMonthDays   = 30
	leapFebDays      = 29
	regularFebDays   = 28
	adultAge         = 18
)

// Date is an immutable calendar date. Construction never validates; call IsValid.
type Date struct {
	year  int
	month int
	day   int
}

// NewDate builds a Date from its components without validating them.
func NewDate(month, day, year int) Date {
	return Date{year: year, month: month, day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: int(t.Month()), day: t.Day()}
}

// Today returns the current system date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a "mm/dd/yyyy" token. Only the shape is checked here.
func ParseDate(text string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("parse date %q: %w", text, ErrDateFormat)
	}

	values := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Date{}, fmt.Errorf("parse date %q: %w", text, ErrDateFormat)
		}
		values[i] = n
	}

	return NewDate(values[0], values[1], values[2]), nil
}

// Year returns the year component.
func (d Date) Year() int { return d.year }

// Month returns the month component.
func (d Date) Month() int { return d.month }

// Day returns the day-of-month component.
func (d Date) Day() int { return d.day }

// IsValid reports whether the date exists in the Gregorian calendar.
func (d Date) IsValid() bool {
	if d.year < 0 || d.month < 1 || d.month > monthsPerYear || d.day < 1 {
		return false
	}
	return d.day <= daysIn(d.month, d.year)
}

// Compare returns -1, 0 or 1 ordering by year, then month, then day.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(d.month - other.month)
	default:
		return sign(d.day - other.day)
	}
}

// Equal reports whether both dates have identical components.
func (d Date) Equal(other Date) bool {
	return d.Compare(other) == 0
}

// IsTodayOrFutureDate reports whether d is today or later according to the system clock.
func (d Date) IsTodayOrFutureDate() bool {
	return d.IsOnOrAfter(Today())
}

// IsOnOrAfter reports whether d is the reference day or later.
func (d Date) IsOnOrAfter(ref Date) bool {
	return d.Compare(ref) >= 0
}

// IsAtLeast18 reports whether a person born on d counts as an adult on today.
// Only years and months are compared: when the year difference is exactly 18,
// a birthday anywhere in the current month already counts.
func (d Date) IsAtLeast18(today Date) bool {
	years := today.year - d.year
	switch {
	case years > adultAge:
		return true
	case years == adultAge:
		return d.month <= today.month
	default:
		return false
	}
}

// PlusMonths adds n to the month field as written. No carry into the year is
// performed, so the result may not be a valid date.
func (d Date) PlusMonths(n int) Date {
	return NewDate(d.month+n, d.day, d.year)
}

// PlusYears adds n to the year field as written.
func (d Date) PlusYears(n int) Date {
	return NewDate(d.month, d.day, d.year+n)
}

// AddMonths adds n calendar months, carrying into the year and clamping the
// day to the length of the resulting month.
func (d Date) AddMonths(n int) Date {
	total := d.year*monthsPerYear + (d.month - 1) + n
	year, month := total/monthsPerYear, total%monthsPerYear+1
	if month < 1 {
		month += monthsPerYear
		year--
	}
	day := d.day
	if last := daysIn(month, year); day > last {
		day = last
	}
	return NewDate(month, day, year)
}

// String renders the date as m/d/yyyy without zero padding.
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.month, d.day, d.year)
}

func isLeap(year int) bool {
	return year%quadrennial == 0 && (year%centennial != 0 || year%quatercentennial == 0)
}

func daysIn(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return smallMonthDays
	case 2:
		if isLeap(year) {
			return leapFebDays
		}
		return regularFebDays
	default:
		return bigMonthDays
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
