package domain

import (
	"fmt"
	"strconv"
	"strings"

	"carrental/internal/utils"
)

const (
	MinYear = 1000
	MaxYear = 9999
)

// defaultDate is what NewDate falls back to on invalid input
var defaultDate = Date{day: 1, month: 1, year: 2000}

// Date is a Gregorian calendar date between 01/01/1000 and 31/12/9999.
// Date is a value type; copies never share state.
type Date struct {
	day   int
	month int
	year  int
}

func isValidDate(day, month, year int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	return utils.IsCalendarDate(day, month, year)
}

// NewDate returns the given date, or 01/01/2000 if it is not a valid date.
func NewDate(day, month, year int) Date {
	if !isValidDate(day, month, year) {
		return defaultDate
	}
	return Date{day: day, month: month, year: year}
}

// ParseDate converts a dd/mm/yyyy formatted string into a Date.
// Well-formed but impossible dates fall back to 01/01/2000 like NewDate.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format %q, expected dd/mm/yyyy", s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %w", err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %w", err)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %w", err)
	}

	return NewDate(day, month, year), nil
}

func (d Date) Day() int { return d.day }
func (d Date) Month() int { return d.month }
func (d Date) Year() int { return d.year }

// IsValid is false only for dates not built through NewDate, such as the zero value.
func (d Date) IsValid() bool {
	return isValidDate(d.day, d.month, d.year)
}

// SetDay changes the day if the resulting date is valid.
func (d *Date) SetDay(day int) {
	if isValidDate(day, d.month, d.year) {
		d.day = day
	}
}

// SetMonth changes the month if the resulting date is valid.
func (d *Date) SetMonth(month int) {
	if isValidDate(d.day, month, d.year) {
		d.month = month
	}
}

// SetYear changes the year if the resulting date is valid.
func (d *Date) SetYear(year int) {
	if isValidDate(d.day, d.month, year) {
		d.year = year
	}
}

func (d Date) dayNumber() int {
	return utils.DayNumber(d.day, d.month, d.year)
}

func (d Date) Equals(other Date) bool {
	return d == other
}

// Before reports whether d comes strictly before other.
func (d Date) Before(other Date) bool {
	return d.dayNumber() < other.dayNumber()
}

// After reports whether d comes strictly after other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Difference returns the absolute number of days between d and other.
func (d Date) Difference(other Date) int {
	diff := d.dayNumber() - other.dayNumber()
	if diff < 0 {
		return -diff
	}
	return diff
}

// Tomorrow returns the following day. 31/12/9999 has no successor and is
// returned unchanged.
func (d Date) Tomorrow() Date {
	if d.day == 31 && d.month == 12 && d.year == MaxYear {
		return d
	}
	if isValidDate(d.day+1, d.month, d.year) {
		return Date{day: d.day + 1, month: d.month, year: d.year}
	}
	if d.month == 12 {
		return NewDate(1, 1, d.year+1)
	}
	return NewDate(1, d.month+1, d.year)
}

// String formats the date as dd/mm/yyyy.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.day, d.month, d.year)
}
