package kernel

import (
	"fmt"
	"time"

	"eta/internal/pkg/errs"
)

// CalendarDateLayout is the ISO 8601 day layout used on the wire and in storage.
const CalendarDateLayout = "2006-01-02"

// ErrCalendarDateIsNotConstructed is returned when validating a zero CalendarDate.
var ErrCalendarDateIsNotConstructed = errs.NewValueIsRequiredError(
	"calendar date must be created via NewCalendarDate, ParseCalendarDate or CalendarDateOf")

// CalendarDate is a day without time of day or zone. Two instants map to the
// same CalendarDate when their local year, month and day agree, which is how
// blackout dates are matched against estimate dates.
//
// CalendarDate is comparable and can be used as a map key.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

// NewCalendarDate builds a CalendarDate, rejecting days that do not exist (e.g. Feb 30).
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day || year < 1 {
		return CalendarDate{}, errs.NewValueIsInvalidErrorWithCause(
			"calendar date", fmt.Errorf("%04d-%02d-%02d does not exist", year, int(month), day))
	}
	return CalendarDate{year: year, month: month, day: day}, nil
}

// ParseCalendarDate parses a "2006-01-02" string.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(CalendarDateLayout, s)
	if err != nil {
		return CalendarDate{}, errs.NewValueIsInvalidErrorWithCause("calendar date", err)
	}
	return CalendarDateOf(t), nil
}

// CalendarDateOf returns the local day of t in t's own location.
func CalendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{year: y, month: m, day: d}
}

// Validate returns ErrCalendarDateIsNotConstructed for the zero value.
func (d CalendarDate) Validate() error {
	if d.year == 0 {
		return ErrCalendarDateIsNotConstructed
	}
	return nil
}

func (d CalendarDate) Year() int { return d.year }

func (d CalendarDate) Month() time.Month { return d.month }

func (d CalendarDate) Day() int { return d.day }

// In returns midnight of the day in loc.
func (d CalendarDate) In(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// String returns the date in CalendarDateLayout.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}
