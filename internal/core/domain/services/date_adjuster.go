package services

import (
	"time"

	"eta/internal/core/domain/model/kernel"
)

// BlackoutCalendar tells whether a day is excluded from production and dispatch.
// *policy.ShippingPolicy implements it.
type BlackoutCalendar interface {
	IsBlackout(d kernel.CalendarDate) bool
}

// BlackoutSet is a BlackoutCalendar backed by a set of days.
type BlackoutSet map[kernel.CalendarDate]struct{}

// NewBlackoutSet builds a BlackoutSet from days.
func NewBlackoutSet(days ...kernel.CalendarDate) BlackoutSet {
	s := make(BlackoutSet, len(days))
	for _, d := range days {
		s[d] = struct{}{}
	}
	return s
}

func (s BlackoutSet) IsBlackout(d kernel.CalendarDate) bool {
	_, ok := s[d]
	return ok
}

// DateAdjuster is a stateless set of date primitives. All methods return new
// values and keep the location and wall clock of their input.
type DateAdjuster struct{}

func NewDateAdjuster() DateAdjuster {
	return DateAdjuster{}
}

// StepDays moves date forward by n days. With skipWeekends, only Monday to
// Friday count, so five steps from a Monday land on the next Monday.
// n ≤ 0 returns date unchanged.
func (DateAdjuster) StepDays(date time.Time, n int, skipWeekends bool) time.Time {
	if n <= 0 {
		return date
	}
	if !skipWeekends {
		return date.AddDate(0, 0, n)
	}

	for n > 0 {
		date = date.AddDate(0, 0, 1)
		if !isWeekend(date) {
			n--
		}
	}
	return date
}

// IsPastCutoff reports whether instant's local hour is at or after cutoffHour.
func (DateAdjuster) IsPastCutoff(instant time.Time, cutoffHour int) bool {
	return instant.Hour() >= cutoffHour
}

// SkipBlackouts returns the first day on or after date that is not a blackout.
// A nil calendar has no blackouts.
func (DateAdjuster) SkipBlackouts(date time.Time, calendar BlackoutCalendar) time.Time {
	if calendar == nil {
		return date
	}
	for calendar.IsBlackout(kernel.CalendarDateOf(date)) {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// EnforceDispatchDay moves a Saturday or Sunday to the following Monday unless
// weekend dispatch is allowed.
func (DateAdjuster) EnforceDispatchDay(date time.Time, weekendDispatchAllowed bool) time.Time {
	if weekendDispatchAllowed {
		return date
	}
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, 2)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday:
		return date
	}
	return date
}

// SettleDispatchDate applies EnforceDispatchDay and SkipBlackouts until
// neither moves the date, since a weekend shift can land on a blackout and a
// blackout skip can land on a weekend.
func (a DateAdjuster) SettleDispatchDate(date time.Time, weekendDispatchAllowed bool, calendar BlackoutCalendar) time.Time {
	for {
		next := a.SkipBlackouts(a.EnforceDispatchDay(date, weekendDispatchAllowed), calendar)
		if next.Equal(date) {
			return date
		}
		date = next
	}
}

// StartOfDay is midnight of date in its own location.
func (DateAdjuster) StartOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location())
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
