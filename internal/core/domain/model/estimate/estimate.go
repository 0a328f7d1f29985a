package estimate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"eta/internal/pkg/errs"
	"eta/internal/pkg/guard"
)

var ErrEstimateIsNotConstructed = errors.New("Estimate must be created via NewEstimate constructor")

// Estimate is a delivery window.
//
// MinDays and MaxDays are the handling window in days. ShipMinDate and
// ShipMaxDate are the dates the package leaves the origin. MinDate and MaxDate
// are the dates shown to the customer: the ship dates for a base estimate,
// the ship dates plus transit for an advanced one.
type Estimate struct { //nolint:recvcheck //using for validation
	minDays        int
	maxDays        int
	shipMinDate    time.Time
	shipMaxDate    time.Time
	minDate        time.Time
	maxDate        time.Time
	formattedRange string
	carrier        string
	note           string
	transitMin     int
	transitMax     int
	hasTransit     bool
	guard          guard.ConstructorGuard
}

// Params carries the inputs of NewEstimate. Transit is nil for a base estimate.
type Params struct {
	MinDays        int
	MaxDays        int
	ShipMinDate    time.Time
	ShipMaxDate    time.Time
	FormattedRange string
	Carrier        string
	Note           string
	Transit        *Transit
}

// Transit is the carrier leg of an advanced estimate, in calendar days.
type Transit struct {
	Min int
	Max int
}

// NewEstimate validates the window ordering and fills MinDate/MaxDate; an
// advanced estimate adds Transit.Min and Transit.Max calendar days to the ship dates.
func NewEstimate(p Params) (Estimate, error) {
	e := Estimate{
		formattedRange: p.FormattedRange,
		carrier:        strings.TrimSpace(p.Carrier),
		note:           strings.TrimSpace(p.Note),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setDays(p.MinDays, p.MaxDays),
		e.setShipDates(p.ShipMinDate, p.ShipMaxDate),
		e.setTransit(p.Transit),
	); err != nil {
		return Estimate{}, err
	}

	e.minDate, e.maxDate = e.shipMinDate, e.shipMaxDate
	if e.hasTransit {
		e.minDate = e.shipMinDate.AddDate(0, 0, e.transitMin)
		e.maxDate = e.shipMaxDate.AddDate(0, 0, e.transitMax)
	}

	return e, nil
}

func (e Estimate) Validate() error {
	return e.guard.Validate(ErrEstimateIsNotConstructed)
}

func (e Estimate) MinDays() int { return e.minDays }

func (e Estimate) MaxDays() int { return e.maxDays }

func (e Estimate) ShipMinDate() time.Time { return e.shipMinDate }

func (e Estimate) ShipMaxDate() time.Time { return e.shipMaxDate }

func (e Estimate) MinDate() time.Time { return e.minDate }

func (e Estimate) MaxDate() time.Time { return e.maxDate }

func (e Estimate) FormattedRange() string { return e.formattedRange }

func (e Estimate) Carrier() string { return e.carrier }

func (e Estimate) Note() string { return e.note }

// IsAdvanced reports whether the estimate includes carrier transit.
func (e Estimate) IsAdvanced() bool { return e.hasTransit }

func (e Estimate) TransitMin() (int, bool) { return e.transitMin, e.hasTransit }

func (e Estimate) TransitMax() (int, bool) { return e.transitMax, e.hasTransit }

// WithFormattedRange returns a copy carrying label.
func (e Estimate) WithFormattedRange(label string) Estimate {
	e.formattedRange = label
	return e
}

func (e *Estimate) setDays(lo, hi int) error {
	if lo < 0 {
		return errs.NewValueIsInvalidErrorWithCause("minDays", fmt.Errorf("%d is negative", lo))
	}
	if hi < lo {
		return errs.NewValueIsInvalidErrorWithCause("maxDays", fmt.Errorf("%d is less than minDays %d", hi, lo))
	}
	e.minDays, e.maxDays = lo, hi
	return nil
}

func (e *Estimate) setShipDates(lo, hi time.Time) error {
	if lo.IsZero() || hi.IsZero() {
		return errs.NewValueIsRequiredError("ship dates")
	}
	if hi.Before(lo) {
		return errs.NewValueIsInvalidErrorWithCause("shipMaxDate",
			fmt.Errorf("%s is before shipMinDate %s", hi.Format(time.DateOnly), lo.Format(time.DateOnly)))
	}
	e.shipMinDate, e.shipMaxDate = lo, hi
	return nil
}

func (e *Estimate) setTransit(t *Transit) error {
	if t == nil {
		return nil
	}
	if t.Min < 0 || t.Max < t.Min {
		return errs.NewValueIsInvalidErrorWithCause("transit", fmt.Errorf("window %d..%d", t.Min, t.Max))
	}
	e.transitMin, e.transitMax, e.hasTransit = t.Min, t.Max, true
	return nil
}
