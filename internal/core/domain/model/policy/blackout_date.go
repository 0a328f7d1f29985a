package policy

import (
	"errors"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/pkg/errs"
	"eta/internal/pkg/guard"
)

const (
	// DefaultBlackoutCapacityFactor applies when a blackout date is declared without one.
	DefaultBlackoutCapacityFactor = 1.0
	// MinCapacityFactor and MaxCapacityFactor bound every capacity factor.
	MinCapacityFactor = 0.5
	MaxCapacityFactor = 2.0
)

var ErrBlackoutDateIsNotConstructed = errors.New("BlackoutDate must be created via NewBlackoutDate constructor")

// BlackoutDate is a day (typically a holiday) excluded from production and dispatch.
// The capacity factor is stored and reported with the day; estimation only
// skips the day and never reads it.
type BlackoutDate struct {
	date           kernel.CalendarDate
	capacityFactor float64
	guard          guard.ConstructorGuard
}

// NewBlackoutDate builds a BlackoutDate; a zero capacityFactor means DefaultBlackoutCapacityFactor.
func NewBlackoutDate(date kernel.CalendarDate, capacityFactor float64) (BlackoutDate, error) {
	if err := date.Validate(); err != nil {
		return BlackoutDate{}, err
	}
	if capacityFactor == 0 {
		capacityFactor = DefaultBlackoutCapacityFactor
	}
	if err := validateCapacityFactor(capacityFactor); err != nil {
		return BlackoutDate{}, err
	}

	return BlackoutDate{
		date:           date,
		capacityFactor: capacityFactor,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (b BlackoutDate) Validate() error {
	return b.guard.Validate(ErrBlackoutDateIsNotConstructed)
}

func (b BlackoutDate) Date() kernel.CalendarDate { return b.date }

func (b BlackoutDate) CapacityFactor() float64 { return b.capacityFactor }

func validateCapacityFactor(f float64) error {
	if f < MinCapacityFactor || f > MaxCapacityFactor {
		return errs.NewValueIsOutOfRangeError("capacityFactor", f, MinCapacityFactor, MaxCapacityFactor)
	}
	return nil
}
