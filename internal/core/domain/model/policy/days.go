package policy

import (
	"fmt"

	"eta/internal/pkg/errs"
)

const (
	// MinLeadDays is the smallest configurable day count.
	MinLeadDays = 0
	// MaxLeadDays caps any configured day count.
	MaxLeadDays = 365
)

// validateWindow checks the fixed/range consistency rule shared by policies and overrides.
func validateWindow(mode EstimateMode, fixedDays, minDays, maxDays *int) error {
	switch mode {
	case Fixed:
		if fixedDays == nil {
			return errs.NewValueIsRequiredErrorWithCause("fixedDays", fmt.Errorf("estimate mode is %s", mode))
		}
		return validateDays("fixedDays", *fixedDays)
	case Range:
		if minDays == nil || maxDays == nil {
			return errs.NewValueIsRequiredErrorWithCause("minDays/maxDays", fmt.Errorf("estimate mode is %s", mode))
		}
		if err := validateDays("minDays", *minDays); err != nil {
			return err
		}
		if err := validateDays("maxDays", *maxDays); err != nil {
			return err
		}
		if *minDays > *maxDays {
			return errs.NewValueIsInvalidErrorWithCause(
				"minDays", fmt.Errorf("%d is greater than maxDays %d", *minDays, *maxDays))
		}
		return nil
	case RuleBased, EstimateModeUnknown:
		return nil
	}
	return nil
}

func validateDays(name string, days int) error {
	if days < MinLeadDays || days > MaxLeadDays {
		return errs.NewValueIsOutOfRangeError(name, days, MinLeadDays, MaxLeadDays)
	}
	return nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func deref(v *int) (int, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
