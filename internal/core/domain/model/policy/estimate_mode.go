package policy

import (
	"fmt"

	"eta/internal/pkg/errs"
)

// EstimateMode selects how the production/handling window is derived.
type EstimateMode int

const (
	// EstimateModeUnknown is the zero value and never valid.
	EstimateModeUnknown EstimateMode = iota
	// Fixed uses the same number of days for both ends of the window.
	Fixed
	// Range uses explicit minDays and maxDays.
	Range
	// RuleBased derives the window from daily capacity and backlog.
	RuleBased
)

func getEstimateModeStrings() map[EstimateMode]string {
	return map[EstimateMode]string{
		EstimateModeUnknown: "unknown",
		Fixed:               "fixed",
		Range:               "range",
		RuleBased:           "ruleBased",
	}
}

// ParseEstimateMode maps the wire name ("fixed", "range", "ruleBased") to an EstimateMode.
func ParseEstimateMode(s string) (EstimateMode, error) {
	for mode, name := range getEstimateModeStrings() {
		if mode != EstimateModeUnknown && name == s {
			return mode, nil
		}
	}
	return EstimateModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"estimateMode", fmt.Errorf("%q is not one of fixed, range, ruleBased", s))
}

func (m EstimateMode) Validate() error {
	switch m {
	case Fixed, Range, RuleBased:
		return nil
	case EstimateModeUnknown:
		return errs.NewValueIsRequiredError("estimateMode")
	default:
		return errs.NewValueIsInvalidErrorWithCause("estimateMode", fmt.Errorf("%d is not a valid estimate mode", m))
	}
}

// ValidateForOverride accepts only the modes a region override may use.
func (m EstimateMode) ValidateForOverride() error {
	if m != Fixed && m != Range {
		return errs.NewValueIsInvalidErrorWithCause(
			"override mode", fmt.Errorf("%s is not allowed for a region override", m.String()))
	}
	return nil
}

func (m EstimateMode) String() string {
	if str, ok := getEstimateModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}
