package sla

import (
	"errors"
	"fmt"
	"math"
	"path"
	"strings"

	"eta/internal/pkg/errs"
	"eta/internal/pkg/guard"
)

const (
	// MinRemoteAreaFactor and MaxRemoteAreaFactor bound Rule.RemoteAreaFactor.
	MinRemoteAreaFactor = 1.0
	MaxRemoteAreaFactor = 3.0
	// MaxTransitDays caps declared transit days.
	MaxTransitDays = 120
)

var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule constructor")

// Rule declares the transit window of a carrier for a Scope.
type Rule struct { //nolint:recvcheck //using for validation
	scope            Scope
	carrier          string
	transitMin       int
	transitMax       int
	remoteAreaFactor float64
	guard            guard.ConstructorGuard
}

// RuleParams carries the inputs of NewRule. A zero RemoteAreaFactor means none.
type RuleParams struct {
	Scope            Scope
	Carrier          string
	TransitMin       int
	TransitMax       int
	RemoteAreaFactor float64
}

func NewRule(p RuleParams) (Rule, error) {
	r := Rule{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setScope(p.Scope),
		r.setCarrier(p.Carrier),
		r.setTransit(p.TransitMin, p.TransitMax),
		r.setRemoteAreaFactor(p.RemoteAreaFactor),
	); err != nil {
		return Rule{}, err
	}

	return r, nil
}

func (r Rule) Validate() error {
	return r.guard.Validate(ErrRuleIsNotConstructed)
}

func (r Rule) Scope() Scope { return r.scope }

func (r Rule) Carrier() string { return r.carrier }

// TransitMin and TransitMax are the declared days, before the remote area factor.
func (r Rule) TransitMin() int { return r.transitMin }

func (r Rule) TransitMax() int { return r.transitMax }

// RemoteAreaFactor returns the factor, or MinRemoteAreaFactor when none was declared.
func (r Rule) RemoteAreaFactor() float64 {
	if r.remoteAreaFactor == 0 {
		return MinRemoteAreaFactor
	}
	return r.remoteAreaFactor
}

// ServesCarrier reports whether the rule applies to carrier. An empty carrier
// means the caller has no preference.
func (r Rule) ServesCarrier(carrier string) bool {
	carrier = strings.TrimSpace(carrier)
	return carrier == "" || strings.EqualFold(r.carrier, carrier)
}

// Transit returns the effective window: both ends scaled by the remote area
// factor and rounded up.
func (r Rule) Transit() (int, int) {
	f := r.RemoteAreaFactor()
	return int(math.Ceil(float64(r.transitMin) * f)), int(math.Ceil(float64(r.transitMax) * f))
}

func (r *Rule) setScope(scope Scope) error {
	if scope.IsEmpty() {
		return errs.NewValueIsRequiredErrorWithCause("scope", errors.New("at least one scope field must be declared"))
	}
	if scope.postalPattern != "" {
		if _, err := path.Match(scope.postalPattern, ""); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("postalPattern", err)
		}
	}
	r.scope = scope
	return nil
}

func (r *Rule) setCarrier(carrier string) error {
	carrier = strings.TrimSpace(carrier)
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	r.carrier = carrier
	return nil
}

func (r *Rule) setTransit(lo, hi int) error {
	if lo < 0 || lo > MaxTransitDays {
		return errs.NewValueIsOutOfRangeError("transitMin", lo, 0, MaxTransitDays)
	}
	if hi < 0 || hi > MaxTransitDays {
		return errs.NewValueIsOutOfRangeError("transitMax", hi, 0, MaxTransitDays)
	}
	if hi < lo {
		return errs.NewValueIsInvalidErrorWithCause("transitMax", fmt.Errorf("%d is less than transitMin %d", hi, lo))
	}
	r.transitMin = lo
	r.transitMax = hi
	return nil
}

func (r *Rule) setRemoteAreaFactor(f float64) error {
	if f == 0 {
		return nil
	}
	if math.IsNaN(f) || f < MinRemoteAreaFactor || f > MaxRemoteAreaFactor {
		return errs.NewValueIsOutOfRangeError("remoteAreaFactor", f, MinRemoteAreaFactor, MaxRemoteAreaFactor)
	}
	r.remoteAreaFactor = f
	return nil
}
