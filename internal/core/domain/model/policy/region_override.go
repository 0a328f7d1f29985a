package policy

import (
	"errors"
	"strings"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/pkg/errs"
	"eta/internal/pkg/guard"
)

// ErrRegionOverrideIsNotConstructed is returned when a zero RegionOverride is used.
var ErrRegionOverrideIsNotConstructed = errors.New("RegionOverride must be created via NewRegionOverride constructor")

// RegionOverride replaces a policy's lead time for one destination region.
// Only Fixed and Range modes are allowed.
type RegionOverride struct { //nolint:recvcheck //using for validation
	region    string
	mode      EstimateMode
	fixedDays *int
	minDays   *int
	maxDays   *int
	carrier   string
	note      string
	guard     guard.ConstructorGuard
}

// RegionOverrideParams carries the inputs of NewRegionOverride.
type RegionOverrideParams struct {
	Region    string
	Mode      EstimateMode
	FixedDays *int
	MinDays   *int
	MaxDays   *int
	Carrier   string
	Note      string
}

// NewRegionOverride validates and builds a RegionOverride. Region codes are
// trimmed and upper-cased so "eu" and "EU" refer to the same region.
func NewRegionOverride(p RegionOverrideParams) (RegionOverride, error) {
	o := RegionOverride{
		carrier: strings.TrimSpace(p.Carrier),
		note:    strings.TrimSpace(p.Note),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setRegion(p.Region),
		o.setWindow(p.Mode, p.FixedDays, p.MinDays, p.MaxDays),
	); err != nil {
		return RegionOverride{}, err
	}

	return o, nil
}

func (o RegionOverride) Validate() error {
	return o.guard.Validate(ErrRegionOverrideIsNotConstructed)
}

func (o RegionOverride) Region() string { return o.region }

func (o RegionOverride) Mode() EstimateMode { return o.mode }

func (o RegionOverride) FixedDays() (int, bool) { return deref(o.fixedDays) }

func (o RegionOverride) MinDays() (int, bool) { return deref(o.minDays) }

func (o RegionOverride) MaxDays() (int, bool) { return deref(o.maxDays) }

// Carrier returns the carrier the region ships with, or "" when unspecified.
func (o RegionOverride) Carrier() string { return o.carrier }

func (o RegionOverride) Note() string { return o.note }

func (o *RegionOverride) setRegion(region string) error {
	region = kernel.NormalizeRegion(region)
	if region == "" {
		return errs.NewValueIsRequiredError("region")
	}
	o.region = region
	return nil
}

func (o *RegionOverride) setWindow(mode EstimateMode, fixedDays, minDays, maxDays *int) error {
	if err := mode.ValidateForOverride(); err != nil {
		return err
	}
	if err := validateWindow(mode, fixedDays, minDays, maxDays); err != nil {
		return err
	}

	o.mode = mode
	o.fixedDays = copyInt(fixedDays)
	o.minDays = copyInt(minDays)
	o.maxDays = copyInt(maxDays)
	return nil
}
