package http

import (
	"net/url"
	"time"

	"eta/internal/core/domain/model/policy"

	"github.com/oapi-codegen/runtime"
	"github.com/oapi-codegen/runtime/types"
)

// paramError reports a query parameter that could not be decoded.
type paramError struct {
	name string
	err  error
}

func (e *paramError) Error() string {
	return "invalid format for parameter " + e.name + ": " + e.err.Error()
}

func (e *paramError) Unwrap() error {
	return e.err
}

type queryBinder struct {
	values url.Values
	err    error
}

func (b *queryBinder) has(name string) bool {
	_, ok := b.values[name]
	return ok
}

// bind decodes name into dest. An absent optional parameter leaves dest
// untouched; present ones are bound as required so dest stays a plain value.
func (b *queryBinder) bind(name string, required bool, dest any) {
	if b.err != nil {
		return
	}
	if !required && !b.has(name) {
		return
	}
	if err := runtime.BindQueryParameter("form", true, true, name, b.values, dest); err != nil {
		b.err = &paramError{name: name, err: err}
	}
}

// bindOptional sets *dest only when name is present and decodes.
func bindOptional[T any](b *queryBinder, name string, dest **T) {
	if !b.has(name) {
		return
	}
	var v T
	b.bind(name, false, &v)
	if b.err == nil {
		*dest = &v
	}
}

// estimateParams are the query parameters shared by the estimate endpoints.
type estimateParams struct {
	Destination
	Carrier     string     `json:"carrier"     validate:"max=64"`
	Advanced    *bool      `json:"advanced"`
	Countdown   *bool      `json:"countdown"`
	ProductName string     `json:"productName" validate:"max=255"`
	Now         *time.Time `json:"now"`
	Timezone    string     `json:"timezone"    validate:"max=64"`
}

func (p *estimateParams) bind(b *queryBinder) {
	b.bind("region", false, &p.Region)
	b.bind("postalCode", false, &p.PostalCode)
	b.bind("district", false, &p.District)
	b.bind("province", false, &p.Province)
	b.bind("carrier", false, &p.Carrier)
	bindOptional(b, "advanced", &p.Advanced)
	bindOptional(b, "countdown", &p.Countdown)
	b.bind("productName", false, &p.ProductName)
	bindOptional(b, "now", &p.Now)
	b.bind("timezone", false, &p.Timezone)
}

// inlinePolicyParams describe a policy passed in the query string of GET /api/v1/estimate.
type inlinePolicyParams struct {
	ProductionKind         string       `json:"productionKind"         validate:"required,oneof=stocked handmade"`
	EstimateMode           string       `json:"estimateMode"           validate:"required,oneof=fixed range ruleBased"`
	CutoffHour             int          `json:"cutoffHour"             validate:"min=0,max=23"`
	BusinessDaysOnly       *bool        `json:"businessDaysOnly"`
	WeekendDispatchAllowed *bool        `json:"weekendDispatchAllowed"`
	FixedDays              *int         `json:"fixedDays"              validate:"omitempty,min=0,max=365"`
	MinDays                *int         `json:"minDays"                validate:"omitempty,min=0,max=365"`
	MaxDays                *int         `json:"maxDays"                validate:"omitempty,min=0,max=365"`
	DailyCapacity          *int         `json:"dailyCapacity"          validate:"omitempty,min=1"`
	BacklogUnits           *int         `json:"backlogUnits"           validate:"omitempty,min=0"`
	CapacityFactor         *float64     `json:"capacityFactor"         validate:"omitempty,min=0.5,max=2"`
	BlackoutDates          []types.Date `json:"blackoutDates"`
}

func (p *inlinePolicyParams) bind(b *queryBinder) {
	b.bind("productionKind", true, &p.ProductionKind)
	b.bind("estimateMode", true, &p.EstimateMode)
	b.bind("cutoffHour", true, &p.CutoffHour)
	bindOptional(b, "businessDaysOnly", &p.BusinessDaysOnly)
	bindOptional(b, "weekendDispatchAllowed", &p.WeekendDispatchAllowed)
	bindOptional(b, "fixedDays", &p.FixedDays)
	bindOptional(b, "minDays", &p.MinDays)
	bindOptional(b, "maxDays", &p.MaxDays)
	bindOptional(b, "dailyCapacity", &p.DailyCapacity)
	bindOptional(b, "backlogUnits", &p.BacklogUnits)
	bindOptional(b, "capacityFactor", &p.CapacityFactor)
	b.bind("blackoutDates", false, &p.BlackoutDates)
}

func (p inlinePolicyParams) params() (policy.Params, error) {
	cutoff := p.CutoffHour
	in := PolicyInput{
		ProductionKind:         p.ProductionKind,
		EstimateMode:           p.EstimateMode,
		BusinessDaysOnly:       deref(p.BusinessDaysOnly),
		WeekendDispatchAllowed: deref(p.WeekendDispatchAllowed),
		CutoffHour:             &cutoff,
		FixedDays:              p.FixedDays,
		MinDays:                p.MinDays,
		MaxDays:                p.MaxDays,
		DailyCapacity:          p.DailyCapacity,
		BacklogUnits:           p.BacklogUnits,
		CapacityFactor:         p.CapacityFactor,
	}
	for _, d := range p.BlackoutDates {
		in.BlackoutDates = append(in.BlackoutDates, BlackoutDate{Date: d})
	}
	return in.params()
}

func deref(b *bool) bool {
	return b != nil && *b
}
