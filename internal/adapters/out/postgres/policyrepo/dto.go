// Package policyrepo persists shipping policies. A policy is one row; its
// region overrides live in a jsonb column and its blackout dates in two
// parallel array columns.
package policyrepo

import (
	"fmt"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PolicyDTO represents the database structure for persisting shipping policies.
type PolicyDTO struct {
	ID                     uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name                   string              `gorm:"type:varchar(255);not null"`
	ProductionKind         string              `gorm:"type:varchar(16);not null"`
	EstimateMode           string              `gorm:"type:varchar(16);not null"`
	BusinessDaysOnly       bool                `gorm:"not null"`
	WeekendDispatchAllowed bool                `gorm:"not null"`
	CutoffHour             int                 `gorm:"type:smallint;not null"`
	FixedDays              *int                `gorm:"type:int"`
	MinDays                *int                `gorm:"type:int"`
	MaxDays                *int                `gorm:"type:int"`
	DailyCapacity          *int                `gorm:"type:int"`
	BacklogUnits           *int                `gorm:"type:int"`
	CapacityFactor         *float64            `gorm:"type:double precision"`
	RegionOverrides        []RegionOverrideDTO `gorm:"type:jsonb;serializer:json"`
	BlackoutDates          pq.StringArray      `gorm:"type:text[]"`
	BlackoutFactors        pq.Float64Array     `gorm:"type:double precision[]"`
}

// TableName overrides GORM's default "policy_dtos".
func (PolicyDTO) TableName() string {
	return "shipping_policies"
}

// RegionOverrideDTO is the JSON shape of one region override.
type RegionOverrideDTO struct {
	Region    string `json:"region"`
	Mode      string `json:"mode"`
	FixedDays *int   `json:"fixedDays,omitempty"`
	MinDays   *int   `json:"minDays,omitempty"`
	MaxDays   *int   `json:"maxDays,omitempty"`
	Carrier   string `json:"carrier,omitempty"`
	Note      string `json:"note,omitempty"`
}

func optional(v int, ok bool) *int {
	if !ok {
		return nil
	}
	return &v
}

func fromDomain(p *policy.ShippingPolicy) PolicyDTO {
	overrides := make([]RegionOverrideDTO, 0, len(p.RegionOverrides()))
	for _, o := range p.RegionOverrides() {
		overrides = append(overrides, RegionOverrideDTO{
			Region:    o.Region(),
			Mode:      o.Mode().String(),
			FixedDays: optional(o.FixedDays()),
			MinDays:   optional(o.MinDays()),
			MaxDays:   optional(o.MaxDays()),
			Carrier:   o.Carrier(),
			Note:      o.Note(),
		})
	}

	blackouts := p.BlackoutDates()
	dates := make(pq.StringArray, 0, len(blackouts))
	factors := make(pq.Float64Array, 0, len(blackouts))
	for _, b := range blackouts {
		dates = append(dates, b.Date().String())
		factors = append(factors, b.CapacityFactor())
	}

	var capacityFactor *float64
	if p.HasCapacityFactor() {
		f := p.CapacityFactor()
		capacityFactor = &f
	}

	return PolicyDTO{
		ID:                     p.ID().Bytes(),
		Name:                   p.Name(),
		ProductionKind:         p.ProductionKind().String(),
		EstimateMode:           p.EstimateMode().String(),
		BusinessDaysOnly:       p.BusinessDaysOnly(),
		WeekendDispatchAllowed: p.WeekendDispatchAllowed(),
		CutoffHour:             p.CutoffHour(),
		FixedDays:              optional(p.FixedDays()),
		MinDays:                optional(p.MinDays()),
		MaxDays:                optional(p.MaxDays()),
		DailyCapacity:          optional(p.DailyCapacity()),
		BacklogUnits:           optional(p.BacklogUnits()),
		CapacityFactor:         capacityFactor,
		RegionOverrides:        overrides,
		BlackoutDates:          dates,
		BlackoutFactors:        factors,
	}
}

// toDomain rebuilds the policy through its constructor, so a row that no
// longer satisfies the invariants is reported instead of returned.
func toDomain(dto PolicyDTO) (*policy.ShippingPolicy, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := policy.ParseProductionKind(dto.ProductionKind)
	if err != nil {
		return nil, err
	}

	mode, err := policy.ParseEstimateMode(dto.EstimateMode)
	if err != nil {
		return nil, err
	}

	overrides, err := overridesToDomain(dto.RegionOverrides)
	if err != nil {
		return nil, err
	}

	blackouts, err := blackoutsToDomain(dto.BlackoutDates, dto.BlackoutFactors)
	if err != nil {
		return nil, err
	}

	return policy.NewShippingPolicy(policy.Params{
		ID:                     id,
		Name:                   dto.Name,
		ProductionKind:         kind,
		EstimateMode:           mode,
		BusinessDaysOnly:       dto.BusinessDaysOnly,
		WeekendDispatchAllowed: dto.WeekendDispatchAllowed,
		CutoffHour:             dto.CutoffHour,
		FixedDays:              dto.FixedDays,
		MinDays:                dto.MinDays,
		MaxDays:                dto.MaxDays,
		DailyCapacity:          dto.DailyCapacity,
		BacklogUnits:           dto.BacklogUnits,
		CapacityFactor:         dto.CapacityFactor,
		RegionOverrides:        overrides,
		BlackoutDates:          blackouts,
	})
}

func overridesToDomain(dtos []RegionOverrideDTO) ([]policy.RegionOverride, error) {
	overrides := make([]policy.RegionOverride, 0, len(dtos))
	for _, dto := range dtos {
		mode, err := policy.ParseEstimateMode(dto.Mode)
		if err != nil {
			return nil, err
		}

		o, err := policy.NewRegionOverride(policy.RegionOverrideParams{
			Region:    dto.Region,
			Mode:      mode,
			FixedDays: dto.FixedDays,
			MinDays:   dto.MinDays,
			MaxDays:   dto.MaxDays,
			Carrier:   dto.Carrier,
			Note:      dto.Note,
		})
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}

func blackoutsToDomain(dates pq.StringArray, factors pq.Float64Array) ([]policy.BlackoutDate, error) {
	if len(dates) != len(factors) {
		return nil, fmt.Errorf("blackout columns out of sync: %d dates, %d factors", len(dates), len(factors))
	}

	blackouts := make([]policy.BlackoutDate, 0, len(dates))
	for i, raw := range dates {
		d, err := kernel.ParseCalendarDate(raw)
		if err != nil {
			return nil, err
		}

		b, err := policy.NewBlackoutDate(d, factors[i])
		if err != nil {
			return nil, err
		}
		blackouts = append(blackouts, b)
	}
	return blackouts, nil
}
