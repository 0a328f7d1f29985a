package policyrepo

import (
	"context"
	"errors"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"
	"eta/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPolicyRepository implements ports.PolicyRepository using GORM.
type GormPolicyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormPolicyRepository creates a repository on db. A nil tracker is
// allowed for read-only use outside a unit of work.
func NewGormPolicyRepository(db *gorm.DB, tracker aggregateTracker) *GormPolicyRepository {
	return &GormPolicyRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPolicyRepository) Add(ctx context.Context, aggregate *policy.ShippingPolicy) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update overwrites every column of an existing row.
func (r *GormPolicyRepository) Update(ctx context.Context, aggregate *policy.ShippingPolicy) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PolicyDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("policy", aggregate.ID().String())
	}

	r.track(aggregate)
	return nil
}

func (r *GormPolicyRepository) Get(ctx context.Context, id kernel.UUID) (*policy.ShippingPolicy, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PolicyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("policy", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormPolicyRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PolicyDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("policy", id.String())
	}

	return nil
}

func (r *GormPolicyRepository) track(aggregate *policy.ShippingPolicy) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	}
}
