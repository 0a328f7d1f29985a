// Package ports defines the contracts between the estimate domain and its
// infrastructure: persistence of policies and warehouses, transaction
// boundaries, and the source of the current SLA rule set.
package ports

import (
	"context"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/policy"
)

// PolicyRepository defines the persistence contract for shipping policies.
// Policies are stored whole, with their region overrides and blackout dates.
type PolicyRepository interface {
	// Add persists a new policy. The policy must be valid and its ID unused.
	Add(ctx context.Context, aggregate *policy.ShippingPolicy) error

	// Update replaces a stored policy.
	// Returns errs.ObjectNotFoundError when no policy has the given ID.
	Update(ctx context.Context, aggregate *policy.ShippingPolicy) error

	// Get retrieves a policy by ID.
	// Returns errs.ObjectNotFoundError when no policy has the given ID.
	Get(ctx context.Context, id kernel.UUID) (*policy.ShippingPolicy, error)

	// Delete removes a policy.
	// Returns errs.ObjectNotFoundError when no policy has the given ID.
	Delete(ctx context.Context, id kernel.UUID) error
}
