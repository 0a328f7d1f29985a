package ports

import (
	"context"

	"eta/internal/core/domain/model/sla"
)

// SlaRuleProvider hands out the current SLA rule set. Implementations may
// swap the set at any time; callers keep the snapshot they received for the
// duration of one computation.
type SlaRuleProvider interface {
	Current() *sla.RuleSet
}

// SlaRuleLoader reads a complete rule set from its source.
type SlaRuleLoader interface {
	Load(ctx context.Context) (*sla.RuleSet, error)
}
