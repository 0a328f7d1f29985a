package slaconfig

import (
	"context"
	"sync/atomic"

	"eta/internal/core/domain/model/sla"
	"eta/internal/core/ports"
)

// Provider holds the rule set currently used by estimate requests. Readers
// get an immutable snapshot; Reload swaps the whole set in one step.
type Provider struct {
	current atomic.Pointer[sla.RuleSet]
	loader  ports.SlaRuleLoader
}

// NewProvider starts with initial, or the built-in defaults when initial is nil.
func NewProvider(loader ports.SlaRuleLoader, initial *sla.RuleSet) *Provider {
	p := &Provider{loader: loader}
	if initial == nil {
		initial = sla.EmptyRuleSet()
	}
	p.current.Store(initial)
	return p
}

func (p *Provider) Current() *sla.RuleSet {
	return p.current.Load()
}

// Reload loads a fresh set and installs it. On error the previous set stays
// in place and the error is returned.
func (p *Provider) Reload(ctx context.Context) (*sla.RuleSet, error) {
	set, err := p.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	p.current.Store(set)
	return set, nil
}
