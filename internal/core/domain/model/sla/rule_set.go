package sla

import (
	"slices"
)

// RuleSet is an immutable snapshot of declared rules and the default table.
type RuleSet struct {
	rules    []Rule
	defaults DefaultTable
}

// NewRuleSet copies rules, keeping declaration order. A zero defaults table is
// replaced by BuiltinDefaultTable.
func NewRuleSet(rules []Rule, defaults DefaultTable) (*RuleSet, error) {
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	if defaults.Len() == 0 {
		defaults = BuiltinDefaultTable()
	}
	return &RuleSet{rules: slices.Clone(rules), defaults: defaults}, nil
}

// EmptyRuleSet holds no rules and the built-in defaults.
func EmptyRuleSet() *RuleSet {
	return &RuleSet{defaults: BuiltinDefaultTable()}
}

func (s *RuleSet) Rules() []Rule {
	if s == nil {
		return nil
	}
	return slices.Clone(s.rules)
}

func (s *RuleSet) Defaults() DefaultTable {
	if s == nil || s.defaults.Len() == 0 {
		return BuiltinDefaultTable()
	}
	return s.defaults
}

func (s *RuleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}
