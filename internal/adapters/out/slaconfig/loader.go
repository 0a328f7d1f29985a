// Package slaconfig reads carrier transit rules from a YAML file and keeps
// the current rule set available to concurrent estimate requests.
package slaconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"eta/internal/core/domain/model/sla"

	"gopkg.in/yaml.v3"
)

// File is the YAML document layout.
//
//	defaults:
//	  - region: EU
//	    transitMin: 4
//	    transitMax: 8
//	    carrier: DHL
//	rules:
//	  - scope: {province: Istanbul, region: DOMESTIC}
//	    carrier: Yurtici
//	    transitMin: 1
//	    transitMax: 2
type File struct {
	Defaults []DefaultEntry `yaml:"defaults"`
	Rules    []RuleEntry    `yaml:"rules"`
}

type DefaultEntry struct {
	Region     string `yaml:"region"`
	TransitMin int    `yaml:"transitMin"`
	TransitMax int    `yaml:"transitMax"`
	Carrier    string `yaml:"carrier"`
}

type ScopeEntry struct {
	PostalPattern string `yaml:"postalPattern"`
	District      string `yaml:"district"`
	Province      string `yaml:"province"`
	Region        string `yaml:"region"`
}

type RuleEntry struct {
	Scope            ScopeEntry `yaml:"scope"`
	Carrier          string     `yaml:"carrier"`
	TransitMin       int        `yaml:"transitMin"`
	TransitMax       int        `yaml:"transitMax"`
	RemoteAreaFactor float64    `yaml:"remoteAreaFactor"`
}

// Loader implements ports.SlaRuleLoader over a file path.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Path() string { return l.path }

// Load reads and validates the whole file. An invalid entry fails the load;
// partial rule sets are never returned.
func (l *Loader) Load(ctx context.Context) (*sla.RuleSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read sla rules %s: %w", l.path, err)
	}

	set, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse sla rules %s: %w", l.path, err)
	}
	return set, nil
}

// Parse decodes a YAML rule document. Unknown keys are rejected so that a
// misspelt field does not silently fall back to its zero value.
func Parse(r io.Reader) (*sla.RuleSet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return f.ruleSet()
}

func (f File) ruleSet() (*sla.RuleSet, error) {
	overrides := make([]sla.DefaultTransit, 0, len(f.Defaults))
	for _, d := range f.Defaults {
		overrides = append(overrides, sla.DefaultTransit{
			Region:     d.Region,
			TransitMin: d.TransitMin,
			TransitMax: d.TransitMax,
			Carrier:    d.Carrier,
		})
	}

	defaults, err := sla.NewDefaultTable(overrides)
	if err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}

	rules := make([]sla.Rule, 0, len(f.Rules))
	for i, entry := range f.Rules {
		rule, ruleErr := sla.NewRule(sla.RuleParams{
			Scope: sla.NewScope(
				entry.Scope.PostalPattern,
				entry.Scope.District,
				entry.Scope.Province,
				entry.Scope.Region,
			),
			Carrier:          entry.Carrier,
			TransitMin:       entry.TransitMin,
			TransitMax:       entry.TransitMax,
			RemoteAreaFactor: entry.RemoteAreaFactor,
		})
		if ruleErr != nil {
			return nil, fmt.Errorf("rule %d: %w", i, ruleErr)
		}
		rules = append(rules, rule)
	}

	return sla.NewRuleSet(rules, defaults)
}
