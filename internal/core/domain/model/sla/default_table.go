package sla

import (
	"fmt"
	"strings"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/pkg/errs"
)

// Region codes of the built-in default table.
const (
	RegionDomestic = "DOMESTIC"
	RegionEU       = "EU"
	RegionMENA     = "MENA"
	RegionUS       = "US"
	RegionOther    = "OTHER"
)

// DefaultTransit is the fallback transit window of a region.
type DefaultTransit struct {
	Region     string
	TransitMin int
	TransitMax int
	Carrier    string
}

func (d DefaultTransit) validate() error {
	if d.Region == "" {
		return errs.NewValueIsRequiredError("region")
	}
	if strings.TrimSpace(d.Carrier) == "" {
		return errs.NewValueIsRequiredErrorWithCause("carrier", fmt.Errorf("region %s", d.Region))
	}
	if d.TransitMin < 0 || d.TransitMax > MaxTransitDays || d.TransitMin > d.TransitMax {
		return errs.NewValueIsInvalidErrorWithCause("transit",
			fmt.Errorf("region %s has window %d..%d", d.Region, d.TransitMin, d.TransitMax))
	}
	return nil
}

// DefaultTable maps region codes to fallback transit windows. It always
// contains an OTHER entry, used for unknown and empty regions.
type DefaultTable struct {
	entries map[string]DefaultTransit
}

// BuiltinDefaultTable returns the table used when no configuration overrides it.
func BuiltinDefaultTable() DefaultTable {
	t, _ := NewDefaultTable(nil)
	return t
}

func builtinEntries() []DefaultTransit {
	return []DefaultTransit{
		{Region: RegionDomestic, TransitMin: 1, TransitMax: 3, Carrier: "Local Post"},
		{Region: RegionEU, TransitMin: 5, TransitMax: 10, Carrier: "DHL"},
		{Region: RegionMENA, TransitMin: 3, TransitMax: 7, Carrier: "Aramex"},
		{Region: RegionUS, TransitMin: 7, TransitMax: 14, Carrier: "FedEx"},
		{Region: RegionOther, TransitMin: 10, TransitMax: 21, Carrier: "Standard International"},
	}
}

// NewDefaultTable layers overrides on top of the built-in entries. An override
// for an existing region replaces it; a new region is added.
func NewDefaultTable(overrides []DefaultTransit) (DefaultTable, error) {
	t := DefaultTable{entries: make(map[string]DefaultTransit)}
	for _, e := range builtinEntries() {
		t.entries[e.Region] = e
	}
	for _, e := range overrides {
		e.Region = kernel.NormalizeRegion(e.Region)
		e.Carrier = strings.TrimSpace(e.Carrier)
		if err := e.validate(); err != nil {
			return DefaultTable{}, err
		}
		t.entries[e.Region] = e
	}
	return t, nil
}

// Lookup returns the entry of region, falling back to OTHER.
func (t DefaultTable) Lookup(region string) DefaultTransit {
	if e, ok := t.entries[kernel.NormalizeRegion(region)]; ok {
		return e
	}
	return t.entries[RegionOther]
}

// Len is the number of regions in the table.
func (t DefaultTable) Len() int { return len(t.entries) }
