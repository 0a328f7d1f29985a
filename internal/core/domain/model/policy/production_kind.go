package policy

import (
	"fmt"

	"eta/internal/pkg/errs"
)

// ProductionKind tells whether goods are on the shelf or made per order.
type ProductionKind int

const (
	// ProductionKindUnknown is the zero value and never valid.
	ProductionKindUnknown ProductionKind = iota
	// Stocked goods ship from existing inventory.
	Stocked
	// Handmade goods are produced after the order is placed.
	Handmade
)

func getProductionKindStrings() map[ProductionKind]string {
	return map[ProductionKind]string{
		ProductionKindUnknown: "unknown",
		Stocked:               "stocked",
		Handmade:              "handmade",
	}
}

// ParseProductionKind maps the wire name ("stocked", "handmade") to a ProductionKind.
func ParseProductionKind(s string) (ProductionKind, error) {
	for kind, name := range getProductionKindStrings() {
		if kind != ProductionKindUnknown && name == s {
			return kind, nil
		}
	}
	return ProductionKindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"productionKind", fmt.Errorf("%q is not one of stocked, handmade", s))
}

// Validate rejects ProductionKindUnknown and out of range values.
func (k ProductionKind) Validate() error {
	switch k {
	case Stocked, Handmade:
		return nil
	case ProductionKindUnknown:
		return errs.NewValueIsRequiredError("productionKind")
	default:
		return errs.NewValueIsInvalidErrorWithCause("productionKind", fmt.Errorf("%d is not a valid production kind", k))
	}
}

func (k ProductionKind) String() string {
	if str, ok := getProductionKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
