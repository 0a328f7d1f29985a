package queries

import (
	"eta/internal/core/domain/services"
	"eta/internal/pkg/errs"
)

// AllocationStrategy selects the WarehouseAllocator used by PlanShipmentQuery.
type AllocationStrategy int

const (
	RoundRobin AllocationStrategy = iota
	Nearest
	StockAware
)

func getAllocationStrategyStrings() map[AllocationStrategy]string {
	return map[AllocationStrategy]string{
		RoundRobin: "roundRobin",
		Nearest:    "nearest",
		StockAware: "stockAware",
	}
}

func (s AllocationStrategy) String() string {
	if v, ok := getAllocationStrategyStrings()[s]; ok {
		return v
	}
	return "unknown"
}

// ParseAllocationStrategy maps a strategy name to its value; "" means RoundRobin.
func ParseAllocationStrategy(name string) (AllocationStrategy, error) {
	if name == "" {
		return RoundRobin, nil
	}
	for s, v := range getAllocationStrategyStrings() {
		if v == name {
			return s, nil
		}
	}
	return RoundRobin, errs.NewValueIsInvalidError("strategy")
}

func (s AllocationStrategy) allocator() services.WarehouseAllocator {
	switch s {
	case Nearest:
		return services.NearestWarehouseAllocator{}
	case StockAware:
		return services.StockAwareAllocator{}
	case RoundRobin:
		return services.RoundRobinAllocator{}
	}
	return services.RoundRobinAllocator{}
}
