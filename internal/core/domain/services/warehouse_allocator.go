package services

import (
	"cmp"
	"math"
	"slices"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/warehouse"
)

// WarehouseAllocator picks the origin of every line item. Implementations
// receive a non-empty list of active warehouses and return one warehouse per
// item, in item order; every returned warehouse comes from the list.
type WarehouseAllocator interface {
	Allocate(items []warehouse.LineItem, warehouses []*warehouse.Warehouse, destination kernel.Coordinates) []*warehouse.Warehouse
}

// RoundRobinAllocator assigns item i to warehouse i mod n. It ignores stock and distance.
type RoundRobinAllocator struct{}

func (RoundRobinAllocator) Allocate(
	items []warehouse.LineItem,
	warehouses []*warehouse.Warehouse,
	_ kernel.Coordinates,
) []*warehouse.Warehouse {
	out := make([]*warehouse.Warehouse, len(items))
	for i := range items {
		out[i] = warehouses[i%len(warehouses)]
	}
	return out
}

// NearestWarehouseAllocator ships every item from the warehouse closest to the
// destination, the first one on ties. Without valid destination coordinates it
// falls back to round robin.
type NearestWarehouseAllocator struct{}

func (NearestWarehouseAllocator) Allocate(
	items []warehouse.LineItem,
	warehouses []*warehouse.Warehouse,
	destination kernel.Coordinates,
) []*warehouse.Warehouse {
	nearest := nearestWarehouse(warehouses, destination)
	if nearest == nil {
		return RoundRobinAllocator{}.Allocate(items, warehouses, destination)
	}

	out := make([]*warehouse.Warehouse, len(items))
	for i := range items {
		out[i] = nearest
	}
	return out
}

// StockAwareAllocator ships each item from a warehouse holding enough stock,
// preferring the one nearest to the destination. Stock is reserved as items
// are allocated, so two lines of the same product do not both count the same
// units. Items no warehouse can cover fall back to round robin.
type StockAwareAllocator struct{}

func (StockAwareAllocator) Allocate(
	items []warehouse.LineItem,
	warehouses []*warehouse.Warehouse,
	destination kernel.Coordinates,
) []*warehouse.Warehouse {
	ordered := byDistance(warehouses, destination)
	reserved := make(map[string]map[string]int, len(warehouses))

	out := make([]*warehouse.Warehouse, len(items))
	for i, item := range items {
		out[i] = warehouses[i%len(warehouses)]
		for _, w := range ordered {
			if !w.TracksStock() {
				continue
			}
			taken := reserved[w.Code()]
			if w.StockOf(item.ProductID())-taken[item.ProductID()] < item.Quantity() {
				continue
			}
			if taken == nil {
				taken = make(map[string]int)
				reserved[w.Code()] = taken
			}
			taken[item.ProductID()] += item.Quantity()
			out[i] = w
			break
		}
	}
	return out
}

func nearestWarehouse(warehouses []*warehouse.Warehouse, destination kernel.Coordinates) *warehouse.Warehouse {
	if destination.Validate() != nil {
		return nil
	}

	var (
		nearest *warehouse.Warehouse
		best    = math.MaxFloat64
	)
	for _, w := range warehouses {
		d, err := w.Location().DistanceKm(destination)
		if err != nil {
			continue
		}
		if d < best {
			best, nearest = d, w
		}
	}
	return nearest
}

// byDistance orders warehouses nearest first, keeping the input order when
// the destination is unknown.
func byDistance(warehouses []*warehouse.Warehouse, destination kernel.Coordinates) []*warehouse.Warehouse {
	ordered := slices.Clone(warehouses)
	if destination.Validate() != nil {
		return ordered
	}

	dist := make(map[string]float64, len(ordered))
	for _, w := range ordered {
		d, err := w.Location().DistanceKm(destination)
		if err != nil {
			d = math.MaxFloat64
		}
		dist[w.Code()] = d
	}
	slices.SortStableFunc(ordered, func(a, b *warehouse.Warehouse) int {
		return cmp.Compare(dist[a.Code()], dist[b.Code()])
	})
	return ordered
}
