package warehouse

import (
	"errors"
	"maps"
	"strings"

	"eta/internal/core/domain/model/kernel"
	"eta/internal/pkg/errs"
	"eta/internal/pkg/guard"
)

const (
	// MaxCodeLength bounds Warehouse.Code.
	MaxCodeLength = 32
	// MinCutoffHour and MaxCutoffHour bound the local dispatch cutoff hour.
	MinCutoffHour = 0
	MaxCutoffHour = 23
)

var ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")

// Warehouse is a fulfillment origin. Its cutoff hour and weekend rule replace
// the shipping policy's for packages dispatched from it.
//
// Key responsibilities:
//   - Identifying the origin by a unique, upper-cased code
//   - Locating it for distance based allocation
//   - Reporting on-hand stock per product for stock aware allocation
//
// Example usage:
//
//	loc, _ := kernel.NewCoordinates(41.01, 28.97)
//	wh, err := warehouse.NewWarehouse(warehouse.Params{Code: "ist-1", Location: loc, CutoffHour: 15, IsActive: true})
//	if err != nil {
//	    // Handle construction error
//	}
type Warehouse struct {
	code                   string
	name                   string
	location               kernel.Coordinates
	cutoffHour             int
	weekendDispatchAllowed bool
	isActive               bool
	stock                  map[string]int
	guard                  guard.ConstructorGuard
}

// Params carries the inputs of NewWarehouse. Stock maps product IDs to units on hand
// and may be nil when the warehouse does not report inventory.
type Params struct {
	Code                   string
	Name                   string
	Location               kernel.Coordinates
	CutoffHour             int
	WeekendDispatchAllowed bool
	IsActive               bool
	Stock                  map[string]int
}

func NewWarehouse(p Params) (*Warehouse, error) {
	w := &Warehouse{
		name:                   strings.TrimSpace(p.Name),
		weekendDispatchAllowed: p.WeekendDispatchAllowed,
		isActive:               p.IsActive,
		guard:                  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setCode(p.Code),
		w.setLocation(p.Location),
		w.setCutoffHour(p.CutoffHour),
		w.setStock(p.Stock),
	); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

func (w *Warehouse) Code() string { return w.code }

// Name falls back to the code when no display name was given.
func (w *Warehouse) Name() string {
	if w.name == "" {
		return w.code
	}
	return w.name
}

func (w *Warehouse) Location() kernel.Coordinates { return w.location }

func (w *Warehouse) CutoffHour() int { return w.cutoffHour }

func (w *Warehouse) WeekendDispatchAllowed() bool { return w.weekendDispatchAllowed }

func (w *Warehouse) IsActive() bool { return w.isActive }

// TracksStock reports whether the warehouse reports inventory at all.
func (w *Warehouse) TracksStock() bool { return w.stock != nil }

// StockOf returns the units of productID on hand; 0 for unknown products.
func (w *Warehouse) StockOf(productID string) int {
	return w.stock[productID]
}

// Stock returns a copy of the inventory, nil when the warehouse does not track stock.
func (w *Warehouse) Stock() map[string]int {
	if w.stock == nil {
		return nil
	}
	return maps.Clone(w.stock)
}

func (w *Warehouse) setCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if len(code) > MaxCodeLength {
		return errs.NewValueIsOutOfRangeError("code length", len(code), 1, MaxCodeLength)
	}
	w.code = code
	return nil
}

func (w *Warehouse) setLocation(location kernel.Coordinates) error {
	if err := location.Validate(); err != nil {
		return err
	}
	w.location = location
	return nil
}

func (w *Warehouse) setCutoffHour(hour int) error {
	if hour < MinCutoffHour || hour > MaxCutoffHour {
		return errs.NewValueIsOutOfRangeError("cutoffHour", hour, MinCutoffHour, MaxCutoffHour)
	}
	w.cutoffHour = hour
	return nil
}

func (w *Warehouse) setStock(stock map[string]int) error {
	if stock == nil {
		return nil
	}
	for productID, units := range stock {
		if units < 0 {
			return errs.NewValueIsOutOfRangeError("stock of "+productID, units, 0, "unbounded")
		}
	}
	w.stock = maps.Clone(stock)
	return nil
}
