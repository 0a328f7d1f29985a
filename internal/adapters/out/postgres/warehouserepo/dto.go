// Package warehouserepo persists the warehouse registry, one row per code.
package warehouserepo

import (
	"eta/internal/core/domain/model/kernel"
	"eta/internal/core/domain/model/warehouse"
)

// WarehouseDTO represents the database structure for persisting warehouses.
// Stock is nil for warehouses that do not report inventory.
type WarehouseDTO struct {
	Code                   string         `gorm:"type:varchar(32);primaryKey"`
	Name                   string         `gorm:"type:varchar(255);not null"`
	Latitude               float64        `gorm:"type:double precision;not null"`
	Longitude              float64        `gorm:"type:double precision;not null"`
	CutoffHour             int            `gorm:"type:smallint;not null"`
	WeekendDispatchAllowed bool           `gorm:"not null"`
	IsActive               bool           `gorm:"not null;index"`
	Stock                  map[string]int `gorm:"type:jsonb;serializer:json"`
}

// TableName overrides GORM's default "warehouse_dtos".
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

func fromDomain(w *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		Code:                   w.Code(),
		Name:                   w.Name(),
		Latitude:               w.Location().Latitude(),
		Longitude:              w.Location().Longitude(),
		CutoffHour:             w.CutoffHour(),
		WeekendDispatchAllowed: w.WeekendDispatchAllowed(),
		IsActive:               w.IsActive(),
		Stock:                  w.Stock(),
	}
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	loc, err := kernel.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return warehouse.NewWarehouse(warehouse.Params{
		Code:                   dto.Code,
		Name:                   dto.Name,
		Location:               loc,
		CutoffHour:             dto.CutoffHour,
		WeekendDispatchAllowed: dto.WeekendDispatchAllowed,
		IsActive:               dto.IsActive,
		Stock:                  dto.Stock,
	})
}
