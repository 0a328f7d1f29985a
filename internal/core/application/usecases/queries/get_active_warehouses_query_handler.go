package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetActiveWarehousesQueryHandler reads the registry with plain SQL.
type GetActiveWarehousesQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveWarehousesQueryHandler(db *gorm.DB) GetActiveWarehousesQueryHandler {
	return GetActiveWarehousesQueryHandler{db: db}
}

// Handle returns the active warehouses ordered by code.
func (h GetActiveWarehousesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveWarehousesQuery,
) ([]GetActiveWarehousesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	warehouses := make([]GetActiveWarehousesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			name,
			latitude,
			longitude,
			cutoff_hour,
			weekend_dispatch_allowed
		FROM warehouses
		WHERE is_active
		ORDER BY code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var w GetActiveWarehousesQueryResponse
		if err = rows.Scan(
			&w.Code,
			&w.Name,
			&w.Latitude,
			&w.Longitude,
			&w.CutoffHour,
			&w.WeekendDispatchAllowed,
		); err != nil {
			return nil, err
		}
		if w.Name == "" {
			w.Name = w.Code
		}
		warehouses = append(warehouses, w)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}
