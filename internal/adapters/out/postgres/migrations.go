package postgres

import (
	"eta/internal/adapters/out/postgres/policyrepo"
	"eta/internal/adapters/out/postgres/warehouserepo"

	"gorm.io/gorm"
)

// Migrate creates or alters the tables behind the repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&policyrepo.PolicyDTO{}, &warehouserepo.WarehouseDTO{})
}
