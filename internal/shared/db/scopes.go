package db

import (
	"gorm.io/gorm"
)

// ByCondominium scopes a query to one tenant. Every tenant-owned table
// carries a condominium_id column.
func ByCondominium(condominiumID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("condominium_id = ?", condominiumID)
	}
}
