package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/shared/constants"
)

// CondominiumModel represents the database persistence model for condominiums.
// Settings and Amenities are JSON columns; their shape belongs to the domain.
type CondominiumModel struct {
	ID         uint   `gorm:"primarykey"`
	Name       string `gorm:"not null;size:255"`
	Address    string `gorm:"not null;size:500"`
	AdminID    uint   `gorm:"not null;index:idx_condominiums_admin"`
	ResellerID *uint  `gorm:"index:idx_condominiums_reseller"`
	Settings   datatypes.JSON
	Amenities  datatypes.JSON
	Version    int `gorm:"not null;default:1"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (CondominiumModel) TableName() string {
	return constants.TableCondominiums
}

// BeforeCreate hook for GORM
func (c *CondominiumModel) BeforeCreate(tx *gorm.DB) error {
	if c.Version == 0 {
		c.Version = 1
	}
	return nil
}
