package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/shared/constants"
)

// UnitModel represents the database persistence model for units. Identifier
// is unique within its condominium, not globally.
type UnitModel struct {
	ID                uint    `gorm:"primarykey"`
	CondominiumID     uint    `gorm:"not null;uniqueIndex:idx_units_condo_identifier"`
	Identifier        string  `gorm:"not null;size:50;uniqueIndex:idx_units_condo_identifier"`
	OwnerID           *uint   `gorm:"index:idx_units_owner"`
	AreaM2            float64 `gorm:"not null;default:0"`
	AliquotPercentage float64 `gorm:"not null;default:0"`
	CurrentBalance    float64 `gorm:"not null;default:0"`
	Version           int     `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UnitModel) TableName() string {
	return constants.TableUnits
}

// BeforeCreate hook for GORM
func (u *UnitModel) BeforeCreate(tx *gorm.DB) error {
	if u.Version == 0 {
		u.Version = 1
	}
	return nil
}
