package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/shared/constants"
)

// PlanModel represents the database persistence model for SaaS plans.
type PlanModel struct {
	ID                uint    `gorm:"primarykey"`
	Name              string  `gorm:"not null;size:100"`
	Code              string  `gorm:"uniqueIndex;not null;size:50"`
	MonthlyPrice      float64 `gorm:"not null"`
	Currency          string  `gorm:"not null;size:3;default:USD"`
	MaxUnits          uint    `gorm:"not null"`
	Features          datatypes.JSON
	AIFeaturesEnabled bool `gorm:"default:false"`
	Version           int  `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}

// BeforeCreate hook for GORM
func (p *PlanModel) BeforeCreate(tx *gorm.DB) error {
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}
