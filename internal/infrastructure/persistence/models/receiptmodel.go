package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/shared/constants"
)

// ReceiptModel represents the database persistence model for receipts. The
// unique index on (unit_id, billing_period) is the storage-level backstop
// against a fee calculation running twice for the same month.
type ReceiptModel struct {
	ID            uint    `gorm:"primarykey"`
	UnitID        uint    `gorm:"not null;uniqueIndex:idx_receipts_unit_period"`
	CondominiumID uint    `gorm:"not null;index:idx_receipts_condominium"`
	BillingPeriod string  `gorm:"not null;size:7;uniqueIndex:idx_receipts_unit_period"`
	TotalAmount   float64 `gorm:"not null"`
	Breakdown     datatypes.JSON
	Status        string    `gorm:"not null;size:20;default:pending;index:idx_receipts_status"`
	IssuedAt      time.Time `gorm:"not null"`
	DueDate       time.Time `gorm:"not null"`
	PaidAt        *time.Time
	Version       int `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ReceiptModel) TableName() string {
	return constants.TableReceipts
}

// BeforeCreate hook for GORM
func (r *ReceiptModel) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = "pending"
	}
	if r.Version == 0 {
		r.Version = 1
	}
	return nil
}
