package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/shared/constants"
)

// ExpenseModel represents the database persistence model for common expenses.
type ExpenseModel struct {
	ID            uint      `gorm:"primarykey"`
	CondominiumID uint      `gorm:"not null;index:idx_expenses_condo_date,priority:1"`
	Description   string    `gorm:"not null;size:500"`
	Amount        float64   `gorm:"not null"`
	ExpenseType   string    `gorm:"not null;size:20"`
	Category      string    `gorm:"size:100"`
	Date          time.Time `gorm:"not null;index:idx_expenses_condo_date,priority:2"`
	InvoiceURL    *string   `gorm:"size:500"`
	Status        string  `gorm:"not null;size:20;default:active"`
	RegisteredBy  uint    `gorm:"not null"`
	Version       int     `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ExpenseModel) TableName() string {
	return constants.TableExpenses
}

// BeforeCreate hook for GORM
func (e *ExpenseModel) BeforeCreate(tx *gorm.DB) error {
	if e.Status == "" {
		e.Status = "active"
	}
	if e.Version == 0 {
		e.Version = 1
	}
	return nil
}
