package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/shared/constants"
)

// TicketModel represents the database persistence model for tickets.
// Interactions is an append-only JSON log of comments.
type TicketModel struct {
	ID            uint   `gorm:"primarykey"`
	CondominiumID uint   `gorm:"not null;index:idx_tickets_condominium"`
	CreatedBy     uint   `gorm:"not null;index:idx_tickets_creator"`
	TicketType    string `gorm:"not null;size:30"`
	Subject       string `gorm:"not null;size:255"`
	Description   string `gorm:"size:2000"`
	Status        string `gorm:"not null;size:20;default:open;index:idx_tickets_status"`
	Amenity       string `gorm:"size:100"`
	ReservedFor   *time.Time
	Interactions  datatypes.JSON
	Version       int `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return constants.TableTickets
}

// BeforeCreate hook for GORM
func (t *TicketModel) BeforeCreate(tx *gorm.DB) error {
	if t.Status == "" {
		t.Status = "open"
	}
	if t.Version == 0 {
		t.Version = 1
	}
	return nil
}
