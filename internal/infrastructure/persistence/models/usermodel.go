package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/shared/constants"
)

// UserModel represents the database persistence model for users.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID                  uint   `gorm:"primarykey"`
	Email               string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash        string `gorm:"not null;size:255"`
	Role                string `gorm:"not null;size:20;index:idx_users_role"`
	FirstName           string `gorm:"not null;size:100"`
	LastName            string `gorm:"size:100"`
	Phone               string `gorm:"size:50"`
	NotificationChannel string `gorm:"size:20;default:email"`
	Status              string `gorm:"not null;default:active;size:20"`
	CondominiumID       *uint  `gorm:"index:idx_users_condominium"`
	Version             int    `gorm:"not null;default:1"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Status == "" {
		u.Status = "active"
	}
	if u.Version == 0 {
		u.Version = 1
	}
	return nil
}
