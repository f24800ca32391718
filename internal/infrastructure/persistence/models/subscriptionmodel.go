package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/edifai-io/edifai/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for tenant
// subscriptions. A condominium keeps its full subscription history; the
// latest row decides whether the tenant can write.
type SubscriptionModel struct {
	ID                 uint      `gorm:"primarykey"`
	CondominiumID      uint      `gorm:"not null;index:idx_subscriptions_condominium"`
	PlanID             uint      `gorm:"not null;index:idx_subscriptions_plan"`
	StartDate          time.Time `gorm:"not null"`
	NextBillingDate    time.Time `gorm:"not null"`
	Status             string    `gorm:"not null;size:20;default:active;index:idx_subscriptions_status"`
	BillingCycle       string    `gorm:"not null;size:20;default:monthly"`
	PaymentMethodToken *string   `gorm:"size:255"`
	Version            int       `gorm:"not null;default:1"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = "active"
	}
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
