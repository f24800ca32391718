package handlers

import (
	"time"

	"github.com/edifai-io/edifai/internal/application/tenant/usecases"
	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/domain/user"
)

// UserResponse is the wire shape of a user account. The password hash
// never leaves the domain layer.
type UserResponse struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone,omitempty"`
	Status        string    `json:"status"`
	CondominiumID *uint     `json:"condominium_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CondominiumResponse is the wire shape of a condominium.
type CondominiumResponse struct {
	ID         uint                 `json:"id"`
	Name       string               `json:"name"`
	Address    string               `json:"address"`
	AdminID    uint                 `json:"admin_id"`
	ResellerID *uint                `json:"reseller_id,omitempty"`
	Settings   condominium.Settings `json:"settings"`
	Amenities  []string             `json:"amenities"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// SubscriptionResponse is the wire shape of a tenant subscription.
type SubscriptionResponse struct {
	ID              uint      `json:"id"`
	CondominiumID   uint      `json:"condominium_id"`
	PlanID          uint      `json:"plan_id"`
	Status          string    `json:"status"`
	BillingCycle    string    `json:"billing_cycle"`
	StartDate       time.Time `json:"start_date"`
	NextBillingDate time.Time `json:"next_billing_date"`
}

// CondominiumSummary and AdminSummary are the provisioning response shapes.
// Existing clients key on "_id", kept from the pre-migration API.
type CondominiumSummary struct {
	ID   uint   `json:"_id"`
	Name string `json:"name"`
}

type AdminSummary struct {
	ID    uint   `json:"_id"`
	Email string `json:"email"`
}

// TenantResponse groups a condominium with its admin and subscription
// state, as shown on the platform dashboard.
type TenantResponse struct {
	Condominium  *CondominiumResponse  `json:"condominium"`
	Admin        *UserResponse         `json:"admin,omitempty"`
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
	Plan         *PlanResponse         `json:"plan,omitempty"`
}

func toUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	profile := u.Profile()
	return &UserResponse{
		ID:            u.ID(),
		Email:         u.Email(),
		Role:          string(u.Role()),
		FirstName:     profile.FirstName,
		LastName:      profile.LastName,
		Phone:         profile.Phone,
		Status:        string(u.Status()),
		CondominiumID: u.CondominiumID(),
		CreatedAt:     u.CreatedAt(),
	}
}

func toCondominiumResponse(c *condominium.Condominium) *CondominiumResponse {
	if c == nil {
		return nil
	}
	return &CondominiumResponse{
		ID:         c.ID(),
		Name:       c.Name(),
		Address:    c.Address(),
		AdminID:    c.AdminID(),
		ResellerID: c.ResellerID(),
		Settings:   c.Settings(),
		Amenities:  c.Amenities(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}

func toSubscriptionResponse(s *subscription.Subscription) *SubscriptionResponse {
	if s == nil {
		return nil
	}
	return &SubscriptionResponse{
		ID:              s.ID(),
		CondominiumID:   s.CondominiumID(),
		PlanID:          s.PlanID(),
		Status:          string(s.Status()),
		BillingCycle:    string(s.BillingCycle()),
		StartDate:       s.StartDate(),
		NextBillingDate: s.NextBillingDate(),
	}
}

func toCondominiumSummary(c *condominium.Condominium) *CondominiumSummary {
	if c == nil {
		return nil
	}
	return &CondominiumSummary{ID: c.ID(), Name: c.Name()}
}

func toAdminSummary(u *user.User) *AdminSummary {
	if u == nil {
		return nil
	}
	return &AdminSummary{ID: u.ID(), Email: u.Email()}
}

func toTenantResponse(row usecases.TenantRow) *TenantResponse {
	return &TenantResponse{
		Condominium:  toCondominiumResponse(row.Condominium),
		Admin:        toUserResponse(row.Admin),
		Subscription: toSubscriptionResponse(row.Subscription),
		Plan:         toPlanResponse(row.Plan),
	}
}
