package subscription

import "context"

// PlanRepository manages the SaaS plan catalog.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetByCode(ctx context.Context, code string) (*Plan, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*Plan, error)
}

// Repository manages per-tenant subscriptions.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	// GetLatestByCondominiumID returns the subscription with the most recent
	// start date for the condominium, or nil when none exists.
	GetLatestByCondominiumID(ctx context.Context, condominiumID uint) (*Subscription, error)
	ListByCondominiumID(ctx context.Context, condominiumID uint) ([]*Subscription, error)
	Update(ctx context.Context, sub *Subscription) error
	// UpdateStatusByCondominiumID sets the status on every subscription row
	// belonging to the condominium.
	UpdateStatusByCondominiumID(ctx context.Context, condominiumID uint, status Status) error
	DeleteByCondominiumID(ctx context.Context, condominiumID uint) error
	CountActiveByPlanID(ctx context.Context, planID uint) (int64, error)
}
