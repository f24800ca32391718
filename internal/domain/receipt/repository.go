package receipt

import "context"

// Filter narrows receipt listings.
type Filter struct {
	BillingPeriod string
	UnitID        *uint
	Status        *Status
	Page          int
	Limit         int
}

// Repository persists receipts.
type Repository interface {
	Create(ctx context.Context, r *Receipt) error
	GetByID(ctx context.Context, id uint) (*Receipt, error)
	ListByCondominiumID(ctx context.Context, condominiumID uint, filter Filter) ([]*Receipt, int64, error)
	// ExistsForUnitAndPeriod reports whether the unit already has a receipt
	// for the billing period. A unique index backs this check so concurrent
	// fee runs collapse to a duplicate-key conflict.
	ExistsForUnitAndPeriod(ctx context.Context, unitID uint, billingPeriod string) (bool, error)
	Update(ctx context.Context, r *Receipt) error
	DeleteByCondominiumID(ctx context.Context, condominiumID uint) error
}
