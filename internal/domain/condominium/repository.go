package condominium

import "context"

// Repository persists Condominium aggregates.
type Repository interface {
	Create(ctx context.Context, condo *Condominium) error
	GetByID(ctx context.Context, id uint) (*Condominium, error)
	Update(ctx context.Context, condo *Condominium) error
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, filter Filter) ([]*Condominium, int64, error)
}

// Filter narrows tenant listings.
type Filter struct {
	ResellerID *uint
	Page       int
	Limit      int
}
