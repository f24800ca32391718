package ticket

import "context"

// Filter narrows ticket listings.
type Filter struct {
	Type      *Type
	Status    *Status
	CreatedBy *uint
	Page      int
	Limit     int
}

// Repository persists tickets.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	ListByCondominiumID(ctx context.Context, condominiumID uint, filter Filter) ([]*Ticket, int64, error)
	Update(ctx context.Context, t *Ticket) error
	DeleteByCondominiumID(ctx context.Context, condominiumID uint) error
}
