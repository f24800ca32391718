package unit

import "context"

// Repository persists units.
type Repository interface {
	Create(ctx context.Context, u *Unit) error
	GetByID(ctx context.Context, id uint) (*Unit, error)
	ListByCondominiumID(ctx context.Context, condominiumID uint) ([]*Unit, error)
	CountByCondominiumID(ctx context.Context, condominiumID uint) (int64, error)
	Update(ctx context.Context, u *Unit) error
	// IncrementBalance adds delta to the unit's current balance atomically
	// at the storage layer, avoiding read-modify-write races.
	IncrementBalance(ctx context.Context, id uint, delta float64) error
	Delete(ctx context.Context, id uint) error
	DeleteByCondominiumID(ctx context.Context, condominiumID uint) error
}
