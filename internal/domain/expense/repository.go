package expense

import (
	"context"
	"time"
)

// Filter narrows expense listings. From/To bound the expense date.
type Filter struct {
	From   *time.Time
	To     *time.Time
	Type   *Type
	Status *Status
	Page   int
	Limit  int
}

// Repository persists expenses.
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	GetByID(ctx context.Context, id uint) (*Expense, error)
	ListByCondominiumID(ctx context.Context, condominiumID uint, filter Filter) ([]*Expense, int64, error)
	// SumActiveInRange totals the active expenses for a condominium whose
	// date falls in the closed [from, to] range.
	SumActiveInRange(ctx context.Context, condominiumID uint, from, to time.Time) (float64, error)
	Update(ctx context.Context, e *Expense) error
	DeleteByCondominiumID(ctx context.Context, condominiumID uint) error
}
