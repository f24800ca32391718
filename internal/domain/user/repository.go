package user

import "context"

// Repository persists User aggregates. GetByEmail and ExistsByEmail operate
// on the normalized (lowercased) address; the unique index on email is the
// authoritative duplicate guard under concurrency.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	// HardDelete removes the row entirely so the unique email becomes
	// available again. Tenant teardown uses this; Delete keeps the
	// soft-deleted row for audit.
	HardDelete(ctx context.Context, id uint) error

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ExistsByEmailExcluding reports whether another user already owns the
	// email, used when an admin's address is being changed.
	ExistsByEmailExcluding(ctx context.Context, email string, excludeID uint) (bool, error)
	ListByRole(ctx context.Context, role string) ([]*User, error)
}
