package usecases

import "context"

// TransactionRunner executes fn inside a database transaction, passing a
// context the repositories recognize as transactional.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordHasher hashes temporary passwords before storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// WelcomeEmailSender delivers the onboarding email with the temporary
// password. Implementations must not be called inside a transaction.
type WelcomeEmailSender interface {
	SendWelcomeEmail(ctx context.Context, to, adminName, condominiumName, tempPassword string) error
}

// StatusCacheInvalidator drops the cached subscription status for a
// condominium after a lifecycle change.
type StatusCacheInvalidator interface {
	Invalidate(ctx context.Context, condominiumID uint) error
}
