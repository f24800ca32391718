package usecases

import "context"

// TransactionRunner executes fn inside a database transaction, passing a
// context the repositories recognize as transactional.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
