package usecases

import (
	"context"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/ticket"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type mockTicketRepository struct {
	CreateFunc                func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc               func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListByCondominiumIDFunc   func(ctx context.Context, condominiumID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	UpdateFunc                func(ctx context.Context, t *ticket.Ticket) error
	DeleteByCondominiumIDFunc func(ctx context.Context, condominiumID uint) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByCondominiumID(ctx context.Context, condominiumID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListByCondominiumIDFunc != nil {
		return m.ListByCondominiumIDFunc(ctx, condominiumID, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) DeleteByCondominiumID(ctx context.Context, condominiumID uint) error {
	if m.DeleteByCondominiumIDFunc != nil {
		return m.DeleteByCondominiumIDFunc(ctx, condominiumID)
	}
	return nil
}

type mockCondominiumRepository struct {
	CreateFunc  func(ctx context.Context, c *condominium.Condominium) error
	GetByIDFunc func(ctx context.Context, id uint) (*condominium.Condominium, error)
	UpdateFunc  func(ctx context.Context, c *condominium.Condominium) error
	DeleteFunc  func(ctx context.Context, id uint) error
	ListFunc    func(ctx context.Context, filter condominium.Filter) ([]*condominium.Condominium, int64, error)
}

func (m *mockCondominiumRepository) Create(ctx context.Context, c *condominium.Condominium) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCondominiumRepository) GetByID(ctx context.Context, id uint) (*condominium.Condominium, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCondominiumRepository) Update(ctx context.Context, c *condominium.Condominium) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCondominiumRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCondominiumRepository) List(ctx context.Context, filter condominium.Filter) ([]*condominium.Condominium, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
