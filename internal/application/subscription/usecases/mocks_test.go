package usecases

import (
	"context"

	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type mockPlanRepository struct {
	CreateFunc       func(ctx context.Context, p *subscription.Plan) error
	GetByIDFunc      func(ctx context.Context, id uint) (*subscription.Plan, error)
	GetByCodeFunc    func(ctx context.Context, code string) (*subscription.Plan, error)
	ExistsByCodeFunc func(ctx context.Context, code string) (bool, error)
	UpdateFunc       func(ctx context.Context, p *subscription.Plan) error
	DeleteFunc       func(ctx context.Context, id uint) error
	ListFunc         func(ctx context.Context) ([]*subscription.Plan, error)
}

func (m *mockPlanRepository) Create(ctx context.Context, p *subscription.Plan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanRepository) GetByCode(ctx context.Context, code string) (*subscription.Plan, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockPlanRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if m.ExistsByCodeFunc != nil {
		return m.ExistsByCodeFunc(ctx, code)
	}
	return false, nil
}

func (m *mockPlanRepository) Update(ctx context.Context, p *subscription.Plan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlanRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPlanRepository) List(ctx context.Context) ([]*subscription.Plan, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockSubscriptionRepository struct {
	CreateFunc                      func(ctx context.Context, s *subscription.Subscription) error
	GetByIDFunc                     func(ctx context.Context, id uint) (*subscription.Subscription, error)
	GetLatestByCondominiumIDFunc    func(ctx context.Context, condominiumID uint) (*subscription.Subscription, error)
	ListByCondominiumIDFunc         func(ctx context.Context, condominiumID uint) ([]*subscription.Subscription, error)
	UpdateFunc                      func(ctx context.Context, s *subscription.Subscription) error
	UpdateStatusByCondominiumIDFunc func(ctx context.Context, condominiumID uint, status subscription.Status) error
	DeleteByCondominiumIDFunc       func(ctx context.Context, condominiumID uint) error
	CountActiveByPlanIDFunc         func(ctx context.Context, planID uint) (int64, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetLatestByCondominiumID(ctx context.Context, condominiumID uint) (*subscription.Subscription, error) {
	if m.GetLatestByCondominiumIDFunc != nil {
		return m.GetLatestByCondominiumIDFunc(ctx, condominiumID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListByCondominiumID(ctx context.Context, condominiumID uint) ([]*subscription.Subscription, error) {
	if m.ListByCondominiumIDFunc != nil {
		return m.ListByCondominiumIDFunc(ctx, condominiumID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSubscriptionRepository) UpdateStatusByCondominiumID(ctx context.Context, condominiumID uint, status subscription.Status) error {
	if m.UpdateStatusByCondominiumIDFunc != nil {
		return m.UpdateStatusByCondominiumIDFunc(ctx, condominiumID, status)
	}
	return nil
}

func (m *mockSubscriptionRepository) DeleteByCondominiumID(ctx context.Context, condominiumID uint) error {
	if m.DeleteByCondominiumIDFunc != nil {
		return m.DeleteByCondominiumIDFunc(ctx, condominiumID)
	}
	return nil
}

func (m *mockSubscriptionRepository) CountActiveByPlanID(ctx context.Context, planID uint) (int64, error) {
	if m.CountActiveByPlanIDFunc != nil {
		return m.CountActiveByPlanIDFunc(ctx, planID)
	}
	return 0, nil
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
