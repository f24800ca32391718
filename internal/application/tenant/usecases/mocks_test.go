package usecases

import (
	"context"
	"time"

	"github.com/edifai-io/edifai/internal/domain/condominium"
	"github.com/edifai-io/edifai/internal/domain/expense"
	"github.com/edifai-io/edifai/internal/domain/receipt"
	"github.com/edifai-io/edifai/internal/domain/subscription"
	"github.com/edifai-io/edifai/internal/domain/ticket"
	"github.com/edifai-io/edifai/internal/domain/unit"
	"github.com/edifai-io/edifai/internal/domain/user"
	"github.com/edifai-io/edifai/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc                 func(ctx context.Context, u *user.User) error
	GetByIDFunc                func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc             func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc                 func(ctx context.Context, u *user.User) error
	DeleteFunc                 func(ctx context.Context, id uint) error
	HardDeleteFunc             func(ctx context.Context, id uint) error
	ExistsByEmailFunc          func(ctx context.Context, email string) (bool, error)
	ExistsByEmailExcludingFunc func(ctx context.Context, email string, excludeID uint) (bool, error)
	ListByRoleFunc             func(ctx context.Context, role string) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) HardDelete(ctx context.Context, id uint) error {
	if m.HardDeleteFunc != nil {
		return m.HardDeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByEmailExcluding(ctx context.Context, email string, excludeID uint) (bool, error) {
	if m.ExistsByEmailExcludingFunc != nil {
		return m.ExistsByEmailExcludingFunc(ctx, email, excludeID)
	}
	return false, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role string) ([]*user.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	return nil, nil
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

type mockUnitRepository struct {
	CreateFunc                func(ctx context.Context, u *unit.Unit) error
	GetByIDFunc               func(ctx context.Context, id uint) (*unit.Unit, error)
	ListByCondominiumIDFunc   func(ctx context.Context, condominiumID uint) ([]*unit.Unit, error)
	CountByCondominiumIDFunc  func(ctx context.Context, condominiumID uint) (int64, error)
	UpdateFunc                func(ctx context.Context, u *unit.Unit) error
	IncrementBalanceFunc      func(ctx context.Context, id uint, delta float64) error
	DeleteFunc                func(ctx context.Context, id uint) error
	DeleteByCondominiumIDFunc func(ctx context.Context, condominiumID uint) error
}

func (m *mockUnitRepository) Create(ctx context.Context, u *unit.Unit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUnitRepository) GetByID(ctx context.Context, id uint) (*unit.Unit, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUnitRepository) ListByCondominiumID(ctx context.Context, condominiumID uint) ([]*unit.Unit, error) {
	if m.ListByCondominiumIDFunc != nil {
		return m.ListByCondominiumIDFunc(ctx, condominiumID)
	}
	return nil, nil
}

func (m *mockUnitRepository) CountByCondominiumID(ctx context.Context, condominiumID uint) (int64, error) {
	if m.CountByCondominiumIDFunc != nil {
		return m.CountByCondominiumIDFunc(ctx, condominiumID)
	}
	return 0, nil
}

func (m *mockUnitRepository) Update(ctx context.Context, u *unit.Unit) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUnitRepository) IncrementBalance(ctx context.Context, id uint, delta float64) error {
	if m.IncrementBalanceFunc != nil {
		return m.IncrementBalanceFunc(ctx, id, delta)
	}
	return nil
}

func (m *mockUnitRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUnitRepository) DeleteByCondominiumID(ctx context.Context, condominiumID uint) error {
	if m.DeleteByCondominiumIDFunc != nil {
		return m.DeleteByCondominiumIDFunc(ctx, condominiumID)
	}
	return nil
}

type mockExpenseRepository struct {
	CreateFunc                func(ctx context.Context, e *expense.Expense) error
	GetByIDFunc               func(ctx context.Context, id uint) (*expense.Expense, error)
	ListByCondominiumIDFunc   func(ctx context.Context, condominiumID uint, filter expense.Filter) ([]*expense.Expense, int64, error)
	SumActiveInRangeFunc      func(ctx context.Context, condominiumID uint, from, to time.Time) (float64, error)
	UpdateFunc                func(ctx context.Context, e *expense.Expense) error
	DeleteByCondominiumIDFunc func(ctx context.Context, condominiumID uint) error
}

func (m *mockExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockExpenseRepository) GetByID(ctx context.Context, id uint) (*expense.Expense, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockExpenseRepository) ListByCondominiumID(ctx context.Context, condominiumID uint, filter expense.Filter) ([]*expense.Expense, int64, error) {
	if m.ListByCondominiumIDFunc != nil {
		return m.ListByCondominiumIDFunc(ctx, condominiumID, filter)
	}
	return nil, 0, nil
}

func (m *mockExpenseRepository) SumActiveInRange(ctx context.Context, condominiumID uint, from, to time.Time) (float64, error) {
	if m.SumActiveInRangeFunc != nil {
		return m.SumActiveInRangeFunc(ctx, condominiumID, from, to)
	}
	return 0, nil
}

func (m *mockExpenseRepository) Update(ctx context.Context, e *expense.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockExpenseRepository) DeleteByCondominiumID(ctx context.Context, condominiumID uint) error {
	if m.DeleteByCondominiumIDFunc != nil {
		return m.DeleteByCondominiumIDFunc(ctx, condominiumID)
	}
	return nil
}

type mockReceiptRepository struct {
	CreateFunc                 func(ctx context.Context, r *receipt.Receipt) error
	GetByIDFunc                func(ctx context.Context, id uint) (*receipt.Receipt, error)
	ListByCondominiumIDFunc    func(ctx context.Context, condominiumID uint, filter receipt.Filter) ([]*receipt.Receipt, int64, error)
	ExistsForUnitAndPeriodFunc func(ctx context.Context, unitID uint, billingPeriod string) (bool, error)
	UpdateFunc                 func(ctx context.Context, r *receipt.Receipt) error
	DeleteByCondominiumIDFunc  func(ctx context.Context, condominiumID uint) error
}

func (m *mockReceiptRepository) Create(ctx context.Context, r *receipt.Receipt) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockReceiptRepository) GetByID(ctx context.Context, id uint) (*receipt.Receipt, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReceiptRepository) ListByCondominiumID(ctx context.Context, condominiumID uint, filter receipt.Filter) ([]*receipt.Receipt, int64, error) {
	if m.ListByCondominiumIDFunc != nil {
		return m.ListByCondominiumIDFunc(ctx, condominiumID, filter)
	}
	return nil, 0, nil
}

func (m *mockReceiptRepository) ExistsForUnitAndPeriod(ctx context.Context, unitID uint, billingPeriod string) (bool, error) {
	if m.ExistsForUnitAndPeriodFunc != nil {
		return m.ExistsForUnitAndPeriodFunc(ctx, unitID, billingPeriod)
	}
	return false, nil
}

func (m *mockReceiptRepository) Update(ctx context.Context, r *receipt.Receipt) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockReceiptRepository) DeleteByCondominiumID(ctx context.Context, condominiumID uint) error {
	if m.DeleteByCondominiumIDFunc != nil {
		return m.DeleteByCondominiumIDFunc(ctx, condominiumID)
	}
	return nil
}

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

// mockTxRunner runs the callback inline so repository mocks observe every
// write that would happen inside the transaction.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockHasher struct {
	HashFunc func(password string) (string, error)
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

type mockEmailSender struct {
	SendWelcomeEmailFunc func(ctx context.Context, to, adminName, condominiumName, tempPassword string) error
	sentTo               []string
}

func (m *mockEmailSender) SendWelcomeEmail(ctx context.Context, to, adminName, condominiumName, tempPassword string) error {
	m.sentTo = append(m.sentTo, to)
	if m.SendWelcomeEmailFunc != nil {
		return m.SendWelcomeEmailFunc(ctx, to, adminName, condominiumName, tempPassword)
	}
	return nil
}

type mockCacheInvalidator struct {
	InvalidateFunc func(ctx context.Context, condominiumID uint) error
	invalidated    []uint
}

func (m *mockCacheInvalidator) Invalidate(ctx context.Context, condominiumID uint) error {
	m.invalidated = append(m.invalidated, condominiumID)
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, condominiumID)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
