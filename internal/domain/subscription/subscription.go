package subscription

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a subscription.
type Status string

const (
	StatusActive   Status = "active"
	StatusPastDue  Status = "past_due"
	StatusCanceled Status = "canceled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPastDue, StatusCanceled:
		return true
	}
	return false
}

// BillingCycle is how often the subscription renews.
type BillingCycle string

const (
	CycleMonthly BillingCycle = "monthly"
	CycleAnnual  BillingCycle = "annual"
)

func (b BillingCycle) IsValid() bool {
	return b == CycleMonthly || b == CycleAnnual
}

// Subscription links a condominium to a plan. The latest row by start date
// is the authoritative one for access decisions.
type Subscription struct {
	id                 uint
	condominiumID      uint
	planID             uint
	startDate          time.Time
	nextBillingDate    time.Time
	status             Status
	billingCycle       BillingCycle
	paymentMethodToken *string
	version            int
	createdAt          time.Time
	updatedAt          time.Time
}

// NewSubscription starts a subscription effective immediately. The first
// billing date is one calendar month (or year) after the start date.
func NewSubscription(condominiumID, planID uint, cycle BillingCycle) (*Subscription, error) {
	if condominiumID == 0 {
		return nil, fmt.Errorf("condominium ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if cycle == "" {
		cycle = CycleMonthly
	}
	if !cycle.IsValid() {
		return nil, fmt.Errorf("invalid billing cycle: %s", cycle)
	}

	now := time.Now()
	next := now.AddDate(0, 1, 0)
	if cycle == CycleAnnual {
		next = now.AddDate(1, 0, 0)
	}

	return &Subscription{
		condominiumID:   condominiumID,
		planID:          planID,
		startDate:       now,
		nextBillingDate: next,
		status:          StatusActive,
		billingCycle:    cycle,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(
	id uint,
	condominiumID, planID uint,
	startDate, nextBillingDate time.Time,
	status Status,
	cycle BillingCycle,
	paymentMethodToken *string,
	version int,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}
	if !cycle.IsValid() {
		return nil, fmt.Errorf("invalid billing cycle: %s", cycle)
	}

	return &Subscription{
		id:                 id,
		condominiumID:      condominiumID,
		planID:             planID,
		startDate:          startDate,
		nextBillingDate:    nextBillingDate,
		status:             status,
		billingCycle:       cycle,
		paymentMethodToken: paymentMethodToken,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (s *Subscription) ID() uint {
	return s.id
}

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Subscription) CondominiumID() uint {
	return s.condominiumID
}

func (s *Subscription) PlanID() uint {
	return s.planID
}

func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

func (s *Subscription) NextBillingDate() time.Time {
	return s.nextBillingDate
}

func (s *Subscription) Status() Status {
	return s.status
}

func (s *Subscription) BillingCycle() BillingCycle {
	return s.billingCycle
}

func (s *Subscription) PaymentMethodToken() *string {
	return s.paymentMethodToken
}

func (s *Subscription) Version() int {
	return s.version
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Subscription) IsActive() bool {
	return s.status == StatusActive
}

// ChangePlan swaps the plan while keeping the billing schedule.
func (s *Subscription) ChangePlan(planID uint) error {
	if planID == 0 {
		return fmt.Errorf("plan ID is required")
	}
	if s.status == StatusCanceled {
		return fmt.Errorf("cannot change plan on a canceled subscription")
	}
	s.planID = planID
	s.touch()
	return nil
}

// Activate restores the subscription to active. Idempotent.
func (s *Subscription) Activate() {
	if s.status == StatusActive {
		return
	}
	s.status = StatusActive
	s.touch()
}

// Cancel ends the subscription. Idempotent.
func (s *Subscription) Cancel() {
	if s.status == StatusCanceled {
		return
	}
	s.status = StatusCanceled
	s.touch()
}

// MarkPastDue flags a missed payment without revoking access bookkeeping.
func (s *Subscription) MarkPastDue() {
	if s.status == StatusPastDue {
		return
	}
	s.status = StatusPastDue
	s.touch()
}

// AdvanceBillingDate pushes the next billing date forward one cycle.
func (s *Subscription) AdvanceBillingDate() {
	if s.billingCycle == CycleAnnual {
		s.nextBillingDate = s.nextBillingDate.AddDate(1, 0, 0)
	} else {
		s.nextBillingDate = s.nextBillingDate.AddDate(0, 1, 0)
	}
	s.touch()
}

// SetPaymentMethodToken stores the gateway token for recurring charges.
func (s *Subscription) SetPaymentMethodToken(token string) {
	s.paymentMethodToken = &token
	s.touch()
}

func (s *Subscription) touch() {
	s.updatedAt = time.Now()
	s.version++
}
