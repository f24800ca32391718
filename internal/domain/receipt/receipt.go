// Package receipt models the monthly fee receipt issued to each unit after
// a fee calculation run.
package receipt

import (
	"fmt"
	"math"
	"time"
)

// Status is the payment state of a receipt.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// BreakdownLine is one itemized charge on a receipt.
type BreakdownLine struct {
	Concept string  `json:"concept"`
	Amount  float64 `json:"amount"`
}

// sumTolerance absorbs float accumulation noise when validating that the
// breakdown lines add up to the total.
const sumTolerance = 1e-9

// Receipt is the amount a unit owes for one billing period.
type Receipt struct {
	id            uint
	unitID        uint
	condominiumID uint
	billingPeriod string
	totalAmount   float64
	breakdown     []BreakdownLine
	status        Status
	issuedAt      time.Time
	dueDate       time.Time
	paidAt        *time.Time
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReceipt issues a receipt. The breakdown lines must sum to totalAmount.
func NewReceipt(unitID, condominiumID uint, billingPeriod string, totalAmount float64, breakdown []BreakdownLine, dueDate time.Time) (*Receipt, error) {
	if unitID == 0 {
		return nil, fmt.Errorf("unit ID is required")
	}
	if condominiumID == 0 {
		return nil, fmt.Errorf("condominium ID is required")
	}
	if billingPeriod == "" {
		return nil, fmt.Errorf("billing period is required")
	}
	if totalAmount < 0 {
		return nil, fmt.Errorf("total amount cannot be negative")
	}
	if len(breakdown) == 0 {
		return nil, fmt.Errorf("receipt requires at least one breakdown line")
	}

	var sum float64
	for _, line := range breakdown {
		if line.Concept == "" {
			return nil, fmt.Errorf("breakdown line concept is required")
		}
		sum += line.Amount
	}
	if math.Abs(sum-totalAmount) > sumTolerance {
		return nil, fmt.Errorf("breakdown sum %.2f does not match total %.2f", sum, totalAmount)
	}

	now := time.Now()
	return &Receipt{
		unitID:        unitID,
		condominiumID: condominiumID,
		billingPeriod: billingPeriod,
		totalAmount:   totalAmount,
		breakdown:     breakdown,
		status:        StatusPending,
		issuedAt:      now,
		dueDate:       dueDate,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructReceipt rebuilds a receipt from persistence.
func ReconstructReceipt(
	id uint,
	unitID, condominiumID uint,
	billingPeriod string,
	totalAmount float64,
	breakdown []BreakdownLine,
	status Status,
	issuedAt, dueDate time.Time,
	paidAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Receipt, error) {
	if id == 0 {
		return nil, fmt.Errorf("receipt ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid receipt status: %s", status)
	}

	return &Receipt{
		id:            id,
		unitID:        unitID,
		condominiumID: condominiumID,
		billingPeriod: billingPeriod,
		totalAmount:   totalAmount,
		breakdown:     breakdown,
		status:        status,
		issuedAt:      issuedAt,
		dueDate:       dueDate,
		paidAt:        paidAt,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (r *Receipt) ID() uint {
	return r.id
}

func (r *Receipt) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("receipt ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("receipt ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Receipt) UnitID() uint {
	return r.unitID
}

func (r *Receipt) CondominiumID() uint {
	return r.condominiumID
}

func (r *Receipt) BillingPeriod() string {
	return r.billingPeriod
}

func (r *Receipt) TotalAmount() float64 {
	return r.totalAmount
}

func (r *Receipt) Breakdown() []BreakdownLine {
	return r.breakdown
}

func (r *Receipt) Status() Status {
	return r.status
}

func (r *Receipt) IssuedAt() time.Time {
	return r.issuedAt
}

func (r *Receipt) DueDate() time.Time {
	return r.dueDate
}

func (r *Receipt) PaidAt() *time.Time {
	return r.paidAt
}

func (r *Receipt) Version() int {
	return r.version
}

func (r *Receipt) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Receipt) UpdatedAt() time.Time {
	return r.updatedAt
}

// MarkPaid settles the receipt. Paying an overdue receipt is allowed.
func (r *Receipt) MarkPaid() error {
	if r.status == StatusPaid {
		return fmt.Errorf("receipt is already paid")
	}
	now := time.Now()
	r.status = StatusPaid
	r.paidAt = &now
	r.touch()
	return nil
}

// MarkOverdue flags a pending receipt past its due date.
func (r *Receipt) MarkOverdue() error {
	if r.status == StatusPaid {
		return fmt.Errorf("cannot mark a paid receipt overdue")
	}
	if r.status == StatusOverdue {
		return nil
	}
	r.status = StatusOverdue
	r.touch()
	return nil
}

func (r *Receipt) touch() {
	r.updatedAt = time.Now()
	r.version++
}
