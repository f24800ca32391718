// Package expense tracks the common charges a condominium accrues. Active
// expenses dated within a billing month feed the fee calculation for that
// month.
package expense

import (
	"fmt"
	"time"
)

// Type classifies the expense for reporting.
type Type string

const (
	TypeFixed    Type = "fixed"
	TypeVariable Type = "variable"
	TypeReserve  Type = "reserve"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeFixed, TypeVariable, TypeReserve:
		return true
	}
	return false
}

// Status marks whether the expense counts toward fee calculation.
type Status string

const (
	StatusActive Status = "active"
	StatusVoided Status = "voided"
)

// Expense is a single charge dated to the day it was incurred.
type Expense struct {
	id            uint
	condominiumID uint
	description   string
	amount        float64
	expenseType   Type
	category      string
	date          time.Time
	invoiceURL    *string
	status        Status
	registeredBy  uint
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewExpense registers a charge.
func NewExpense(condominiumID uint, description string, amount float64, expenseType Type, category string, date time.Time, registeredBy uint) (*Expense, error) {
	if condominiumID == 0 {
		return nil, fmt.Errorf("condominium ID is required")
	}
	if description == "" {
		return nil, fmt.Errorf("expense description is required")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("expense amount must be positive")
	}
	if !expenseType.IsValid() {
		return nil, fmt.Errorf("invalid expense type: %s", expenseType)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("expense date is required")
	}
	if registeredBy == 0 {
		return nil, fmt.Errorf("registered by user ID is required")
	}

	now := time.Now()
	return &Expense{
		condominiumID: condominiumID,
		description:   description,
		amount:        amount,
		expenseType:   expenseType,
		category:      category,
		date:          date,
		status:        StatusActive,
		registeredBy:  registeredBy,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructExpense rebuilds an expense from persistence.
func ReconstructExpense(
	id uint,
	condominiumID uint,
	description string,
	amount float64,
	expenseType Type,
	category string,
	date time.Time,
	invoiceURL *string,
	status Status,
	registeredBy uint,
	version int,
	createdAt, updatedAt time.Time,
) (*Expense, error) {
	if id == 0 {
		return nil, fmt.Errorf("expense ID cannot be zero")
	}

	return &Expense{
		id:            id,
		condominiumID: condominiumID,
		description:   description,
		amount:        amount,
		expenseType:   expenseType,
		category:      category,
		date:          date,
		invoiceURL:    invoiceURL,
		status:        status,
		registeredBy:  registeredBy,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (e *Expense) ID() uint {
	return e.id
}

func (e *Expense) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("expense ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("expense ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Expense) CondominiumID() uint {
	return e.condominiumID
}

func (e *Expense) Description() string {
	return e.description
}

func (e *Expense) Amount() float64 {
	return e.amount
}

func (e *Expense) Type() Type {
	return e.expenseType
}

func (e *Expense) Category() string {
	return e.category
}

func (e *Expense) Date() time.Time {
	return e.date
}

func (e *Expense) InvoiceURL() *string {
	return e.invoiceURL
}

// AttachInvoice stores a link to the supporting document.
func (e *Expense) AttachInvoice(url string) {
	e.invoiceURL = &url
	e.touch()
}

func (e *Expense) Status() Status {
	return e.status
}

func (e *Expense) RegisteredBy() uint {
	return e.registeredBy
}

func (e *Expense) Version() int {
	return e.version
}

func (e *Expense) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Expense) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Expense) IsActive() bool {
	return e.status == StatusActive
}

// Void removes the expense from fee calculation without deleting the row.
// Idempotent.
func (e *Expense) Void() {
	if e.status == StatusVoided {
		return
	}
	e.status = StatusVoided
	e.touch()
}

func (e *Expense) touch() {
	e.updatedAt = time.Now()
	e.version++
}
