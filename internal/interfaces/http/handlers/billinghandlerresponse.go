package handlers

import (
	"time"

	"github.com/edifai-io/edifai/internal/domain/expense"
	"github.com/edifai-io/edifai/internal/domain/receipt"
)

// ExpenseResponse is the wire shape of a registered expense.
type ExpenseResponse struct {
	ID            uint      `json:"id"`
	CondominiumID uint      `json:"condominium_id"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Date          time.Time `json:"date"`
	InvoiceURL    *string   `json:"invoice_url,omitempty"`
	Status        string    `json:"status"`
	RegisteredBy  uint      `json:"registered_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReceiptResponse is the wire shape of an issued receipt.
type ReceiptResponse struct {
	ID            uint                    `json:"id"`
	UnitID        uint                    `json:"unit_id"`
	CondominiumID uint                    `json:"condominium_id"`
	BillingPeriod string                  `json:"billing_period"`
	TotalAmount   float64                 `json:"total_amount"`
	Breakdown     []receipt.BreakdownLine `json:"breakdown"`
	Status        string                  `json:"status"`
	IssuedAt      time.Time               `json:"issued_at"`
	DueDate       time.Time               `json:"due_date"`
	PaidAt        *time.Time              `json:"paid_at,omitempty"`
}

func toExpenseResponse(e *expense.Expense) *ExpenseResponse {
	if e == nil {
		return nil
	}
	return &ExpenseResponse{
		ID:            e.ID(),
		CondominiumID: e.CondominiumID(),
		Description:   e.Description(),
		Amount:        e.Amount(),
		Type:          string(e.Type()),
		Category:      e.Category(),
		Date:          e.Date(),
		InvoiceURL:    e.InvoiceURL(),
		Status:        string(e.Status()),
		RegisteredBy:  e.RegisteredBy(),
		CreatedAt:     e.CreatedAt(),
	}
}

func toExpenseResponses(expenses []*expense.Expense) []*ExpenseResponse {
	responses := make([]*ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, toExpenseResponse(e))
	}
	return responses
}

func toReceiptResponse(r *receipt.Receipt) *ReceiptResponse {
	if r == nil {
		return nil
	}
	return &ReceiptResponse{
		ID:            r.ID(),
		UnitID:        r.UnitID(),
		CondominiumID: r.CondominiumID(),
		BillingPeriod: r.BillingPeriod(),
		TotalAmount:   r.TotalAmount(),
		Breakdown:     r.Breakdown(),
		Status:        string(r.Status()),
		IssuedAt:      r.IssuedAt(),
		DueDate:       r.DueDate(),
		PaidAt:        r.PaidAt(),
	}
}

func toReceiptResponses(receipts []*receipt.Receipt) []*ReceiptResponse {
	responses := make([]*ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		responses = append(responses, toReceiptResponse(r))
	}
	return responses
}
