package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer belongs to the older single ledger shared by every account.
type Customer struct {
	ID        int64     `json:"id,omitempty"`
	Name      string    `json:"name" validate:"required,max=255"`
	Phone     string    `json:"phone,omitempty" validate:"omitempty,max=50"`
	Email     string    `json:"email,omitempty" validate:"omitempty,email"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// CustomerTransaction is a credit or debit against a Customer.
type CustomerTransaction struct {
	ID              int64           `json:"id,omitempty"`
	Customer        int64           `json:"customer" validate:"required,gt=0"`
	CustomerName    string          `json:"customer_name,omitempty"`
	Amount          decimal.Decimal `json:"amount" validate:"gt=0"`
	TransactionType TransactionType `json:"transaction_type" validate:"oneof=CREDIT DEBIT"`
	Description     string          `json:"description,omitempty" validate:"omitempty,max=255"`
	DueDate         string          `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status          PaymentStatus   `json:"status" validate:"oneof=PENDING PAID"`
	CreatedAt       time.Time       `json:"created_at,omitzero"`
}

// CustomerSummary is the transactions/summary/ response.
type CustomerSummary struct {
	CustomerID  int64           `json:"customer_id"`
	CreditTotal decimal.Decimal `json:"credit_total"`
	DebitTotal  decimal.Decimal `json:"debit_total"`
	Balance     decimal.Decimal `json:"balance"`
}
