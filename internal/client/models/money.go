package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the backend's calendar-date format.
const DateLayout = "2006-01-02"

// Today formats the current local date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}

// TransactionType says which way money moved. Personal records use
// LENT/BORROWED, business records use CREDIT/DEBIT, and the business ledger
// accepts all four.
type TransactionType string

const (
	TxnLent     TransactionType = "LENT"
	TxnBorrowed TransactionType = "BORROWED"
	TxnCredit   TransactionType = "CREDIT"
	TxnDebit    TransactionType = "DEBIT"
)

// PrivateTransaction is a personal money record with someone by name.
type PrivateTransaction struct {
	ID              int64           `json:"id,omitempty"`
	PersonName      string          `json:"person_name" validate:"required,max=255"`
	Amount          decimal.Decimal `json:"amount" validate:"gt=0"`
	TransactionType TransactionType `json:"transaction_type" validate:"oneof=LENT BORROWED"`
	TransactionDate string          `json:"transaction_date" validate:"required,datetime=2006-01-02"`
	Note            string          `json:"note,omitempty"`
	CreatedAt       time.Time       `json:"created_at,omitzero"`
}

// PrivateSummary totals a personal account's money records.
type PrivateSummary struct {
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
	NetBalance      decimal.Decimal `json:"net_balance"`
}

// LedgerEntry is one business ledger line. Entries confirmed from a receipt
// carry the merchant and source "OCR".
type LedgerEntry struct {
	ID              int64           `json:"id"`
	CustomerName    string          `json:"customer_name"`
	Merchant        string          `json:"merchant"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transaction_type"`
	TransactionDate string          `json:"transaction_date"`
	Note            string          `json:"note"`
	Source          string          `json:"source"`
	IsSettled       bool            `json:"is_settled"`
	CreatedAt       time.Time       `json:"created_at,omitzero"`
}

// Counterparty is the customer name, or the merchant for receipt entries.
func (e LedgerEntry) Counterparty() string {
	if e.CustomerName != "" {
		return e.CustomerName
	}
	return e.Merchant
}

// LedgerEntryRequest is the business/ledger/add/ body.
type LedgerEntryRequest struct {
	CustomerName    string          `json:"customer_name" validate:"required,max=255"`
	Amount          decimal.Decimal `json:"amount" validate:"gt=0"`
	TransactionType TransactionType `json:"transaction_type" validate:"oneof=CREDIT DEBIT LENT BORROWED"`
	TransactionDate string          `json:"transaction_date" validate:"required,datetime=2006-01-02"`
	Note            string          `json:"note,omitempty"`
}

// CustomerBalance is a customer's running ledger balance.
type CustomerBalance struct {
	CustomerName string          `json:"customer_name"`
	Balance      decimal.Decimal `json:"balance"`
}

// Outstanding sums the unsettled entries: credits count up, every other
// type counts down. Settled entries are ignored.
func Outstanding(entries []LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.IsSettled {
			continue
		}
		if e.TransactionType == TxnCredit {
			total = total.Add(e.Amount)
		} else {
			total = total.Sub(e.Amount)
		}
	}
	return total
}
