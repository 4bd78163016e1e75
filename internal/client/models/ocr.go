package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OCRStatus string

const (
	OCRDraft     OCRStatus = "DRAFT"
	OCRConfirmed OCRStatus = "CONFIRMED"
)

// OCRDocument is an uploaded receipt and what the backend read from it.
// Extracted fields are nil when nothing could be read.
type OCRDocument struct {
	ID                    int64               `json:"id"`
	RawText               string              `json:"raw_text"`
	ExtractedAmount       decimal.NullDecimal `json:"extracted_amount"`
	ExtractedDate         *string             `json:"extracted_date"`
	ExtractedMerchant     *string             `json:"extracted_merchant"`
	Status                OCRStatus           `json:"status"`
	CreatedAt             time.Time           `json:"created_at,omitzero"`
	BusinessTransactionID *int64              `json:"business_transaction_id"`
	Image                 *string             `json:"image,omitempty"`
	// TransactionID is set only in the confirm response.
	TransactionID *int64 `json:"transaction_id,omitempty"`
}

// OCRConfirmation turns a draft document into a ledger entry.
type OCRConfirmation struct {
	Amount          decimal.Decimal `json:"amount" validate:"gt=0"`
	Date            string          `json:"date" validate:"required,datetime=2006-01-02"`
	Merchant        string          `json:"merchant" validate:"required,max=255"`
	Note            string          `json:"note,omitempty"`
	TransactionType TransactionType `json:"transaction_type" validate:"oneof=CREDIT DEBIT"`
}

// Draft prefills a confirmation from what was extracted.
func (d *OCRDocument) Draft() OCRConfirmation {
	c := OCRConfirmation{TransactionType: TxnDebit}
	if d.ExtractedAmount.Valid {
		c.Amount = d.ExtractedAmount.Decimal
	}
	if d.ExtractedDate != nil {
		c.Date = *d.ExtractedDate
	}
	if d.ExtractedMerchant != nil {
		c.Merchant = *d.ExtractedMerchant
	}
	return c
}
