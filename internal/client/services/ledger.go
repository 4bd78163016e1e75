package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/logging"
	"github.com/dmitrijs2005/udharoguru/internal/validator"
)

// LedgerAPI is the part of the backend behind an approved business: its
// ledger and the receipt scanner feeding it.
type LedgerAPI interface {
	LedgerEntries(ctx context.Context) ([]models.LedgerEntry, error)
	AddLedgerEntry(ctx context.Context, e models.LedgerEntryRequest) (*models.LedgerEntry, error)
	SettleLedgerEntry(ctx context.Context, id int64) (*models.LedgerEntry, error)
	CustomerBalances(ctx context.Context) ([]models.CustomerBalance, error)
	CustomerLedger(ctx context.Context, name string) ([]models.LedgerEntry, error)
	OCRDocuments(ctx context.Context) ([]models.OCRDocument, error)
	UploadReceipt(ctx context.Context, image *models.Attachment) (*models.OCRDocument, error)
	OCRDocument(ctx context.Context, id int64) (*models.OCRDocument, error)
	ConfirmOCR(ctx context.Context, id int64, conf models.OCRConfirmation) (*models.OCRDocument, error)
}

type LedgerService struct {
	api      LedgerAPI
	validate *validator.Validator
	log      logging.Logger
}

func NewLedgerService(api LedgerAPI, log logging.Logger) *LedgerService {
	if log == nil {
		log = logging.Nop()
	}
	return &LedgerService{
		api:      api,
		validate: validator.New(),
		log:      log.With("component", "ledger"),
	}
}

func (l *LedgerService) Entries(ctx context.Context) ([]models.LedgerEntry, error) {
	out, err := l.api.LedgerEntries(ctx)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load ledger.")
	}
	return out, nil
}

// AddEntry records a ledger line. A missing date means today.
func (l *LedgerService) AddEntry(ctx context.Context, e models.LedgerEntryRequest) (*models.LedgerEntry, error) {
	e.CustomerName = strings.TrimSpace(e.CustomerName)
	e.TransactionType = models.TransactionType(strings.ToUpper(string(e.TransactionType)))
	if e.TransactionDate == "" {
		e.TransactionDate = models.Today()
	}
	if err := l.validate.Validate(e); err != nil {
		return nil, NormalizeError(err, "Unable to add entry.")
	}

	out, err := l.api.AddLedgerEntry(ctx, e)
	if err != nil {
		return nil, NormalizeError(err, "Unable to add entry.")
	}
	l.log.Info(ctx, "ledger entry added", "id", out.ID, "type", out.TransactionType)
	return out, nil
}

func (l *LedgerService) Settle(ctx context.Context, id int64) (*models.LedgerEntry, error) {
	out, err := l.api.SettleLedgerEntry(ctx, id)
	if err != nil {
		return nil, NormalizeError(err, "Unable to settle entry.")
	}
	l.log.Info(ctx, "ledger entry settled", "id", id)
	return out, nil
}

func (l *LedgerService) Balances(ctx context.Context) ([]models.CustomerBalance, error) {
	out, err := l.api.CustomerBalances(ctx)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load balances.")
	}
	return out, nil
}

func (l *LedgerService) CustomerEntries(ctx context.Context, name string) ([]models.LedgerEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errorf("Customer name is required.")
	}
	out, err := l.api.CustomerLedger(ctx, name)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load customer.")
	}
	return out, nil
}

func (l *LedgerService) Receipts(ctx context.Context) ([]models.OCRDocument, error) {
	out, err := l.api.OCRDocuments(ctx)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load receipts.")
	}
	return out, nil
}

// UploadReceipt sends a receipt image to be read. The result is a draft
// until confirmed.
func (l *LedgerService) UploadReceipt(ctx context.Context, image *models.Attachment) (*models.OCRDocument, error) {
	if image == nil || image.Content == nil {
		return nil, errorf("Image file is required.")
	}
	out, err := l.api.UploadReceipt(ctx, image)
	if err != nil {
		return nil, NormalizeError(err, "Unable to upload receipt.")
	}
	l.log.Info(ctx, "receipt uploaded", "id", out.ID, "amount_read", out.ExtractedAmount.Valid)
	return out, nil
}

func (l *LedgerService) Receipt(ctx context.Context, id int64) (*models.OCRDocument, error) {
	out, err := l.api.OCRDocument(ctx, id)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load receipt.")
	}
	return out, nil
}

// ConfirmReceipt turns a draft receipt into a ledger entry.
func (l *LedgerService) ConfirmReceipt(ctx context.Context, id int64, conf models.OCRConfirmation) (*models.OCRDocument, error) {
	conf.Merchant = strings.TrimSpace(conf.Merchant)
	conf.TransactionType = models.TransactionType(strings.ToUpper(string(conf.TransactionType)))
	if err := l.validate.Validate(conf); err != nil {
		return nil, NormalizeError(err, "Unable to confirm receipt.")
	}

	out, err := l.api.ConfirmOCR(ctx, id, conf)
	if err != nil {
		return nil, NormalizeError(err, "Unable to confirm receipt.")
	}
	l.log.Info(ctx, "receipt confirmed", "id", id, "transaction_id", out.TransactionID)
	return out, nil
}
