package client

import (
	"context"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
)

// Client is the backend API as seen by the services.
type Client interface {
	Close() error

	Login(ctx context.Context, creds models.Credentials) (models.Tokens, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)
	Me(ctx context.Context) (*models.Profile, error)

	BusinessStatus(ctx context.Context) (*models.BusinessStatusInfo, error)
	SubmitPayment(ctx context.Context, p models.PaymentSubmission) error
	SubmitKYC(ctx context.Context, k models.KYCSubmission) error

	DirectThread(ctx context.Context, userID int64) (*models.ChatThread, error)
	ThreadMessages(ctx context.Context, threadID int64) ([]models.ChatMessage, error)
	SendMessage(ctx context.Context, threadID int64, text string) (*models.ChatMessage, error)
	GroupThread(ctx context.Context, groupID int64) (*models.ChatThread, error)

	PrivateTransactions(ctx context.Context) ([]models.PrivateTransaction, error)
	AddPrivateTransaction(ctx context.Context, t models.PrivateTransaction) (*models.PrivateTransaction, error)
	DeletePrivateTransaction(ctx context.Context, id int64) error
	PrivateSummary(ctx context.Context) (*models.PrivateSummary, error)
	ItemLoans(ctx context.Context) ([]models.ItemLoan, error)
	LendItem(ctx context.Context, item models.ItemLoan) (*models.ItemLoan, error)
	ReturnItem(ctx context.Context, id int64) (*models.ItemLoan, error)
	Connections(ctx context.Context) ([]models.Connection, error)
	Connect(ctx context.Context, inviteCode string) (*models.Connection, error)
	Groups(ctx context.Context) ([]models.Group, error)
	CreateGroup(ctx context.Context, name string) (*models.Group, error)
	AddGroupMember(ctx context.Context, groupID, userID int64) error

	LedgerEntries(ctx context.Context) ([]models.LedgerEntry, error)
	AddLedgerEntry(ctx context.Context, e models.LedgerEntryRequest) (*models.LedgerEntry, error)
	SettleLedgerEntry(ctx context.Context, id int64) (*models.LedgerEntry, error)
	CustomerBalances(ctx context.Context) ([]models.CustomerBalance, error)
	CustomerLedger(ctx context.Context, name string) ([]models.LedgerEntry, error)
	OCRDocuments(ctx context.Context) ([]models.OCRDocument, error)
	UploadReceipt(ctx context.Context, image *models.Attachment) (*models.OCRDocument, error)
	OCRDocument(ctx context.Context, id int64) (*models.OCRDocument, error)
	ConfirmOCR(ctx context.Context, id int64, conf models.OCRConfirmation) (*models.OCRDocument, error)

	Customers(ctx context.Context) ([]models.Customer, error)
	AddCustomer(ctx context.Context, c models.Customer) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	CustomerTransactions(ctx context.Context, customerID int64) ([]models.CustomerTransaction, error)
	AddCustomerTransaction(ctx context.Context, t models.CustomerTransaction) (*models.CustomerTransaction, error)
	CustomerSummary(ctx context.Context, customerID int64) (*models.CustomerSummary, error)
}

// TokenStore is the part of tokens.Store the transport needs.
type TokenStore interface {
	Access() (string, bool)
	Refresh() (string, bool)
	SetAccess(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
