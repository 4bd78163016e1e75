package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
)

// fakeMoneyAPI implements PrivateAPI, LedgerAPI and CustomerAPI. Every call
// returns Err when it is set.
type fakeMoneyAPI struct {
	Err error

	// presets
	Transactions []models.PrivateTransaction
	Summary      *models.PrivateSummary
	Items        []models.ItemLoan
	Connections  []models.Connection
	Groups       []models.Group
	Entries      []models.LedgerEntry
	Balances     []models.CustomerBalance
	Documents    []models.OCRDocument
	Customers    []models.Customer
	CustomerTxns []models.CustomerTransaction
	CustSummary  *models.CustomerSummary

	// observed
	Calls           int
	LastTxn         models.PrivateTransaction
	LastItem        models.ItemLoan
	LastInvite      string
	LastGroupName   string
	LastMember      [2]int64
	LastID          int64
	LastEntry       models.LedgerEntryRequest
	LastCustomerArg string
	LastUpload      string
	LastConfirm     models.OCRConfirmation
	LastCustomer    models.Customer
	LastCustTxn     models.CustomerTransaction
}

func (f *fakeMoneyAPI) PrivateTransactions(context.Context) ([]models.PrivateTransaction, error) {
	f.Calls++
	return f.Transactions, f.Err
}

func (f *fakeMoneyAPI) AddPrivateTransaction(_ context.Context, t models.PrivateTransaction) (*models.PrivateTransaction, error) {
	f.Calls++
	f.LastTxn = t
	if f.Err != nil {
		return nil, f.Err
	}
	t.ID = 11
	return &t, nil
}

func (f *fakeMoneyAPI) DeletePrivateTransaction(_ context.Context, id int64) error {
	f.Calls++
	f.LastID = id
	return f.Err
}

func (f *fakeMoneyAPI) PrivateSummary(context.Context) (*models.PrivateSummary, error) {
	f.Calls++
	return f.Summary, f.Err
}

func (f *fakeMoneyAPI) ItemLoans(context.Context) ([]models.ItemLoan, error) {
	f.Calls++
	return f.Items, f.Err
}

func (f *fakeMoneyAPI) LendItem(_ context.Context, item models.ItemLoan) (*models.ItemLoan, error) {
	f.Calls++
	f.LastItem = item
	if f.Err != nil {
		return nil, f.Err
	}
	item.ID, item.Status = 21, models.ItemActive
	return &item, nil
}

func (f *fakeMoneyAPI) ReturnItem(_ context.Context, id int64) (*models.ItemLoan, error) {
	f.Calls++
	f.LastID = id
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.ItemLoan{ID: id, Status: models.ItemReturned}, nil
}

func (f *fakeMoneyAPI) Connections(context.Context) ([]models.Connection, error) {
	f.Calls++
	return f.Connections, f.Err
}

func (f *fakeMoneyAPI) Connect(_ context.Context, code string) (*models.Connection, error) {
	f.Calls++
	f.LastInvite = code
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Connection{User: models.ConnectedUser{ID: 5, Email: "hari@example.com", InviteCode: code}}, nil
}

func (f *fakeMoneyAPI) Groups(context.Context) ([]models.Group, error) {
	f.Calls++
	return f.Groups, f.Err
}

func (f *fakeMoneyAPI) CreateGroup(_ context.Context, name string) (*models.Group, error) {
	f.Calls++
	f.LastGroupName = name
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Group{ID: 3, Name: name, MemberCount: 1, Role: models.GroupAdmin}, nil
}

func (f *fakeMoneyAPI) AddGroupMember(_ context.Context, groupID, userID int64) error {
	f.Calls++
	f.LastMember = [2]int64{groupID, userID}
	return f.Err
}

func (f *fakeMoneyAPI) LedgerEntries(context.Context) ([]models.LedgerEntry, error) {
	f.Calls++
	return f.Entries, f.Err
}

func (f *fakeMoneyAPI) AddLedgerEntry(_ context.Context, e models.LedgerEntryRequest) (*models.LedgerEntry, error) {
	f.Calls++
	f.LastEntry = e
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.LedgerEntry{ID: 31, CustomerName: e.CustomerName, Amount: e.Amount, TransactionType: e.TransactionType, Source: "MANUAL"}, nil
}

func (f *fakeMoneyAPI) SettleLedgerEntry(_ context.Context, id int64) (*models.LedgerEntry, error) {
	f.Calls++
	f.LastID = id
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.LedgerEntry{ID: id, IsSettled: true}, nil
}

func (f *fakeMoneyAPI) CustomerBalances(context.Context) ([]models.CustomerBalance, error) {
	f.Calls++
	return f.Balances, f.Err
}

func (f *fakeMoneyAPI) CustomerLedger(_ context.Context, name string) ([]models.LedgerEntry, error) {
	f.Calls++
	f.LastCustomerArg = name
	return f.Entries, f.Err
}

func (f *fakeMoneyAPI) OCRDocuments(context.Context) ([]models.OCRDocument, error) {
	f.Calls++
	return f.Documents, f.Err
}

func (f *fakeMoneyAPI) UploadReceipt(_ context.Context, image *models.Attachment) (*models.OCRDocument, error) {
	f.Calls++
	b, _ := io.ReadAll(image.Content)
	f.LastUpload = string(b)
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.OCRDocument{ID: 41, Status: models.OCRDraft}, nil
}

func (f *fakeMoneyAPI) OCRDocument(_ context.Context, id int64) (*models.OCRDocument, error) {
	f.Calls++
	f.LastID = id
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.OCRDocument{ID: id, Status: models.OCRDraft}, nil
}

func (f *fakeMoneyAPI) ConfirmOCR(_ context.Context, id int64, conf models.OCRConfirmation) (*models.OCRDocument, error) {
	f.Calls++
	f.LastID = id
	f.LastConfirm = conf
	if f.Err != nil {
		return nil, f.Err
	}
	txn := int64(51)
	return &models.OCRDocument{ID: id, Status: models.OCRConfirmed, TransactionID: &txn}, nil
}

func (f *fakeMoneyAPI) Customers(context.Context) ([]models.Customer, error) {
	f.Calls++
	return f.Customers, f.Err
}

func (f *fakeMoneyAPI) AddCustomer(_ context.Context, c models.Customer) (*models.Customer, error) {
	f.Calls++
	f.LastCustomer = c
	if f.Err != nil {
		return nil, f.Err
	}
	c.ID = 61
	return &c, nil
}

func (f *fakeMoneyAPI) DeleteCustomer(_ context.Context, id int64) error {
	f.Calls++
	f.LastID = id
	return f.Err
}

func (f *fakeMoneyAPI) CustomerTransactions(_ context.Context, customerID int64) ([]models.CustomerTransaction, error) {
	f.Calls++
	f.LastID = customerID
	return f.CustomerTxns, f.Err
}

func (f *fakeMoneyAPI) AddCustomerTransaction(_ context.Context, t models.CustomerTransaction) (*models.CustomerTransaction, error) {
	f.Calls++
	f.LastCustTxn = t
	if f.Err != nil {
		return nil, f.Err
	}
	t.ID = 71
	return &t, nil
}

func (f *fakeMoneyAPI) CustomerSummary(_ context.Context, customerID int64) (*models.CustomerSummary, error) {
	f.Calls++
	f.LastID = customerID
	return f.CustSummary, f.Err
}
