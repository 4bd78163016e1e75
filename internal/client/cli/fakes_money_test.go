package cli

import (
	"context"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
)

// fakePrivate returns its presets and records what it was given.
type fakePrivate struct {
	Err        error
	Txns       []models.PrivateTransaction
	Sum        *models.PrivateSummary
	ItemList   []models.ItemLoan
	Conns      []models.Connection
	GroupList  []models.Group
	LastTxn    *models.PrivateTransaction
	LastItem   *models.ItemLoan
	LastID     int64
	LastCode   string
	LastGroup  string
	LastMember [2]int64
	Deleted    []int64
}

func (f *fakePrivate) Transactions(context.Context) ([]models.PrivateTransaction, error) {
	return f.Txns, f.Err
}

func (f *fakePrivate) AddTransaction(_ context.Context, t models.PrivateTransaction) (*models.PrivateTransaction, error) {
	f.LastTxn = &t
	if f.Err != nil {
		return nil, f.Err
	}
	t.ID = 31
	return &t, nil
}

func (f *fakePrivate) DeleteTransaction(_ context.Context, id int64) error {
	f.Deleted = append(f.Deleted, id)
	return f.Err
}

func (f *fakePrivate) Summary(context.Context) (*models.PrivateSummary, error) {
	return f.Sum, f.Err
}

func (f *fakePrivate) Items(context.Context) ([]models.ItemLoan, error) {
	return f.ItemList, f.Err
}

func (f *fakePrivate) LendItem(_ context.Context, it models.ItemLoan) (*models.ItemLoan, error) {
	f.LastItem = &it
	if f.Err != nil {
		return nil, f.Err
	}
	it.ID = 8
	return &it, nil
}

func (f *fakePrivate) ReturnItem(_ context.Context, id int64) (*models.ItemLoan, error) {
	f.LastID = id
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.ItemLoan{ID: id, Status: models.ItemReturned}, nil
}

func (f *fakePrivate) Connections(context.Context) ([]models.Connection, error) {
	return f.Conns, f.Err
}

func (f *fakePrivate) Connect(_ context.Context, code string) (*models.Connection, error) {
	f.LastCode = code
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Connection{ID: 3, User: models.ConnectedUser{ID: 12, Email: "hari@example.com"}}, nil
}

func (f *fakePrivate) Groups(context.Context) ([]models.Group, error) {
	return f.GroupList, f.Err
}

func (f *fakePrivate) CreateGroup(_ context.Context, name string) (*models.Group, error) {
	f.LastGroup = name
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.Group{ID: 4, Name: name, MemberCount: 1, Role: models.GroupAdmin}, nil
}

func (f *fakePrivate) AddGroupMember(_ context.Context, groupID, userID int64) error {
	f.LastMember = [2]int64{groupID, userID}
	return f.Err
}

type fakeLedger struct {
	Err         error
	EntryList   []models.LedgerEntry
	BalanceList []models.CustomerBalance
	Docs        []models.OCRDocument
	Doc         *models.OCRDocument
	LastReq     *models.LedgerEntryRequest
	LastName    string
	LastID      int64
	LastImage   string
	LastConf    *models.OCRConfirmation
}

func (f *fakeLedger) Entries(context.Context) ([]models.LedgerEntry, error) {
	return f.EntryList, f.Err
}

func (f *fakeLedger) AddEntry(_ context.Context, e models.LedgerEntryRequest) (*models.LedgerEntry, error) {
	f.LastReq = &e
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.LedgerEntry{ID: 55, CustomerName: e.CustomerName, Amount: e.Amount, TransactionType: e.TransactionType}, nil
}

func (f *fakeLedger) Settle(_ context.Context, id int64) (*models.LedgerEntry, error) {
	f.LastID = id
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.LedgerEntry{ID: id, IsSettled: true}, nil
}

func (f *fakeLedger) Balances(context.Context) ([]models.CustomerBalance, error) {
	return f.BalanceList, f.Err
}

func (f *fakeLedger) CustomerEntries(_ context.Context, name string) ([]models.LedgerEntry, error) {
	f.LastName = name
	return f.EntryList, f.Err
}

func (f *fakeLedger) Receipts(context.Context) ([]models.OCRDocument, error) {
	return f.Docs, f.Err
}

func (f *fakeLedger) UploadReceipt(_ context.Context, image *models.Attachment) (*models.OCRDocument, error) {
	f.LastImage = image.FileName
	return f.Doc, f.Err
}

func (f *fakeLedger) Receipt(_ context.Context, id int64) (*models.OCRDocument, error) {
	f.LastID = id
	return f.Doc, f.Err
}

func (f *fakeLedger) ConfirmReceipt(_ context.Context, id int64, c models.OCRConfirmation) (*models.OCRDocument, error) {
	f.LastConf = &c
	if f.Err != nil {
		return nil, f.Err
	}
	txn := int64(77)
	return &models.OCRDocument{ID: id, Status: models.OCRConfirmed, TransactionID: &txn}, nil
}

type fakeCustomers struct {
	Err      error
	List     []models.Customer
	Txns     []models.CustomerTransaction
	Sum      *models.CustomerSummary
	LastCust *models.Customer
	LastTxn  *models.CustomerTransaction
	LastID   int64
}

func (f *fakeCustomers) Customers(context.Context) ([]models.Customer, error) {
	return f.List, f.Err
}

func (f *fakeCustomers) AddCustomer(_ context.Context, c models.Customer) (*models.Customer, error) {
	f.LastCust = &c
	if f.Err != nil {
		return nil, f.Err
	}
	c.ID = 6
	return &c, nil
}

func (f *fakeCustomers) DeleteCustomer(_ context.Context, id int64) error {
	f.LastID = id
	return f.Err
}

func (f *fakeCustomers) Transactions(_ context.Context, customerID int64) ([]models.CustomerTransaction, error) {
	f.LastID = customerID
	return f.Txns, f.Err
}

func (f *fakeCustomers) AddTransaction(_ context.Context, t models.CustomerTransaction) (*models.CustomerTransaction, error) {
	f.LastTxn = &t
	if f.Err != nil {
		return nil, f.Err
	}
	t.ID = 90
	return &t, nil
}

func (f *fakeCustomers) Summary(_ context.Context, customerID int64) (*models.CustomerSummary, error) {
	f.LastID = customerID
	return f.Sum, f.Err
}
