package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/logging"
	"github.com/dmitrijs2005/udharoguru/internal/validator"
)

// CustomerAPI is the older single-ledger part of the backend.
type CustomerAPI interface {
	Customers(ctx context.Context) ([]models.Customer, error)
	AddCustomer(ctx context.Context, c models.Customer) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	CustomerTransactions(ctx context.Context, customerID int64) ([]models.CustomerTransaction, error)
	AddCustomerTransaction(ctx context.Context, t models.CustomerTransaction) (*models.CustomerTransaction, error)
	CustomerSummary(ctx context.Context, customerID int64) (*models.CustomerSummary, error)
}

type CustomerService struct {
	api      CustomerAPI
	validate *validator.Validator
	log      logging.Logger
}

func NewCustomerService(api CustomerAPI, log logging.Logger) *CustomerService {
	if log == nil {
		log = logging.Nop()
	}
	return &CustomerService{
		api:      api,
		validate: validator.New(),
		log:      log.With("component", "customers"),
	}
}

func (c *CustomerService) Customers(ctx context.Context) ([]models.Customer, error) {
	out, err := c.api.Customers(ctx)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load customers.")
	}
	return out, nil
}

func (c *CustomerService) AddCustomer(ctx context.Context, cu models.Customer) (*models.Customer, error) {
	cu.Name = strings.TrimSpace(cu.Name)
	if err := c.validate.Validate(cu); err != nil {
		return nil, NormalizeError(err, "Unable to add customer.")
	}
	out, err := c.api.AddCustomer(ctx, cu)
	if err != nil {
		return nil, NormalizeError(err, "Unable to add customer.")
	}
	c.log.Info(ctx, "customer added", "id", out.ID)
	return out, nil
}

func (c *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	if err := c.api.DeleteCustomer(ctx, id); err != nil {
		return NormalizeError(err, "Unable to delete customer.")
	}
	return nil
}

// Transactions lists one customer's transactions, or everyone's for id 0.
func (c *CustomerService) Transactions(ctx context.Context, customerID int64) ([]models.CustomerTransaction, error) {
	out, err := c.api.CustomerTransactions(ctx, customerID)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load transactions.")
	}
	return out, nil
}

// AddTransaction records a credit or debit; new ones are pending unless
// told otherwise.
func (c *CustomerService) AddTransaction(ctx context.Context, t models.CustomerTransaction) (*models.CustomerTransaction, error) {
	t.TransactionType = models.TransactionType(strings.ToUpper(string(t.TransactionType)))
	if t.Status == "" {
		t.Status = models.PaymentPending
	}
	if err := c.validate.Validate(t); err != nil {
		return nil, NormalizeError(err, "Unable to save transaction.")
	}
	out, err := c.api.AddCustomerTransaction(ctx, t)
	if err != nil {
		return nil, NormalizeError(err, "Unable to save transaction.")
	}
	return out, nil
}

func (c *CustomerService) Summary(ctx context.Context, customerID int64) (*models.CustomerSummary, error) {
	if customerID <= 0 {
		return nil, errorf("Customer is required.")
	}
	out, err := c.api.CustomerSummary(ctx, customerID)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load summary.")
	}
	return out, nil
}
