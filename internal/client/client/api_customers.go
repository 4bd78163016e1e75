package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
)

func (c *HTTPClient) Customers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: "customers/"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) AddCustomer(ctx context.Context, cu models.Customer) (*models.Customer, error) {
	cl, err := jsonCall(http.MethodPost, "customers/", cu)
	if err != nil {
		return nil, err
	}
	var out models.Customer
	if err := c.doJSON(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteCustomer(ctx context.Context, id int64) error {
	return c.doJSON(ctx, &call{method: http.MethodDelete, path: fmt.Sprintf("customers/%d/", id)}, nil)
}

// CustomerTransactions lists transactions, all of them when customerID is 0.
func (c *HTTPClient) CustomerTransactions(ctx context.Context, customerID int64) ([]models.CustomerTransaction, error) {
	cl := &call{method: http.MethodGet, path: "transactions/"}
	if customerID != 0 {
		cl.query = url.Values{"customer": {strconv.FormatInt(customerID, 10)}}
	}
	var out []models.CustomerTransaction
	if err := c.doJSON(ctx, cl, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) AddCustomerTransaction(ctx context.Context, t models.CustomerTransaction) (*models.CustomerTransaction, error) {
	cl, err := jsonCall(http.MethodPost, "transactions/", t)
	if err != nil {
		return nil, err
	}
	var out models.CustomerTransaction
	if err := c.doJSON(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CustomerSummary(ctx context.Context, customerID int64) (*models.CustomerSummary, error) {
	cl := &call{
		method: http.MethodGet,
		path:   "transactions/summary/",
		query:  url.Values{"customer": {strconv.FormatInt(customerID, 10)}},
	}
	var out models.CustomerSummary
	if err := c.doJSON(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
