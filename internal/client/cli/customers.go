package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
)

// Customers lists the shared customer book.
func (a *App) Customers(ctx context.Context, _ []string) error {
	list, err := a.customers.Customers(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(list) == 0 {
		a.println("No customers yet.")
		return nil
	}
	for _, c := range list {
		a.printf("#%-4d %-24s %s\n", c.ID, c.Name, strings.TrimSpace(c.Phone+" "+c.Email))
	}
	return nil
}

func (a *App) CustomerAdd(ctx context.Context, _ []string) error {
	var c models.Customer
	fields := []struct {
		prompt   string
		dst      *string
		optional bool
	}{
		{"Name", &c.Name, false},
		{"Phone [optional]", &c.Phone, true},
		{"Email [optional]", &c.Email, true},
		{"Address [optional]", &c.Address, true},
		{"Notes [optional]", &c.Notes, true},
	}
	for _, f := range fields {
		read := GetRequiredText
		if f.optional {
			read = GetSimpleText
		}
		v, err := read(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	out, err := a.customers.AddCustomer(ctx, c)
	if err != nil {
		return a.report(err)
	}
	a.printf("Added customer #%d %s.\n", out.ID, out.Name)
	return nil
}

func (a *App) CustomerDelete(ctx context.Context, args []string) error {
	id, ok := idArg(args)
	if !ok {
		a.println("Usage: customer-del <id>")
		return nil
	}
	if err := a.customers.DeleteCustomer(ctx, id); err != nil {
		return a.report(err)
	}
	a.printf("Deleted customer #%d.\n", id)
	return nil
}

// CustomerTransactions lists transactions, for one customer when an id is
// given.
func (a *App) CustomerTransactions(ctx context.Context, args []string) error {
	var customerID int64
	if len(args) > 0 {
		id, ok := idArg(args)
		if !ok {
			a.println("Usage: transactions [customer_id]")
			return nil
		}
		customerID = id
	}
	txns, err := a.customers.Transactions(ctx, customerID)
	if err != nil {
		return a.report(err)
	}
	if len(txns) == 0 {
		a.println("No transactions yet.")
		return nil
	}
	for _, t := range txns {
		a.printf("#%-4d %-20s %-6s %12s  %s", t.ID, t.CustomerName, t.TransactionType, t.Amount.StringFixed(2), strings.ToLower(string(t.Status)))
		if t.DueDate != "" {
			a.printf("  due %s", t.DueDate)
		}
		if t.Description != "" {
			a.printf("  %s", t.Description)
		}
		a.println()
	}
	return nil
}

func (a *App) CustomerTransactionAdd(ctx context.Context, _ []string) error {
	customerID, err := GetID(a.reader, "Customer id (see \"customers\")", a.out)
	if err != nil {
		return err
	}
	amount, err := GetAmount(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	kind, err := GetWithDefault(a.reader, "Type: credit or debit", "credit", a.out)
	if err != nil {
		return err
	}
	desc, err := GetSimpleText(a.reader, "Description [optional]", a.out)
	if err != nil {
		return err
	}
	due, err := GetSimpleText(a.reader, "Due date (YYYY-MM-DD) [optional]", a.out)
	if err != nil {
		return err
	}

	t, err := a.customers.AddTransaction(ctx, models.CustomerTransaction{
		Customer:        customerID,
		Amount:          amount,
		TransactionType: models.TransactionType(kind),
		Description:     desc,
		DueDate:         due,
	})
	if err != nil {
		return a.report(err)
	}
	a.printf("Saved transaction #%d.\n", t.ID)
	return nil
}

// Balance prints one customer's credit, debit and balance.
func (a *App) Balance(ctx context.Context, args []string) error {
	id, ok := idArg(args)
	if !ok {
		a.println("Usage: balance <customer_id>")
		return nil
	}
	s, err := a.customers.Summary(ctx, id)
	if err != nil {
		return a.report(err)
	}
	a.printf("Credit:   %s\n", s.CreditTotal.StringFixed(2))
	a.printf("Debit:    %s\n", s.DebitTotal.StringFixed(2))
	a.printf("Balance:  %s\n", s.Balance.StringFixed(2))
	return nil
}
