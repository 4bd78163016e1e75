package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/client/routes"
	"github.com/shopspring/decimal"
)

// Ledger lists the business ledger with the unsettled total.
func (a *App) Ledger(ctx context.Context, _ []string) error {
	if !a.stay(ctx, routes.BusinessLedger) {
		return nil
	}
	entries, err := a.ledger.Entries(ctx)
	if err != nil {
		return a.report(err)
	}
	a.printEntries(entries)
	return nil
}

func (a *App) printEntries(entries []models.LedgerEntry) {
	if len(entries) == 0 {
		a.println("No ledger entries yet.")
		return
	}
	for _, e := range entries {
		settled := ""
		if e.IsSettled {
			settled = "  settled"
		}
		a.printf("#%-4d %s  %-8s %-20s %12s%s\n", e.ID, e.TransactionDate, e.TransactionType, e.Counterparty(), e.Amount.StringFixed(2), settled)
	}
	a.printf("Outstanding: %s\n", models.Outstanding(entries).StringFixed(2))
}

// LedgerAdd records a ledger entry for a customer.
func (a *App) LedgerAdd(ctx context.Context, _ []string) error {
	if !a.stay(ctx, routes.BusinessLedger) {
		return nil
	}

	customer, err := GetRequiredText(a.reader, "Customer name", a.out)
	if err != nil {
		return err
	}
	amount, err := GetAmount(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	kind, err := GetWithDefault(a.reader, "Type: credit, debit, lent or borrowed", "credit", a.out)
	if err != nil {
		return err
	}
	date, err := GetWithDefault(a.reader, "Date (YYYY-MM-DD)", models.Today(), a.out)
	if err != nil {
		return err
	}
	note, err := GetSimpleText(a.reader, "Note [optional]", a.out)
	if err != nil {
		return err
	}

	e, err := a.ledger.AddEntry(ctx, models.LedgerEntryRequest{
		CustomerName:    customer,
		Amount:          amount,
		TransactionType: models.TransactionType(kind),
		TransactionDate: date,
		Note:            note,
	})
	if err != nil {
		return a.report(err)
	}
	a.printf("Saved ledger entry #%d for %s.\n", e.ID, e.Counterparty())
	return nil
}

func (a *App) Settle(ctx context.Context, args []string) error {
	id, ok := idArg(args)
	if !ok {
		a.println("Usage: settle <entry_id>")
		return nil
	}
	if !a.stay(ctx, routes.BusinessLedger) {
		return nil
	}
	e, err := a.ledger.Settle(ctx, id)
	if err != nil {
		return a.report(err)
	}
	a.printf("Entry #%d settled.\n", e.ID)
	return nil
}

// Balances prints every customer's running balance.
func (a *App) Balances(ctx context.Context, _ []string) error {
	if !a.stay(ctx, routes.BusinessLedger) {
		return nil
	}
	balances, err := a.ledger.Balances(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(balances) == 0 {
		a.println("No customers in the ledger yet.")
		return nil
	}
	for _, b := range balances {
		a.printf("%-24s %12s\n", b.CustomerName, b.Balance.StringFixed(2))
	}
	return nil
}

// Customer lists the ledger entries for one customer, named by the rest of
// the line.
func (a *App) Customer(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		a.println("Usage: customer <name>")
		return nil
	}
	if !a.stay(ctx, routes.BusinessLedger) {
		return nil
	}
	entries, err := a.ledger.CustomerEntries(ctx, name)
	if err != nil {
		return a.report(err)
	}
	a.printEntries(entries)
	return nil
}

// Receipts lists uploaded receipts.
func (a *App) Receipts(ctx context.Context, _ []string) error {
	if !a.stay(ctx, routes.BusinessOCR) {
		return nil
	}
	docs, err := a.ledger.Receipts(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(docs) == 0 {
		a.println("No receipts uploaded.")
		return nil
	}
	for _, d := range docs {
		c := d.Draft()
		a.printf("#%-4d %-9s %-20s %12s  %s\n", d.ID, d.Status, orDash(c.Merchant), amountOrDash(d.ExtractedAmount), orDash(c.Date))
	}
	return nil
}

// Scan uploads a receipt image and shows what was read from it.
func (a *App) Scan(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: scan <image_file>")
		return nil
	}
	if !a.stay(ctx, routes.BusinessOCR) {
		return nil
	}
	image, closer, err := openAttachment(args[0])
	if err != nil {
		return a.report(err)
	}
	defer closer.Close()

	d, err := a.ledger.UploadReceipt(ctx, image)
	if err != nil {
		return a.report(err)
	}
	a.showReceipt(d)
	a.printf("Review it, then run %q.\n", "confirm "+strconv.FormatInt(d.ID, 10))
	return nil
}

func (a *App) Receipt(ctx context.Context, args []string) error {
	id, ok := idArg(args)
	if !ok {
		a.println("Usage: receipt <id>")
		return nil
	}
	if !a.stay(ctx, routes.BusinessOCR) {
		return nil
	}
	d, err := a.ledger.Receipt(ctx, id)
	if err != nil {
		return a.report(err)
	}
	a.showReceipt(d)
	return nil
}

func (a *App) showReceipt(d *models.OCRDocument) {
	c := d.Draft()
	a.printf("Receipt #%d (%s)\n", d.ID, strings.ToLower(string(d.Status)))
	a.printf("Merchant: %s\n", orDash(c.Merchant))
	a.printf("Amount:   %s\n", amountOrDash(d.ExtractedAmount))
	a.printf("Date:     %s\n", orDash(c.Date))
	if d.RawText != "" {
		a.println("Text:")
		a.println(d.RawText)
	}
}

// Confirm turns a draft receipt into a ledger entry. Prompts default to the
// values read from the image.
func (a *App) Confirm(ctx context.Context, args []string) error {
	id, ok := idArg(args)
	if !ok {
		a.println("Usage: confirm <receipt_id>")
		return nil
	}
	if !a.stay(ctx, routes.BusinessOCR) {
		return nil
	}
	d, err := a.ledger.Receipt(ctx, id)
	if err != nil {
		return a.report(err)
	}
	if d.Status == models.OCRConfirmed {
		a.printf("Receipt #%d is already confirmed.\n", d.ID)
		return nil
	}

	c := d.Draft()
	if d.ExtractedAmount.Valid && d.ExtractedAmount.Decimal.IsPositive() {
		s, err := GetWithDefault(a.reader, "Amount", c.Amount.String(), a.out)
		if err != nil {
			return err
		}
		if c.Amount, err = decimal.NewFromString(strings.ReplaceAll(s, ",", "")); err != nil || !c.Amount.IsPositive() {
			a.println("Enter an amount greater than zero, e.g. 1500 or 250.50.")
			if c.Amount, err = GetAmount(a.reader, "Amount", a.out); err != nil {
				return err
			}
		}
	} else if c.Amount, err = GetAmount(a.reader, "Amount", a.out); err != nil {
		return err
	}
	if c.Date == "" {
		c.Date = models.Today()
	}
	if c.Date, err = GetWithDefault(a.reader, "Date (YYYY-MM-DD)", c.Date, a.out); err != nil {
		return err
	}
	if c.Merchant == "" {
		c.Merchant, err = GetRequiredText(a.reader, "Merchant", a.out)
	} else {
		c.Merchant, err = GetWithDefault(a.reader, "Merchant", c.Merchant, a.out)
	}
	if err != nil {
		return err
	}
	kind, err := GetWithDefault(a.reader, "Type: credit or debit", strings.ToLower(string(c.TransactionType)), a.out)
	if err != nil {
		return err
	}
	c.TransactionType = models.TransactionType(kind)
	if c.Note, err = GetSimpleText(a.reader, "Note [optional]", a.out); err != nil {
		return err
	}

	out, err := a.ledger.ConfirmReceipt(ctx, id, c)
	if err != nil {
		return a.report(err)
	}
	if out.TransactionID != nil {
		a.printf("Receipt #%d confirmed as ledger entry #%d.\n", out.ID, *out.TransactionID)
	} else {
		a.printf("Receipt #%d confirmed.\n", out.ID)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func amountOrDash(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.StringFixed(2)
}
