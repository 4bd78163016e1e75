package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
)

// Transactions lists the personal money records.
func (a *App) Transactions(ctx context.Context, _ []string) error {
	txns, err := a.private.Transactions(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(txns) == 0 {
		a.println("No transactions yet.")
		return nil
	}
	for _, t := range txns {
		a.printf("#%-4d %s  %-8s %-20s %12s", t.ID, t.TransactionDate, t.TransactionType, t.PersonName, t.Amount.StringFixed(2))
		if t.Note != "" {
			a.printf("  %s", t.Note)
		}
		a.println()
	}
	return nil
}

// AddTransaction records money lent to or borrowed from someone.
func (a *App) AddTransaction(ctx context.Context, _ []string) error {
	person, err := GetRequiredText(a.reader, "Person name", a.out)
	if err != nil {
		return err
	}
	amount, err := GetAmount(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	kind, err := GetWithDefault(a.reader, "Type: lent or borrowed", "lent", a.out)
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

	t, err := a.private.AddTransaction(ctx, models.PrivateTransaction{
		PersonName:      person,
		Amount:          amount,
		TransactionType: models.TransactionType(kind),
		TransactionDate: date,
		Note:            note,
	})
	if err != nil {
		return a.report(err)
	}
	a.printf("Saved transaction #%d: %s %s %s.\n", t.ID, strings.ToLower(string(t.TransactionType)), t.Amount.StringFixed(2), t.PersonName)
	return nil
}

func (a *App) DeleteTransaction(ctx context.Context, args []string) error {
	id, ok := idArg(args)
	if !ok {
		a.println("Usage: del-txn <id>")
		return nil
	}
	if err := a.private.DeleteTransaction(ctx, id); err != nil {
		return a.report(err)
	}
	a.printf("Deleted transaction #%d.\n", id)
	return nil
}

// Summary prints what others owe the user and what the user owes.
func (a *App) Summary(ctx context.Context, _ []string) error {
	s, err := a.private.Summary(ctx)
	if err != nil {
		return a.report(err)
	}
	a.printf("To receive:  %s\n", s.TotalReceivable.StringFixed(2))
	a.printf("To pay:      %s\n", s.TotalPayable.StringFixed(2))
	a.printf("Net:         %s\n", s.NetBalance.StringFixed(2))
	return nil
}

// Items lists things lent to connections.
func (a *App) Items(ctx context.Context, _ []string) error {
	items, err := a.private.Items(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(items) == 0 {
		a.println("No items lent.")
		return nil
	}
	for _, it := range items {
		a.printf("#%-4d %-20s to user %-4d since %s  %s", it.ID, it.ItemName, it.Borrower, it.LentDate, it.Status)
		if it.ExpectedReturnDate != "" {
			a.printf("  due %s", it.ExpectedReturnDate)
		}
		a.println()
	}
	return nil
}

// Lend records an item lent to a connected user.
func (a *App) Lend(ctx context.Context, _ []string) error {
	borrower, err := GetID(a.reader, "Borrower user id (see \"friends\")", a.out)
	if err != nil {
		return err
	}
	name, err := GetRequiredText(a.reader, "Item name", a.out)
	if err != nil {
		return err
	}
	desc, err := GetSimpleText(a.reader, "Description [optional]", a.out)
	if err != nil {
		return err
	}
	due, err := GetSimpleText(a.reader, "Expected return date (YYYY-MM-DD) [optional]", a.out)
	if err != nil {
		return err
	}
	remind, err := GetWithDefault(a.reader, "Send reminders? y/n", "y", a.out)
	if err != nil {
		return err
	}

	it, err := a.private.LendItem(ctx, models.ItemLoan{
		Borrower:           borrower,
		ItemName:           name,
		ItemDescription:    desc,
		ExpectedReturnDate: due,
		ReminderEnabled:    strings.HasPrefix(strings.ToLower(remind), "y"),
	})
	if err != nil {
		return a.report(err)
	}
	a.printf("Lent %s to user %d (item #%d).\n", it.ItemName, it.Borrower, it.ID)
	return nil
}

func (a *App) Return(ctx context.Context, args []string) error {
	id, ok := idArg(args)
	if !ok {
		a.println("Usage: return <item_id>")
		return nil
	}
	it, err := a.private.ReturnItem(ctx, id)
	if err != nil {
		return a.report(err)
	}
	a.printf("Item #%d marked %s.\n", it.ID, strings.ToLower(string(it.Status)))
	return nil
}

// Friends lists the user's connections.
func (a *App) Friends(ctx context.Context, _ []string) error {
	conns, err := a.private.Connections(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(conns) == 0 {
		a.println("No connections yet. Share your invite code (see \"whoami\").")
		return nil
	}
	for _, c := range conns {
		a.printf("user %-4d %s\n", c.User.ID, c.User.Email)
	}
	return nil
}

func (a *App) Connect(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: connect <invite_code>")
		return nil
	}
	c, err := a.private.Connect(ctx, args[0])
	if err != nil {
		return a.report(err)
	}
	a.printf("Connected with %s (user %d).\n", c.User.Email, c.User.ID)
	return nil
}

func (a *App) Groups(ctx context.Context, _ []string) error {
	groups, err := a.private.Groups(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(groups) == 0 {
		a.println("No groups yet.")
		return nil
	}
	for _, g := range groups {
		a.printf("#%-4d %-24s %d members, %s\n", g.ID, g.Name, g.MemberCount, strings.ToLower(string(g.Role)))
	}
	return nil
}

// NewGroup creates a group named by the rest of the line.
func (a *App) NewGroup(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		a.println("Usage: new-group <name>")
		return nil
	}
	g, err := a.private.CreateGroup(ctx, name)
	if err != nil {
		return a.report(err)
	}
	a.printf("Created group #%d %s.\n", g.ID, g.Name)
	return nil
}

func (a *App) GroupMember(ctx context.Context, args []string) error {
	if len(args) != 2 {
		a.println("Usage: group-member <group_id> <user_id>")
		return nil
	}
	groupID, ok1 := idArg(args[:1])
	userID, ok2 := idArg(args[1:])
	if !ok1 || !ok2 {
		a.println("Usage: group-member <group_id> <user_id>")
		return nil
	}
	if err := a.private.AddGroupMember(ctx, groupID, userID); err != nil {
		return a.report(err)
	}
	a.printf("Added user %d to group #%d.\n", userID, groupID)
	return nil
}
