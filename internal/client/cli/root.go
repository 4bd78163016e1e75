package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/udharoguru/internal/client/routes"
)

func route(path string) *routes.Route {
	r := routes.Lookup(path)
	return &r
}

// commands lists the REPL verbs with the route that gates each one.
func (a *App) commands() []command {
	signedIn := &routes.Route{Kind: routes.KindProtected}
	business := &routes.Route{Kind: routes.KindProtected, Guard: routes.EnsureBusiness}
	private := route(routes.PrivateDashboard)
	ledger := route(routes.BusinessLedger)
	ocr := route(routes.BusinessOCR)

	return []command{
		{name: "register", usage: "register", route: route(routes.Signup), run: a.Register},
		{name: "login", usage: "login", route: route(routes.Login), run: a.Login},
		{name: "logout", usage: "logout", route: signedIn, run: a.Logout},
		{name: "whoami", usage: "whoami", route: signedIn, run: a.Whoami},
		{name: "home", usage: "home", run: a.Home},
		{name: "status", usage: "status", route: business, run: a.Status},
		{name: "pay", usage: "pay", route: route(routes.BusinessPayment), run: a.Pay},
		{name: "kyc", usage: "kyc", route: route(routes.BusinessKYC), run: a.KYC},
		{name: "chat", usage: "chat <user_id>", route: private, run: a.Chat},
		{name: "txns", usage: "txns", route: private, run: a.Transactions},
		{name: "add-txn", usage: "add-txn", route: private, run: a.AddTransaction},
		{name: "del-txn", usage: "del-txn <id>", route: private, run: a.DeleteTransaction},
		{name: "summary", usage: "summary", route: private, run: a.Summary},
		{name: "items", usage: "items", route: private, run: a.Items},
		{name: "lend", usage: "lend", route: private, run: a.Lend},
		{name: "return", usage: "return <item_id>", route: private, run: a.Return},
		{name: "friends", usage: "friends", route: private, run: a.Friends},
		{name: "connect", usage: "connect <invite_code>", route: private, run: a.Connect},
		{name: "groups", usage: "groups", route: private, run: a.Groups},
		{name: "new-group", usage: "new-group <name>", route: private, run: a.NewGroup},
		{name: "group-member", usage: "group-member <group_id> <user_id>", route: private, run: a.GroupMember},
		{name: "group-chat", usage: "group-chat <group_id>", route: private, run: a.GroupChat},
		{name: "ledger", usage: "ledger", route: ledger, run: a.Ledger},
		{name: "ledger-add", usage: "ledger-add", route: ledger, run: a.LedgerAdd},
		{name: "settle", usage: "settle <entry_id>", route: ledger, run: a.Settle},
		{name: "balances", usage: "balances", route: ledger, run: a.Balances},
		{name: "customer", usage: "customer <name>", route: ledger, run: a.Customer},
		{name: "receipts", usage: "receipts", route: ocr, run: a.Receipts},
		{name: "scan", usage: "scan <image_file>", route: ocr, run: a.Scan},
		{name: "receipt", usage: "receipt <id>", route: ocr, run: a.Receipt},
		{name: "confirm", usage: "confirm <receipt_id>", route: ocr, run: a.Confirm},
		{name: "customers", usage: "customers", route: route(routes.Customers), run: a.Customers},
		{name: "customer-add", usage: "customer-add", route: route(routes.Customers), run: a.CustomerAdd},
		{name: "customer-del", usage: "customer-del <id>", route: route(routes.Customers), run: a.CustomerDelete},
		{name: "balance", usage: "balance <customer_id>", route: route(routes.Customers), run: a.Balance},
		{name: "transactions", usage: "transactions [customer_id]", route: route(routes.Transactions), run: a.CustomerTransactions},
		{name: "transaction-add", usage: "transaction-add", route: route(routes.Transactions), run: a.CustomerTransactionAdd},
	}
}

// getStatus is the prompt decoration: who is logged in and where they land.
func (a *App) getStatus() string {
	if a.session.Loading() {
		return "(loading)"
	}
	p := a.session.Profile()
	if p == nil {
		return fmt.Sprintf("(%s)", routes.Auth)
	}
	return fmt.Sprintf("(%s %s)", p.Email, routes.ResolveHome(p))
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to UdharoGuru (type 'help' for commands)")

	select {
	case <-a.session.Ready():
	case <-ctx.Done():
		return
	}

	runREPL(ctx, a.log, a.session, a.commands(), a.getStatus, a.reader, a.out)
}
