package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/client/routes"
	"github.com/dmitrijs2005/udharoguru/internal/logging"
)

// command is one REPL verb. A nil route means the command is always
// available; otherwise the route decides, exactly as a page would be gated.
type command struct {
	name  string
	usage string
	route *routes.Route
	run   func(ctx context.Context, args []string) error
}

// sessionView is the session state the REPL gates on.
type sessionView interface {
	Loading() bool
	Ready() <-chan struct{}
	Profile() *models.Profile
}

// hints name the command that leads to each landing route.
var hints = map[string]string{
	routes.Auth:              "login",
	routes.Login:             "login",
	routes.Signup:            "register",
	routes.PrivateDashboard:  "chat <user_id>",
	routes.BusinessPayment:   "pay",
	routes.BusinessKYC:       "kyc",
	routes.BusinessPending:   "status",
	routes.BusinessRejected:  "status",
	routes.BusinessDashboard: "ledger",
	routes.BusinessLedger:    "ledger",
	routes.BusinessOCR:       "receipts",
	routes.Customers:         "customers",
	routes.Transactions:      "transactions",
}

// decide gates cmd, waiting out a bootstrap in progress.
func decide(ctx context.Context, s sessionView, cmd command) routes.Decision {
	if cmd.route == nil {
		return routes.Decision{Allow: true}
	}
	d := cmd.route.Decide(s.Loading(), s.Profile())
	if d.Wait {
		select {
		case <-s.Ready():
		case <-ctx.Done():
			return d
		}
		d = cmd.route.Decide(s.Loading(), s.Profile())
	}
	return d
}

// runREPL reads commands from reader until EOF, "exit" or "quit". The
// prompt shows statusFn(). Commands that prompt for more input read from
// the same reader. Command errors are shown to the user by the commands
// themselves and only logged here; the loop keeps going.
func runREPL(ctx context.Context, log logging.Logger, s sessionView, commands []command, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	byName := make(map[string]command, len(commands))
	for _, c := range commands {
		byName[c.name] = c
	}

	for {
		fmt.Fprintf(out, "udharo %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		case "help":
			var available []string
			for _, c := range commands {
				if decide(ctx, s, c).Allow {
					available = append(available, c.usage)
				}
			}
			available = append(available, "help", "exit")
			fmt.Fprintln(out, "Available commands:", strings.Join(available, ", "))
			continue
		}

		cmd, ok := byName[name]
		if !ok {
			fmt.Fprintln(out, "Unknown command:", name)
			continue
		}

		d := decide(ctx, s, cmd)
		switch {
		case d.Wait:
			return
		case d.Denied():
			fmt.Fprintf(out, "%q is not available here; you belong at %s", name, d.Redirect)
			if hint, ok := hints[d.Redirect]; ok {
				fmt.Fprintf(out, " (try %q)", hint)
			}
			fmt.Fprintln(out)
			continue
		}

		if err := cmd.run(ctx, args); err != nil {
			log.Debug(ctx, "command failed", "command", name, "error", err)
		}
	}
}
