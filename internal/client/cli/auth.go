package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/client/routes"
	"github.com/dmitrijs2005/udharoguru/internal/client/tokens"
)

// getPassword is swapped in tests.
var getPassword = GetPassword

// Register prompts for the account details and creates the account. When
// the backend holds the account for verification no session starts.
func (a *App) Register(ctx context.Context, _ []string) error {
	email, err := GetRequiredText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	fullName, err := GetRequiredText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	accountType, err := GetSimpleText(a.reader, "Account type: private or business [private]", a.out)
	if err != nil {
		return err
	}
	if accountType == "" {
		accountType = string(models.AccountPrivate)
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	p, err := a.session.Register(ctx, models.RegisterRequest{
		Email:       email,
		Password:    password,
		FullName:    fullName,
		AccountType: models.AccountType(accountType),
	})
	if err != nil {
		return a.report(err)
	}
	if p == nil {
		a.println("Registered. Verify your email, then log in.")
		return nil
	}
	a.welcome(p)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := GetRequiredText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	p, err := a.session.Login(ctx, email, password)
	if err != nil {
		return a.report(err)
	}
	a.welcome(p)
	return nil
}

func (a *App) welcome(p *models.Profile) {
	name := p.FullName
	if name == "" {
		name = p.Email
	}
	home := routes.ResolveHome(p)
	a.printf("Welcome, %s! You are at %s", name, home)
	if hint, ok := hints[home]; ok {
		a.printf(" (try %q)", hint)
	}
	a.println()
}

// Logout ends the session locally.
func (a *App) Logout(ctx context.Context, _ []string) error {
	a.loggingOut.Store(true)
	defer a.loggingOut.Store(false)

	if err := a.session.Logout(ctx); err != nil {
		return a.report(err)
	}
	a.println("Logged out.")
	return nil
}

// Whoami prints the cached profile and what the stored access token says
// about itself.
func (a *App) Whoami(_ context.Context, _ []string) error {
	p := a.session.Profile()
	if p == nil {
		a.println("Not logged in.")
		return nil
	}

	a.printf("ID:           %d\n", p.ID)
	a.printf("Email:        %s\n", p.Email)
	if p.FullName != "" {
		a.printf("Name:         %s\n", p.FullName)
	}
	a.printf("Account:      %s\n", p.AccountType)
	if p.IsBusiness() {
		a.printf("Stage:        %s\n", p.Stage())
	}
	if p.InviteCode != "" {
		a.printf("Invite code:  %s\n", p.InviteCode)
	}

	if a.tokens == nil {
		return nil
	}
	info, err := tokens.Inspect(a.tokens.Tokens().Access)
	if err != nil {
		a.println("Access token: unreadable")
		return nil
	}
	now := time.Now()
	switch {
	case info.ExpiresAt.IsZero():
		a.println("Access token: no expiry")
	case info.Expired(now):
		a.println("Access token: expired (it will be refreshed on the next request)")
	default:
		a.printf("Access token: expires in %s\n", info.ExpiresAt.Sub(now).Round(time.Second))
	}
	return nil
}

// Home prints the landing route for the current session.
func (a *App) Home(_ context.Context, _ []string) error {
	d := routes.Home(a.session.Loading(), a.session.Profile())
	if d.Wait {
		a.println("Still restoring the session...")
		return nil
	}
	msg := fmt.Sprintf("Home: %s", d.Redirect)
	if hint, ok := hints[d.Redirect]; ok {
		msg += fmt.Sprintf(" (try %q)", hint)
	}
	a.println(msg)
	return nil
}

func describeStage(s models.BusinessStatus) string {
	return strings.ToLower(strings.ReplaceAll(string(s), "_", " "))
}
