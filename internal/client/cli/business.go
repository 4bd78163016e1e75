package cli

import (
	"context"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/client/routes"
	"golang.org/x/sync/errgroup"
)

// Status fetches the onboarding status and the fresh profile side by side.
func (a *App) Status(ctx context.Context, _ []string) error {
	var (
		info    *models.BusinessStatusInfo
		profile *models.Profile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		info, err = a.business.Status(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = a.session.RefreshUser(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return a.report(err)
	}

	a.printf("Stage:    %s\n", describeStage(profile.Stage()))
	if info.Payment != nil {
		a.printf("Payment:  %s\n", verified(info.Payment.IsVerified))
	} else {
		a.println("Payment:  not submitted")
	}
	if info.KYC != nil {
		a.printf("KYC:      %s\n", verified(info.KYC.IsApproved))
		if info.KYC.RejectionReason != "" {
			a.printf("Reason:   %s\n", info.KYC.RejectionReason)
		}
	} else {
		a.println("KYC:      not submitted")
	}
	a.printf("Home:     %s\n", routes.ResolveHome(profile))
	return nil
}

func verified(ok bool) string {
	if ok {
		return "verified"
	}
	return "awaiting review"
}

// stay runs the business gate for page and reports a redirect. It returns
// false when the user does not belong on page.
func (a *App) stay(ctx context.Context, page string) bool {
	d := a.gate.Check(ctx, page)
	if d.Allow {
		return true
	}
	a.printf("Your account is not at this step; you belong at %s", d.Redirect)
	if hint, ok := hints[d.Redirect]; ok {
		a.printf(" (try %q)", hint)
	}
	a.println()
	return false
}

// Pay submits the onboarding payment.
func (a *App) Pay(ctx context.Context, _ []string) error {
	if !a.stay(ctx, routes.BusinessPayment) {
		return nil
	}

	code, err := GetRequiredText(a.reader, "Transaction code", a.out)
	if err != nil {
		return err
	}
	provider, err := GetSimpleText(a.reader, "Provider (eSewa, Khalti, Fonepay, ...) [optional]", a.out)
	if err != nil {
		return err
	}
	path, err := GetSimpleText(a.reader, "Screenshot file [optional]", a.out)
	if err != nil {
		return err
	}
	screenshot, closer, err := openAttachment(path)
	if err != nil {
		return a.report(err)
	}
	defer closer.Close()

	p, err := a.business.SubmitPayment(ctx, models.PaymentSubmission{
		TransactionCode: code,
		Provider:        provider,
		Screenshot:      screenshot,
	})
	if err != nil {
		return a.report(err)
	}
	a.submitted("Payment", p)
	return nil
}

// KYC submits the business verification form.
func (a *App) KYC(ctx context.Context, _ []string) error {
	if !a.stay(ctx, routes.BusinessKYC) {
		return nil
	}

	var k models.KYCSubmission
	fields := []struct {
		prompt   string
		dst      *string
		optional bool
	}{
		{"First name", &k.FirstName, false},
		{"Last name", &k.LastName, false},
		{"Gender", &k.Gender, false},
		{"Date of birth (YYYY-MM-DD)", &k.DOB, false},
		{"Country", &k.Country, false},
		{"City", &k.City, false},
		{"Phone", &k.Phone, false},
		{"Business name", &k.BusinessName, false},
		{"Registration / PAN number", &k.RegistrationPAN, false},
		{"Industry", &k.Industry, false},
		{"Website [optional]", &k.Website, true},
		{"Identity document type", &k.IdentityType, false},
		{"Identity document number", &k.IdentityNumber, false},
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

	address, err := GetMultiline(a.reader, "Address", a.out)
	if err != nil {
		return err
	}
	k.Address = address

	path, err := GetSimpleText(a.reader, "Identity document file [optional]", a.out)
	if err != nil {
		return err
	}
	doc, closer, err := openAttachment(path)
	if err != nil {
		return a.report(err)
	}
	defer closer.Close()
	k.IdentityDoc = doc

	p, err := a.business.SubmitKYC(ctx, k)
	if err != nil {
		return a.report(err)
	}
	a.submitted("KYC", p)
	return nil
}

func (a *App) submitted(what string, p *models.Profile) {
	a.printf("%s submitted. Stage: %s, home: %s\n", what, describeStage(p.Stage()), routes.ResolveHome(p))
}
