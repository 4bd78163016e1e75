package services

import (
	"context"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/client/routes"
	"github.com/dmitrijs2005/udharoguru/internal/logging"
	"github.com/dmitrijs2005/udharoguru/internal/validator"
)

// BusinessAPI is the part of the backend used for business onboarding.
type BusinessAPI interface {
	BusinessStatus(ctx context.Context) (*models.BusinessStatusInfo, error)
	SubmitPayment(ctx context.Context, p models.PaymentSubmission) error
	SubmitKYC(ctx context.Context, k models.KYCSubmission) error
}

// BusinessService drives the onboarding pipeline. Every submission is
// followed by a profile refresh so route decisions see the new stage.
type BusinessService struct {
	api      BusinessAPI
	session  *SessionService
	validate *validator.Validator
	log      logging.Logger
}

func NewBusinessService(api BusinessAPI, session *SessionService, log logging.Logger) *BusinessService {
	if log == nil {
		log = logging.Nop()
	}
	return &BusinessService{
		api:      api,
		session:  session,
		validate: validator.New(),
		log:      log.With("component", "business"),
	}
}

func (b *BusinessService) Status(ctx context.Context) (*models.BusinessStatusInfo, error) {
	st, err := b.api.BusinessStatus(ctx)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load business status.")
	}
	return st, nil
}

func (b *BusinessService) SubmitPayment(ctx context.Context, p models.PaymentSubmission) (*models.Profile, error) {
	if err := b.validate.Validate(p); err != nil {
		return nil, NormalizeError(err, "Unable to submit payment.")
	}
	if err := b.api.SubmitPayment(ctx, p); err != nil {
		return nil, NormalizeError(err, "Unable to submit payment.")
	}
	b.log.Info(ctx, "payment submitted", "provider", p.Provider, "screenshot", p.Screenshot != nil)
	return b.session.RefreshUser(ctx)
}

func (b *BusinessService) SubmitKYC(ctx context.Context, k models.KYCSubmission) (*models.Profile, error) {
	if err := b.validate.Validate(k); err != nil {
		return nil, NormalizeError(err, "Unable to submit KYC.")
	}
	if err := b.api.SubmitKYC(ctx, k); err != nil {
		return nil, NormalizeError(err, "Unable to submit KYC.")
	}
	b.log.Info(ctx, "kyc submitted", "identity_type", k.IdentityType, "document", k.IdentityDoc != nil)
	return b.session.RefreshUser(ctx)
}

// BusinessGate keeps a business user on the page matching their stage.
type BusinessGate struct {
	session *SessionService
}

func NewBusinessGate(session *SessionService) *BusinessGate {
	return &BusinessGate{session: session}
}

// Check refreshes the profile and reports where a user viewing currentPath
// belongs. Non-business users are sent home without a refresh; a failed
// refresh sends the user to the home of the profile known beforehand.
func (g *BusinessGate) Check(ctx context.Context, currentPath string) routes.Decision {
	known := g.session.Profile()
	if !known.IsBusiness() {
		return routes.Decision{Redirect: routes.ResolveHome(known)}
	}

	fresh, err := g.session.RefreshUser(ctx)
	if err != nil {
		return routes.Decision{Redirect: routes.ResolveHome(known)}
	}

	stage := fresh.Stage()
	if serves, ok := routes.PageStage(currentPath); ok && serves == stage {
		return routes.Decision{Allow: true}
	}
	return routes.Decision{Redirect: routes.StagePath(stage)}
}
