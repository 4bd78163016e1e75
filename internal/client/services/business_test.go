package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/client/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedIn(t *testing.T, api *fakeAPI) *SessionService {
	t.Helper()
	api.LoginRet = models.Tokens{Access: "A1", Refresh: "R1"}
	s, _ := newSession(t, api)
	_, err := s.Login(context.Background(), "shop@example.com", "pw")
	require.NoError(t, err)
	return s
}

func businessAt(status models.BusinessStatus) *models.Profile {
	return &models.Profile{ID: 5, AccountType: models.AccountBusiness, BusinessStatus: status}
}

func validKYC() models.KYCSubmission {
	return models.KYCSubmission{
		FirstName: "Hari", LastName: "Thapa", Gender: "M", DOB: "1990-04-01",
		Country: "Nepal", City: "Pokhara", Phone: "9800000000", Address: "Lakeside",
		BusinessName: "Hari Pasal", RegistrationPAN: "PAN-1", Industry: "Retail",
		IdentityType: "citizenship", IdentityNumber: "12-34",
	}
}

func TestSubmitPayment_RefreshesProfile(t *testing.T) {
	api := &fakeAPI{MeRet: businessAt(models.StatusPaymentPending)}
	s := loggedIn(t, api)
	b := NewBusinessService(api, s, nil)

	api.setMe(businessAt(models.StatusPaymentSubmitted), nil)
	p, err := b.SubmitPayment(context.Background(), models.PaymentSubmission{
		TransactionCode: "FP-1",
		Screenshot:      &models.Attachment{FileName: "r.png", Content: strings.NewReader("x")},
	})
	require.NoError(t, err)
	assert.Equal(t, "FP-1", api.LastPayment.TransactionCode)
	assert.Equal(t, routes.BusinessKYC, routes.ResolveHome(p))
	assert.Equal(t, routes.BusinessKYC, routes.ResolveHome(s.Profile()))
}

func TestSubmitPayment_Errors(t *testing.T) {
	api := &fakeAPI{MeRet: businessAt(models.StatusPaymentPending)}
	s := loggedIn(t, api)
	b := NewBusinessService(api, s, nil)

	_, err := b.SubmitPayment(context.Background(), models.PaymentSubmission{})
	assert.EqualError(t, err, "transaction_code is required")

	api.PaymentErr = apiErr(http.StatusBadRequest, map[string]any{"transaction_code": []any{"Already used."}})
	_, err = b.SubmitPayment(context.Background(), models.PaymentSubmission{TransactionCode: "FP-1"})
	assert.EqualError(t, err, "Already used.")
	assert.NotNil(t, s.Profile(), "a rejected submission keeps the session")
}

func TestSubmitKYC(t *testing.T) {
	api := &fakeAPI{MeRet: businessAt(models.StatusKYCPending)}
	s := loggedIn(t, api)
	b := NewBusinessService(api, s, nil)

	bad := validKYC()
	bad.DOB = "01/04/1990"
	_, err := b.SubmitKYC(context.Background(), bad)
	assert.EqualError(t, err, "dob must be a date in 2006-01-02 format")

	api.setMe(businessAt(models.StatusKYCSubmitted), nil)
	p, err := b.SubmitKYC(context.Background(), validKYC())
	require.NoError(t, err)
	assert.Equal(t, "Hari Pasal", api.LastKYC.BusinessName)
	assert.Equal(t, routes.BusinessPending, routes.ResolveHome(p))
}

func TestStatus(t *testing.T) {
	api := &fakeAPI{StatusRet: &models.BusinessStatusInfo{BusinessStatus: models.StatusUnderReview}}
	b := NewBusinessService(api, nil, nil)

	st, err := b.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, st.BusinessStatus)

	api.StatusErr = apiErr(http.StatusForbidden, map[string]any{"detail": "Business account required."})
	_, err = b.Status(context.Background())
	assert.EqualError(t, err, "Business account required.")
}

func TestBusinessGate(t *testing.T) {
	t.Run("private user sent home without refresh", func(t *testing.T) {
		api := &fakeAPI{MeRet: privateProfile()}
		s := loggedIn(t, api)
		before, _ := api.calls()

		d := NewBusinessGate(s).Check(context.Background(), routes.BusinessKYC)
		assert.Equal(t, routes.Decision{Redirect: routes.PrivateDashboard}, d)
		after, _ := api.calls()
		assert.Equal(t, before, after)
	})

	t.Run("logged out user sent to auth", func(t *testing.T) {
		s, _ := newSession(t, &fakeAPI{})
		d := NewBusinessGate(s).Check(context.Background(), routes.BusinessKYC)
		assert.Equal(t, routes.Decision{Redirect: routes.Auth}, d)
	})

	t.Run("stage moved on", func(t *testing.T) {
		api := &fakeAPI{MeRet: businessAt(models.StatusKYCPending)}
		s := loggedIn(t, api)
		api.setMe(businessAt(models.StatusApproved), nil)

		d := NewBusinessGate(s).Check(context.Background(), routes.BusinessKYC)
		assert.Equal(t, routes.Decision{Redirect: routes.BusinessDashboard}, d)
	})

	t.Run("already on the right page", func(t *testing.T) {
		api := &fakeAPI{MeRet: businessAt(models.StatusUnderReview)}
		s := loggedIn(t, api)

		d := NewBusinessGate(s).Check(context.Background(), routes.BusinessPending)
		assert.Equal(t, routes.Decision{Allow: true}, d)
	})

	t.Run("approved account stays on ledger and ocr pages", func(t *testing.T) {
		api := &fakeAPI{MeRet: businessAt(models.StatusApproved)}
		s := loggedIn(t, api)

		gate := NewBusinessGate(s)
		assert.Equal(t, routes.Decision{Allow: true}, gate.Check(context.Background(), routes.BusinessLedger))
		assert.Equal(t, routes.Decision{Allow: true}, gate.Check(context.Background(), routes.BusinessOCR))
	})

	t.Run("ledger page sends an unapproved account to its stage", func(t *testing.T) {
		api := &fakeAPI{MeRet: businessAt(models.StatusUnderReview)}
		s := loggedIn(t, api)

		d := NewBusinessGate(s).Check(context.Background(), routes.BusinessLedger)
		assert.Equal(t, routes.Decision{Redirect: routes.BusinessPending}, d)
	})

	t.Run("refresh fails", func(t *testing.T) {
		api := &fakeAPI{MeRet: businessAt(models.StatusRejected)}
		s := loggedIn(t, api)
		api.setMe(nil, apiErr(http.StatusInternalServerError, nil))

		d := NewBusinessGate(s).Check(context.Background(), routes.BusinessKYC)
		assert.Equal(t, routes.Decision{Redirect: routes.BusinessRejected}, d)
		assert.Nil(t, s.Profile())
	})
}
