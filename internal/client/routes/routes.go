// Package routes decides where a session belongs. Every function here is
// pure: it looks only at the profile it is given, so a guard always sees
// the latest profile rather than one captured when the table was built.
package routes

import "github.com/dmitrijs2005/udharoguru/internal/client/models"

const (
	Auth              = "/auth"
	Login             = "/auth/login"
	Signup            = "/auth/signup"
	PrivateDashboard  = "/private/dashboard"
	BusinessDashboard = "/business/dashboard"
	BusinessRejected  = "/business/rejected"
	BusinessPending   = "/business/pending"
	BusinessKYC       = "/business/kyc"
	BusinessPayment   = "/business/payment"
	BusinessLedger    = "/business/ledger"
	BusinessOCR       = "/business/ocr"

	// Customers and Transactions are the older single-ledger pages; any
	// signed-in account may use them.
	Customers    = "/customers"
	Transactions = "/transactions"
)

// StagePath is the page a business account at stage s lands on.
func StagePath(s models.BusinessStatus) string {
	switch s {
	case models.StatusApproved:
		return BusinessDashboard
	case models.StatusRejected:
		return BusinessRejected
	case models.StatusUnderReview:
		return BusinessPending
	case models.StatusKYCPending:
		return BusinessKYC
	default:
		return BusinessPayment
	}
}

// PageStage reports which stage a business page serves. The ledger and
// OCR pages belong to approved accounts, like the dashboard.
func PageStage(path string) (models.BusinessStatus, bool) {
	switch path {
	case BusinessDashboard, BusinessLedger, BusinessOCR:
		return models.StatusApproved, true
	case BusinessRejected:
		return models.StatusRejected, true
	case BusinessPending:
		return models.StatusUnderReview, true
	case BusinessKYC:
		return models.StatusKYCPending, true
	case BusinessPayment:
		return models.StatusPaymentPending, true
	}
	return "", false
}

// ResolveHome returns the landing route for p. It is total: every profile,
// including nil and unknown account types, maps to a defined path.
func ResolveHome(p *models.Profile) string {
	switch {
	case p == nil:
		return Auth
	case p.IsPrivate():
		return PrivateDashboard
	case p.IsBusiness():
		return StagePath(p.Stage())
	default:
		return Auth
	}
}
