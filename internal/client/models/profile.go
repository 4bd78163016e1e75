// Package models defines client-side data models used by the UdharoGuru client.
package models

import "strings"

// AccountType distinguishes personal and business accounts.
type AccountType string

const (
	AccountPrivate  AccountType = "PRIVATE"
	AccountBusiness AccountType = "BUSINESS"
)

// ParseAccountType uppercases s and maps the legacy "PERSONAL" spelling to
// AccountPrivate. Unknown values are returned uppercased and unchanged.
func ParseAccountType(s string) AccountType {
	t := AccountType(strings.ToUpper(strings.TrimSpace(s)))
	if t == "PERSONAL" {
		return AccountPrivate
	}
	return t
}

// BusinessStatus is a stage of the business onboarding pipeline:
// PAYMENT_PENDING -> KYC_PENDING -> UNDER_REVIEW -> APPROVED | REJECTED.
type BusinessStatus string

const (
	StatusPaymentPending BusinessStatus = "PAYMENT_PENDING"
	StatusKYCPending     BusinessStatus = "KYC_PENDING"
	StatusUnderReview    BusinessStatus = "UNDER_REVIEW"
	StatusApproved       BusinessStatus = "APPROVED"
	StatusRejected       BusinessStatus = "REJECTED"

	// Emitted by the backend right after a submission; folded into the
	// canonical stages by Profile.Stage.
	StatusPaymentSubmitted BusinessStatus = "PAYMENT_SUBMITTED"
	StatusKYCSubmitted     BusinessStatus = "KYC_SUBMITTED"
)

// KYCStatus is the older, KYC-only view of the onboarding state.
type KYCStatus string

const (
	KYCNotSubmitted KYCStatus = "NOT_SUBMITTED"
	KYCPending      KYCStatus = "PENDING"
	KYCUnderReview  KYCStatus = "UNDER_REVIEW"
	KYCApproved     KYCStatus = "APPROVED"
	KYCRejected     KYCStatus = "REJECTED"
)

// Profile is the authenticated user as returned by auth/me/.
// It is never persisted; it is rebuilt from the stored tokens on start.
type Profile struct {
	ID             int64          `json:"id"`
	Email          string         `json:"email"`
	FullName       string         `json:"full_name"`
	AccountType    AccountType    `json:"account_type"`
	BusinessStatus BusinessStatus `json:"business_status,omitempty"`
	KYCStatus      KYCStatus      `json:"kyc_status,omitempty"`
	InviteCode     string         `json:"invite_code,omitempty"`
}

// IsBusiness reports whether p is a business account. Nil-safe.
func (p *Profile) IsBusiness() bool {
	return p != nil && p.AccountType == AccountBusiness
}

// IsPrivate reports whether p is a personal account. Nil-safe.
func (p *Profile) IsPrivate() bool {
	return p != nil && p.AccountType == AccountPrivate
}

// Stage collapses BusinessStatus and KYCStatus into one canonical stage.
//
// A known business_status wins. Without one, kyc_status decides:
// APPROVED and REJECTED map to themselves, PENDING and UNDER_REVIEW map to
// UNDER_REVIEW, and NOT_SUBMITTED maps to KYC_PENDING. A profile carrying
// neither status has not paid yet, so it and anything else yields
// PAYMENT_PENDING.
func (p *Profile) Stage() BusinessStatus {
	if p == nil {
		return StatusPaymentPending
	}

	switch p.BusinessStatus {
	case StatusApproved, StatusRejected, StatusUnderReview, StatusKYCPending, StatusPaymentPending:
		return p.BusinessStatus
	case StatusKYCSubmitted:
		return StatusUnderReview
	case StatusPaymentSubmitted:
		return StatusKYCPending
	case "":
	default:
		return StatusPaymentPending
	}

	switch p.KYCStatus {
	case KYCApproved:
		return StatusApproved
	case KYCRejected:
		return StatusRejected
	case KYCPending, KYCUnderReview:
		return StatusUnderReview
	case KYCNotSubmitted:
		return StatusKYCPending
	}
	return StatusPaymentPending
}
