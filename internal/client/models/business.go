package models

import (
	"io"
	"time"
)

// BusinessStatusInfo is the business/status/ response.
type BusinessStatusInfo struct {
	BusinessStatus BusinessStatus `json:"business_status"`
	KYCStatus      KYCStatus      `json:"kyc_status"`
	Payment        *PaymentState  `json:"payment"`
	KYC            *KYCState      `json:"kyc"`
}

type PaymentState struct {
	IsVerified bool `json:"is_verified"`
}

type KYCState struct {
	IsApproved      bool       `json:"is_approved"`
	RejectionReason string     `json:"rejection_reason"`
	ReviewedAt      *time.Time `json:"reviewed_at"`
	ReviewedBy      *int64     `json:"reviewed_by"`
}

// Attachment is an optional file sent along with a multipart submission.
type Attachment struct {
	FileName string
	Content  io.Reader
}

// PaymentSubmission is the business/payment/submit/ form.
type PaymentSubmission struct {
	TransactionCode string      `json:"transaction_code" validate:"required,max=100"`
	Provider        string      `json:"provider,omitempty" validate:"omitempty,max=100"`
	Screenshot      *Attachment `json:"-"`
}

// Fields returns the non-file form fields.
func (p PaymentSubmission) Fields() map[string]string {
	f := map[string]string{"transaction_code": p.TransactionCode}
	if p.Provider != "" {
		f["provider"] = p.Provider
	}
	return f
}

// KYCSubmission is the business/kyc/submit/ form.
type KYCSubmission struct {
	FirstName       string      `json:"first_name" validate:"required,max=255"`
	LastName        string      `json:"last_name" validate:"required,max=255"`
	Gender          string      `json:"gender" validate:"required,max=50"`
	DOB             string      `json:"dob" validate:"required,datetime=2006-01-02"`
	Country         string      `json:"country" validate:"required,max=100"`
	City            string      `json:"city" validate:"required,max=100"`
	Phone           string      `json:"phone" validate:"required,max=50"`
	Address         string      `json:"address" validate:"required"`
	BusinessName    string      `json:"business_name" validate:"required,max=255"`
	RegistrationPAN string      `json:"registration_pan" validate:"required,max=255"`
	Industry        string      `json:"industry" validate:"required,max=255"`
	Website         string      `json:"website,omitempty" validate:"omitempty,url"`
	IdentityType    string      `json:"identity_type" validate:"required,max=100"`
	IdentityNumber  string      `json:"identity_number" validate:"required,max=255"`
	IdentityDoc     *Attachment `json:"-"`
}

// Fields returns the non-file form fields.
func (k KYCSubmission) Fields() map[string]string {
	f := map[string]string{
		"first_name":       k.FirstName,
		"last_name":        k.LastName,
		"gender":           k.Gender,
		"dob":              k.DOB,
		"country":          k.Country,
		"city":             k.City,
		"phone":            k.Phone,
		"address":          k.Address,
		"business_name":    k.BusinessName,
		"registration_pan": k.RegistrationPAN,
		"industry":         k.Industry,
		"identity_type":    k.IdentityType,
		"identity_number":  k.IdentityNumber,
	}
	if k.Website != "" {
		f["website"] = k.Website
	}
	return f
}
