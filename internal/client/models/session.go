package models

// Tokens is the credential pair issued by auth/login/ and auth/register/.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Complete reports whether both credentials are present.
func (t Tokens) Complete() bool {
	return t.Access != "" && t.Refresh != ""
}

// Credentials is the auth/login/ request body.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the auth/register/ request body.
type RegisterRequest struct {
	Email       string      `json:"email" validate:"required,email"`
	Password    string      `json:"password" validate:"required,min=8"`
	FullName    string      `json:"full_name" validate:"required,max=255"`
	AccountType AccountType `json:"account_type" validate:"required,oneof=PRIVATE BUSINESS"`
}

// RegisterResponse is the auth/register/ response. Access and Refresh are
// empty when the backend requires verification before activation.
type RegisterResponse struct {
	Message string   `json:"message"`
	Access  string   `json:"access"`
	Refresh string   `json:"refresh"`
	User    *Profile `json:"user"`
}

// Tokens returns the credential pair carried by the response.
func (r RegisterResponse) Tokens() Tokens {
	return Tokens{Access: r.Access, Refresh: r.Refresh}
}
