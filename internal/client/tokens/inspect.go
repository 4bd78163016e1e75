package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Info is what can be read from a JWT access token without its signing key.
type Info struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token expiry is before now. Tokens without an
// exp claim never expire here.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// Inspect decodes token claims WITHOUT verifying the signature. Use it for
// display only; the backend stays the authority on validity.
func Inspect(token string) (Info, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Info{}, fmt.Errorf("parse token: %w", err)
	}

	var info Info
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		info.Subject = sub
	} else if uid, ok := claims["user_id"]; ok {
		info.Subject = fmt.Sprint(uid)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
