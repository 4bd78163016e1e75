// Package services holds the application logic between the CLI and the
// HTTP client: the session (login, registration, profile cache), business
// onboarding with its stage gate, and direct chat.
//
// Every error returned to callers is an *Error with a single message
// suitable for display; see NormalizeError.
package services
