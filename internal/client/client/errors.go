package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable wraps transport failures: no HTTP response was received.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized marks a terminal session failure: the request was
	// still rejected after a successful refresh.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNoAccessToken is returned by a refresh response without "access".
	ErrNoAccessToken = errors.New("refresh response carries no access token")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status int
	// Data is the decoded body when it is a JSON object, nil otherwise.
	Data map[string]any
	Body []byte
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{Status: status, Body: body}
	var data map[string]any
	if len(body) > 0 && json.Unmarshal(body, &data) == nil {
		e.Data = data
	}
	return e
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.Status, http.StatusText(e.Status))
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
