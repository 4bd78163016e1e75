package services

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/dmitrijs2005/udharoguru/internal/client/client"
	"github.com/dmitrijs2005/udharoguru/internal/validator"
)

// Error is what services return to the UI: one human-readable message, the
// HTTP status (0 for local failures) and the decoded response body.
type Error struct {
	Message string
	Status  int
	Data    map[string]any
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Keys with their own extractor; every other key is a field error.
var knownKeys = map[string]struct{}{
	"detail":           {},
	"message":          {},
	"non_field_errors": {},
	"error":            {},
}

type extractor func(data map[string]any) string

// extractors are tried in order; the first non-empty result wins.
var extractors = []extractor{
	key("detail"),
	key("message"),
	key("non_field_errors"),
	key("error"),
	fieldError,
}

func key(name string) extractor {
	return func(data map[string]any) string {
		return firstString(data[name])
	}
}

// fieldError returns the first message attached to any other field,
// visiting keys in sorted order.
func fieldError(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		if _, ok := knownKeys[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if msg := firstString(data[k]); msg != "" {
			return msg
		}
	}
	return ""
}

// firstString reads a message out of a JSON value: a string as is, an
// array by its first element.
func firstString(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case []any:
		if len(x) > 0 {
			return firstString(x[0])
		}
	}
	return ""
}

func statusMessage(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusConflict:
		return "Conflict"
	}
	return ""
}

// NormalizeError turns err into an *Error carrying a single message, or
// returns nil for a nil err. fallback is used when nothing better is found.
func NormalizeError(err error, fallback string) error {
	if err == nil {
		return nil
	}

	var se *Error
	if errors.As(err, &se) {
		return se
	}

	out := &Error{Message: fallback, Err: err}

	var verr *validator.Error
	if errors.As(err, &verr) {
		out.Message = verr.Error()
		out.Data = make(map[string]any, len(verr.Fields))
		for k, v := range verr.Fields {
			out.Data[k] = []any{v}
		}
		return out
	}

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return out
	}
	out.Status = apiErr.Status
	out.Data = apiErr.Data

	for _, extract := range extractors {
		if msg := extract(apiErr.Data); msg != "" {
			out.Message = msg
			return out
		}
	}
	if msg := statusMessage(apiErr.Status); msg != "" {
		out.Message = msg
	}
	return out
}

// errorf builds a local (status 0) error.
func errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
