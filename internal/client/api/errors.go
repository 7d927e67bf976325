package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is the single failure shape surfaced by the client. Every failure
// path, whether a network failure or a non-2xx response, is normalized into
// it before reaching a caller.
//
// StatusCode 0 means no usable response was received (transport failure or an
// unparseable body); any other value is the HTTP status returned by the
// backend. Payload carries the server's response body when it was valid JSON.
type APIError struct {
	Message    string
	StatusCode int
	Payload    json.RawMessage
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

// IsTransport reports whether the failure happened before a response existed.
func (e *APIError) IsTransport() bool {
	return e.StatusCode == 0
}

// IsAuthRejected reports whether the backend rejected the credential.
func (e *APIError) IsAuthRejected() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// AsAPIError unwraps err into an *APIError, if it is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func transportError(format string, args ...any) *APIError {
	return &APIError{StatusCode: 0, Message: fmt.Sprintf(format, args...)}
}
