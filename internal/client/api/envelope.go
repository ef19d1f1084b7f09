package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is the server's structured error envelope: any endpoint may return
// it in place of its documented payload. It carries an HTTP-status-equivalent
// code, a human-readable message, and optional detail text.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error %d: %s: %s", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// UserMessage is the text shown to the user for an expected server error.
func (e *APIError) UserMessage() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// IsUnauthorized reports whether err is a 401 envelope.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// decodeError turns a response into an *APIError, or nil when the body is the
// documented payload. The envelope is identified structurally: a JSON object
// carrying both `message` and `status`. A failing HTTP status without an
// envelope body still becomes an APIError so callers see one error shape.
func decodeError(httpStatus int, body []byte) *APIError {
	var probe struct {
		Message *string `json:"message"`
		Status  *int    `json:"status"`
		Details string  `json:"details"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.Message != nil && probe.Status != nil {
		return &APIError{Status: *probe.Status, Message: *probe.Message, Details: probe.Details}
	}
	if httpStatus >= http.StatusBadRequest {
		return &APIError{Status: httpStatus, Message: http.StatusText(httpStatus)}
	}
	return nil
}
