package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired is returned when the refresh token is absent or the
// refresh endpoint rejects it. The stored session has been purged by the
// time callers observe it.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-2xx response from the booking API. Data preserves the
// raw error payload verbatim so field-level validation errors can be mapped
// back onto form inputs.
type APIError struct {
	Status  int
	Message string
	Data    json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s (status %d)", e.Message, e.Status)
}

// newAPIError builds an APIError from a response body, preferring the
// backend's "detail" then "message" fields for the message.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status:  status,
		Message: http.StatusText(status),
		Data:    json.RawMessage(body),
	}

	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			apiErr.Message = payload.Detail
		} else if payload.Message != "" {
			apiErr.Message = payload.Message
		}
	}

	return apiErr
}

// FieldErrors extracts a per-field error map from the payload when the shape
// matches (e.g. registration validation), or nil otherwise.
func (e *APIError) FieldErrors() map[string][]string {
	if len(e.Data) == 0 {
		return nil
	}

	var fields map[string][]string
	if err := json.Unmarshal(e.Data, &fields); err != nil {
		return nil
	}

	delete(fields, "detail")
	delete(fields, "message")
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
