package vapor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error returned by the Vapor Cloud API. The API
// reports errors as a JSON object with an "error" message and a "status"
// mirroring the HTTP status code.
type APIError struct {
	Status  int    `json:"status" yaml:"status"`
	Message string `json:"error"  yaml:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.Status)
}

// Common static errors that can be wrapped with context.
var (
	ErrNoMoreData          = errors.New("no more data")
	ErrNoMoreItems         = errors.New("no more items")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrUnexpectedPayload   = errors.New("unexpected response payload")
	ErrPaginationStalled   = errors.New("pagination made no progress")
	ErrInvalidSliceStep    = errors.New("slice step cannot be zero")
	ErrFetchFuncRequired   = errors.New("fetch function is required")
	ErrResourceKeyRequired = errors.New("resource key is required")
	ErrNegativeIndex       = errors.New("index cannot be negative")
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIKeyRequired      = errors.New("API key is required")
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
)

// ParseAPIError decodes an error response body. Bodies that do not match the
// documented error shape are preserved verbatim in the message so nothing is
// lost when the API misbehaves.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{}

	err := json.Unmarshal(body, apiErr)
	if err != nil || apiErr.Message == "" {
		message := string(body)
		if message == "" {
			message = http.StatusText(statusCode)
		}

		return &APIError{Status: statusCode, Message: message}
	}

	if apiErr.Status == 0 {
		apiErr.Status = statusCode
	}

	return apiErr
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is a permission error.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusForbidden
	}

	return false
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusTooManyRequests
	}

	return false
}

// Test error variables for test files to comply with err113.
var (
	ErrSomeError = errors.New("some error")
)
