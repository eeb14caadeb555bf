package httpx

import (
	"fmt"
	"net/http"
)

// APIError is the JSON body of every failed request.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBadRequestError(message string, cause error) *APIError {
	return newError(http.StatusBadRequest, "BAD_REQUEST", message, cause)
}

// NewValidationError is a 400 for a request whose fields break the rules.
func NewValidationError(cause error) *APIError {
	return newError(http.StatusBadRequest, "VALIDATION_ERROR", cause.Error(), nil)
}

// NewConfigurationError is a 400 for geometry a matched rule cannot use.
func NewConfigurationError(cause error) *APIError {
	return newError(http.StatusBadRequest, "INVALID_CONFIGURATION", cause.Error(), nil)
}

func NewUnauthorizedError(message string) *APIError {
	return newError(http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func NewNotFoundError(message string) *APIError {
	return newError(http.StatusNotFound, "NOT_FOUND", message, nil)
}

func NewMethodNotAllowedError() *APIError {
	return newError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
}

func NewConflictError(message string) *APIError {
	return newError(http.StatusConflict, "CONFLICT", message, nil)
}

func NewTooManyRequestsError() *APIError {
	return newError(http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, try again later", nil)
}

func NewBadGatewayError(message string, cause error) *APIError {
	return newError(http.StatusBadGateway, "UPSTREAM_ERROR", message, cause)
}

func NewInternalError(message string, cause error) *APIError {
	return newError(http.StatusInternalServerError, "INTERNAL_ERROR", message, cause)
}

func newError(status int, code, message string, cause error) *APIError {
	err := &APIError{Status: status, Code: code, Message: message}
	if cause != nil {
		err.Details = cause.Error()
	}
	return err
}

// WriteError sends err as JSON regardless of the Accept header.
func WriteError(w http.ResponseWriter, err *APIError) {
	writeJSON(w, err.Status, err)
}
