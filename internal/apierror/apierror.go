// Package apierror holds the JSON envelopes for every 4xx/5xx response.
// Handlers never put storage errors or stack traces in them.
package apierror

import "fmt"

// APIError is the {"detail": ...} envelope.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

func Newf(format string, args ...any) *APIError {
	return &APIError{Detail: fmt.Sprintf(format, args...)}
}

// ValidationError lists the failing field and the validator tag it broke,
// e.g. {"Quantity": "min"}.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}
