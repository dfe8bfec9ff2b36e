// Package response defines the uniform JSON envelope returned by every endpoint.
package response

import apperrors "freelanceflow/internal/errors"

// Pagination carries list metadata alongside paginated results.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// Envelope is the wrapper object around every API response body.
type Envelope struct {
	Status     string                 `json:"status"`
	Data       interface{}            `json:"data,omitempty"`
	Message    string                 `json:"message,omitempty"`
	Pagination *Pagination            `json:"pagination,omitempty"`
	Errors     []apperrors.FieldError `json:"errors,omitempty"`
}

// Success wraps data in a success envelope.
func Success(data interface{}, message string) Envelope {
	return Envelope{
		Status:  "success",
		Data:    data,
		Message: message,
	}
}

// Paginated wraps a list result with pagination metadata.
func Paginated(data interface{}, pagination Pagination, message string) Envelope {
	return Envelope{
		Status:     "success",
		Data:       data,
		Message:    message,
		Pagination: &pagination,
	}
}

// Error builds an error envelope, optionally carrying per-field details.
func Error(message string, fieldErrors []apperrors.FieldError) Envelope {
	return Envelope{
		Status:  "error",
		Message: message,
		Errors:  fieldErrors,
	}
}
