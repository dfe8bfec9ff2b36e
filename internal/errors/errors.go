package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrClientNotFound is returned when a client record is absent or owned
	// by a different user. The two cases are indistinguishable on purpose.
	ErrClientNotFound = errors.New("client not found")
	// ErrInvalidEmail is returned when a client email fails the structural check.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrInvalidPage is returned when the requested page number is below 1.
	ErrInvalidPage = errors.New("page number must be greater than 0")
	// ErrInvalidPageSize is returned when the page size is outside [1, 100].
	ErrInvalidPageSize = errors.New("page size must be between 1 and 100")
)

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrClientNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CLIENT_NOT_FOUND")
	case errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_EMAIL")
	case errors.Is(err, ErrInvalidPage):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PAGE")
	case errors.Is(err, ErrInvalidPageSize):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PAGE_SIZE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
