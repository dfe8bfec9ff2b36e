package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"client not found", ErrClientNotFound, http.StatusNotFound, "CLIENT_NOT_FOUND"},
		{"invalid email", ErrInvalidEmail, http.StatusBadRequest, "INVALID_EMAIL"},
		{"invalid page", ErrInvalidPage, http.StatusBadRequest, "INVALID_PAGE"},
		{"invalid page size", ErrInvalidPageSize, http.StatusBadRequest, "INVALID_PAGE_SIZE"},
		{"wrapped sentinel still maps", fmt.Errorf("delete client: %w", ErrClientNotFound), http.StatusNotFound, "CLIENT_NOT_FOUND"},
		{"unknown error maps to 500", errors.New("connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_HidesInternalDetails(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("pq: password authentication failed"))
	assert.Equal(t, "internal server error", httpErr.Message)
	assert.NotContains(t, httpErr.Message, "pq:")
}
