package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", NewValidationError("rating", "Rating must be between 1 and 5."), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"wrapped validation", fmt.Errorf("create review: %w", NewValidationError("comment", "x")), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not authenticated", ErrNotAuthenticated, http.StatusUnauthorized, "NOT_AUTHENTICATED"},
		{"not authorized", ErrNotAuthorized, http.StatusForbidden, "NOT_AUTHORIZED"},
		{"not found wrapped", fmt.Errorf("get stall: %w", ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", ErrConflict, http.StatusConflict, "CONFLICT"},
		{"center in use", ErrCenterInUse, http.StatusConflict, "CENTER_IN_USE"},
		{"credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"unknown", fmt.Errorf("Error 1146: Table 'hawker.stalls' doesn't exist"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestMapErrorToHTTP_UniformPhrasing(t *testing.T) {
	assert.Equal(t, MapErrorToHTTP(ErrNotFound).Message, MapErrorToHTTP(ErrNotAuthorized).Message)
}

func TestMapErrorToHTTP_DoesNotLeakInternals(t *testing.T) {
	got := MapErrorToHTTP(fmt.Errorf("SELECT * FROM users WHERE email = 'x': connection refused"))
	assert.Equal(t, MsgGenericFailure, got.Message)
	assert.NotContains(t, got.Error(), "SELECT")
	assert.Equal(t, "INTERNAL_ERROR", got.Code)
}
