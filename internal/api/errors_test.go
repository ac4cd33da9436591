package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/service/auth"
	"github.com/myworld/myworld-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "authentication error",
			err:            auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrapped authentication error",
			err:            fmt.Errorf("failed to authenticate: %w", auth.ErrExpiredToken),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "bad credentials",
			err:            domain.ErrUnauthorized,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not found error",
			err:            store.ErrSessionNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrapped not found error",
			err:            fmt.Errorf("get appointment: %w", store.ErrAppointmentNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "conflict error",
			err:            store.ErrEmailExists,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "validation error",
			err:            domain.ErrValidation,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "owner required",
			err:            domain.ErrOwnerRequired,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "owner conflict",
			err:            domain.ErrOwnerConflict,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid reference",
			err:            store.ErrInvalidEntity,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown error",
			err:            errors.New("unknown error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := MapErrorToStatusCode(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{
			name:            "nil error",
			err:             nil,
			expectedMessage: "An unexpected error occurred",
		},
		{
			name:            "authentication error",
			err:             auth.ErrInvalidToken,
			expectedMessage: "Invalid token",
		},
		{
			name:            "refresh token error",
			err:             auth.ErrExpiredRefreshToken,
			expectedMessage: "Invalid refresh token",
		},
		{
			name:            "owner required",
			err:             domain.ErrOwnerRequired,
			expectedMessage: "Owner identifier required",
		},
		{
			name:            "owner conflict",
			err:             fmt.Errorf("create appointment: %w", domain.ErrOwnerConflict),
			expectedMessage: "Conflicting owner identifiers",
		},
		{
			name:            "session not found",
			err:             store.ErrSessionNotFound,
			expectedMessage: "Session not found",
		},
		{
			name:            "reminder not found",
			err:             store.ErrReminderNotFound,
			expectedMessage: "Reminder not found",
		},
		{
			name:            "email exists",
			err:             store.ErrEmailExists,
			expectedMessage: "Email already exists",
		},
		{
			name:            "field validation error",
			err:             domain.NewValidationError("end_time", "must be after the start time", nil),
			expectedMessage: "Invalid end_time: must be after the start time",
		},
		{
			name:            "invalid identifier",
			err:             domain.ErrInvalidID,
			expectedMessage: "Invalid identifier format",
		},
		{
			name:            "unknown error hides details",
			err:             errors.New("database error: connection refused"),
			expectedMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := GetSafeErrorMessage(tt.err)
			assert.Equal(t, tt.expectedMessage, message)

			if tt.err != nil && tt.expectedMessage == "An unexpected error occurred" {
				assert.NotContains(t, message, tt.err.Error(),
					"Error message should not contain the actual error")
			}
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	testError := errors.New(
		"Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag",
	)
	safeMessage := SanitizeValidationError(testError)

	assert.NotEqual(t, testError.Error(), safeMessage)
	assert.Contains(t, safeMessage, "Email")
	assert.Contains(t, safeMessage, "required field")

	// Errors without the validator format collapse to a generic message
	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
}
