package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     int
	}{
		{"not found", apperrors.NewNotFoundError("workspace MI001"), apperrors.ErrNotFound, http.StatusNotFound},
		{"conflict", apperrors.NewConflictError("user has reservations"), apperrors.ErrConflict, http.StatusConflict},
		{"duplicate", apperrors.NewDuplicateError("handle taken"), apperrors.ErrDuplicate, http.StatusConflict},
		{"validation", apperrors.NewValidationFailedError("bad category"), apperrors.ErrValidation, http.StatusBadRequest},
		{"unauthorized", apperrors.NewUnauthorizedError("bad password"), apperrors.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", apperrors.NewForbiddenError("not the owner"), apperrors.ErrForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service layer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)

			var appErr *apperrors.AppError
			assert.True(t, errors.As(wrapped, &appErr))
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestAppError_MessageIncludesCause(t *testing.T) {
	err := apperrors.NewAppError(http.StatusInternalServerError, "failed to query reservations", errors.New("connection reset"))
	assert.Equal(t, "failed to query reservations: connection reset", err.Error())

	bare := apperrors.NewAppError(http.StatusInternalServerError, "no cause", nil)
	assert.Equal(t, "no cause", bare.Error())
}
