package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateReservationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"workspace-day unique", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintReservationWorkspaceDate}, domain.ErrWorkspaceAlreadyBooked},
		{"user-day unique", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintReservationUserDate}, domain.ErrUserAlreadyBooked},
		{"primary key", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "reservations_pkey"}, apperrors.ErrDuplicate},
		{"missing user", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: constraintReservationUser}, domain.ErrUserNotFound},
		{"missing workspace", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: constraintReservationWorkspace}, domain.ErrWorkspaceNotFound},
		{"wrapped driver error", fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintReservationUserDate}), domain.ErrUserAlreadyBooked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateReservationError(tt.err, "failed to save reservation"), tt.want)
		})
	}
}

func TestTranslateReservationError_Unknown(t *testing.T) {
	cause := errors.New("connection reset")
	err := translateReservationError(cause, "failed to save reservation")

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.Code)
	assert.ErrorIs(t, err, cause)
}
