package services

import (
	"context"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
)

// AdmissionSvc is the pure decision side of reservation handling. It never
// writes; the returned error is reserved for infrastructure failures.
type AdmissionSvc interface {
	// Evaluate applies the full admission rule set to a candidate reservation.
	// A non-empty excludingReservationID ignores that reservation's own record.
	Evaluate(ctx context.Context, candidate domain.Candidate, excludingReservationID string) (domain.Verdict, error)

	// EvaluateWorkspaceAvailability checks only the one-booking-per-workspace-per-day rule.
	EvaluateWorkspaceAvailability(ctx context.Context, workspaceID string, date time.Time, excludingReservationID string) (domain.Verdict, error)
}
