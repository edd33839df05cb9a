package domain

import (
	"errors"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
)

// RejectionReason explains why a candidate reservation was refused.
type RejectionReason string

const (
	ReasonUserAlreadyBooked      RejectionReason = "USER_ALREADY_BOOKED"
	ReasonWorkspaceAlreadyBooked RejectionReason = "WORKSPACE_ALREADY_BOOKED"
	ReasonBuildingAtCapacity     RejectionReason = "BUILDING_AT_CAPACITY"
	ReasonWorkspaceNotFound      RejectionReason = "WORKSPACE_NOT_FOUND"
	ReasonUserNotFound           RejectionReason = "USER_NOT_FOUND"
)

// Candidate is a reservation that has not been admitted yet.
type Candidate struct {
	UserID      string
	WorkspaceID string
	Date        time.Time
}

// Verdict is the outcome of an admission decision.
type Verdict struct {
	Approved bool
	Reason   RejectionReason // empty when Approved
}

// Approve returns an approving verdict.
func Approve() Verdict {
	return Verdict{Approved: true}
}

// Reject returns a rejecting verdict with the given reason.
func Reject(reason RejectionReason) Verdict {
	return Verdict{Reason: reason}
}

// Err returns nil for an approved verdict and a *RejectionError otherwise.
func (v Verdict) Err() error {
	if v.Approved {
		return nil
	}
	return &RejectionError{Reason: v.Reason}
}

// RejectionError reports an admission rejection. It unwraps to
// apperrors.ErrNotFound for missing users/workspaces and to
// apperrors.ErrConflict for invariant violations.
type RejectionError struct {
	Reason RejectionReason
}

var (
	ErrUserAlreadyBooked      = &RejectionError{Reason: ReasonUserAlreadyBooked}
	ErrWorkspaceAlreadyBooked = &RejectionError{Reason: ReasonWorkspaceAlreadyBooked}
	ErrBuildingAtCapacity     = &RejectionError{Reason: ReasonBuildingAtCapacity}
	ErrWorkspaceNotFound      = &RejectionError{Reason: ReasonWorkspaceNotFound}
	ErrUserNotFound           = &RejectionError{Reason: ReasonUserNotFound}
)

func (e *RejectionError) Error() string {
	switch e.Reason {
	case ReasonUserAlreadyBooked:
		return "user already has a reservation for this date"
	case ReasonWorkspaceAlreadyBooked:
		return "workspace is already reserved for this date"
	case ReasonBuildingAtCapacity:
		return "building has reached its capacity for this date"
	case ReasonWorkspaceNotFound:
		return "workspace not found"
	case ReasonUserNotFound:
		return "user not found"
	}
	return "reservation rejected: " + string(e.Reason)
}

// Unwrap maps the reason onto the application error taxonomy.
func (e *RejectionError) Unwrap() error {
	switch e.Reason {
	case ReasonWorkspaceNotFound, ReasonUserNotFound:
		return apperrors.ErrNotFound
	}
	return apperrors.ErrConflict
}

// Is matches any RejectionError carrying the same reason.
func (e *RejectionError) Is(target error) bool {
	var other *RejectionError
	if errors.As(target, &other) {
		return other.Reason == e.Reason
	}
	return false
}

// RejectionReasonOf extracts the rejection reason from err, if any.
func RejectionReasonOf(err error) (RejectionReason, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason, true
	}
	return "", false
}
