package services

import (
	"context"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
)

// ReservationReaderSvc defines read operations for reservations
type ReservationReaderSvc interface {
	// GetReservation retrieves a reservation visible to the requesting identity.
	GetReservation(ctx context.Context, reservationID string, requestingIdentity string) (*domain.Reservation, error)

	// ListForUser retrieves the reservations held by a user.
	ListForUser(ctx context.Context, userHandle string) ([]domain.Reservation, error)

	// ListAll retrieves every reservation for the administrator, or the caller's own otherwise.
	ListAll(ctx context.Context, requestingIdentity string) ([]domain.Reservation, error)

	// SearchAvailable lists workspaces of a category in a city that are free on date.
	SearchAvailable(ctx context.Context, category domain.WorkspaceCategory, city string, date time.Time) ([]domain.Workspace, error)
}

// ReservationWriterSvc defines the reservation lifecycle transitions
type ReservationWriterSvc interface {
	// Create admits and persists a new reservation.
	Create(ctx context.Context, userHandle string, workspaceCode string, date time.Time) (*domain.Reservation, error)

	// Modify moves a reservation to a new date and/or workspace. Nil arguments keep the current value.
	Modify(ctx context.Context, reservationID string, newDate *time.Time, newWorkspaceCode *string, requestingIdentity string) (*domain.Reservation, error)

	// Delete removes a reservation.
	Delete(ctx context.Context, reservationID string, requestingIdentity string) error
}

// ReservationSvcFacade combines all reservation-related service interfaces
type ReservationSvcFacade interface {
	ReservationReaderSvc
	ReservationWriterSvc
}
