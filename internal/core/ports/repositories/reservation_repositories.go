package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
)

// ReservationReader defines the ledger queries used by admission and listing.
// An empty excludingReservationID disables the exclusion.
type ReservationReader interface {
	// ExistsReservationForWorkspace reports whether the workspace is booked on date.
	ExistsReservationForWorkspace(ctx context.Context, workspaceID string, date time.Time, excludingReservationID string) (bool, error)

	// ExistsReservationForUser reports whether the user holds a reservation on date.
	ExistsReservationForUser(ctx context.Context, userID string, date time.Time, excludingReservationID string) (bool, error)

	// FindReservationsForBuildingOnDate retrieves all reservations of the building's workspaces on date.
	FindReservationsForBuildingOnDate(ctx context.Context, buildingID string, date time.Time) ([]domain.Reservation, error)

	// FindReservationByID retrieves a reservation by its ID.
	FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error)

	// FindReservationsByUserID retrieves a user's reservations ordered by date.
	FindReservationsByUserID(ctx context.Context, userID string) ([]domain.Reservation, error)

	// FindAllReservations retrieves every reservation ordered by date.
	FindAllReservations(ctx context.Context) ([]domain.Reservation, error)

	// CountReservationsByUser counts every reservation the user holds.
	CountReservationsByUser(ctx context.Context, userID string) (int, error)

	// CountReservationsByWorkspace counts every reservation of the workspace.
	CountReservationsByWorkspace(ctx context.Context, workspaceID string) (int, error)
}

// ReservationWriter defines ledger mutations. Implementations enforce
// uniqueness of (workspace, date) and (user, date) and report violations as
// domain.ErrWorkspaceAlreadyBooked / domain.ErrUserAlreadyBooked.
type ReservationWriter interface {
	// SaveReservation persists a new reservation.
	SaveReservation(ctx context.Context, reservation domain.Reservation) error

	// UpdateReservation rewrites the date/workspace of an existing reservation.
	UpdateReservation(ctx context.Context, reservation domain.Reservation) error

	// DeleteReservation removes a reservation by ID.
	DeleteReservation(ctx context.Context, reservationID string) error
}

// ReservationRepositoryFacade combines all reservation-related repository interfaces
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
}
