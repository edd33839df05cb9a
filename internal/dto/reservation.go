package dto

import (
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
)

// CreateReservationRequest defines data for booking a workspace.
// Handle defaults to the caller; only the administrator may book for someone else.
type CreateReservationRequest struct {
	Handle        string `json:"handle"`
	WorkspaceCode string `json:"workspaceCode" binding:"required"`
	Date          string `json:"date" binding:"required,iso_date"`
}

// ModifyReservationRequest moves a reservation. Omitted fields keep their value.
type ModifyReservationRequest struct {
	Date          *string `json:"date" binding:"omitempty,iso_date"`
	WorkspaceCode *string `json:"workspaceCode"`
}

// ReservationResponse defines data returned for a reservation.
type ReservationResponse struct {
	ReservationID string    `json:"reservationID"`
	UserID        string    `json:"userID"`
	WorkspaceID   string    `json:"workspaceID"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToReservationResponse converts domain.Reservation to DTO.
func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID: r.ReservationID,
		UserID:        r.UserID,
		WorkspaceID:   r.WorkspaceID,
		Date:          domain.FormatDate(r.Date),
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// ListReservationsResponse wraps a list of reservations.
type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// ToListReservationsResponse converts a slice of domain.Reservation to DTO.
func ToListReservationsResponse(rs []domain.Reservation) ListReservationsResponse {
	list := make([]ReservationResponse, len(rs))
	for i := range rs {
		list[i] = ToReservationResponse(&rs[i])
	}
	return ListReservationsResponse{Reservations: list}
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
