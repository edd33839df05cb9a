package domain

import "time"

// Reservation books one workspace for one user on one calendar day.
type Reservation struct {
	ReservationID string    `json:"reservationID"`
	UserID        string    `json:"userID"`
	WorkspaceID   string    `json:"workspaceID"`
	Date          time.Time `json:"date"` // UTC midnight, see NormalizeDate
	AuditFields
}
