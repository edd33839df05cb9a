package models

import (
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
)

// Reservation is a row of the reservations table. ReservationDate is a DATE column.
type Reservation struct {
	ReservationID   string    `db:"reservation_id"`
	UserID          string    `db:"user_id"`
	WorkspaceID     string    `db:"workspace_id"`
	ReservationDate time.Time `db:"reservation_date"`
	AuditFields
}

func (m Reservation) ToDomain() domain.Reservation {
	return domain.Reservation{
		ReservationID: m.ReservationID,
		UserID:        m.UserID,
		WorkspaceID:   m.WorkspaceID,
		Date:          domain.NormalizeDate(m.ReservationDate),
		AuditFields:   m.AuditFields.toDomain(),
	}
}

func ReservationFromDomain(d domain.Reservation) Reservation {
	return Reservation{
		ReservationID:   d.ReservationID,
		UserID:          d.UserID,
		WorkspaceID:     d.WorkspaceID,
		ReservationDate: domain.NormalizeDate(d.Date),
		AuditFields:     auditFromDomain(d.AuditFields),
	}
}

// ToDomainSlice converts collected rows in order.
func ToDomainSlice[M interface{ ToDomain() D }, D any](rows []M) []D {
	out := make([]D, len(rows))
	for i, m := range rows {
		out[i] = m.ToDomain()
	}
	return out
}
