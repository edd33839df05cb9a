package models

import "github.com/SscSPs/desk_reservation_app/internal/core/domain"

// User is a row of the users table.
type User struct {
	UserID string `db:"user_id"`
	Handle string `db:"handle"`
	Name   string `db:"name"`
	Email  string `db:"email"`
	AuditFields
}

func (m User) ToDomain() domain.User {
	return domain.User{
		UserID:      m.UserID,
		Handle:      m.Handle,
		Name:        m.Name,
		Email:       m.Email,
		AuditFields: m.AuditFields.toDomain(),
	}
}

func UserFromDomain(d domain.User) User {
	return User{
		UserID:      d.UserID,
		Handle:      d.Handle,
		Name:        d.Name,
		Email:       d.Email,
		AuditFields: auditFromDomain(d.AuditFields),
	}
}
