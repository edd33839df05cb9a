package models

import "github.com/SscSPs/desk_reservation_app/internal/core/domain"

// Building is a row of the buildings table.
type Building struct {
	BuildingID string `db:"building_id"`
	Name       string `db:"name"`
	Address    string `db:"address"`
	City       string `db:"city"`
	AuditFields
}

func (m Building) ToDomain() domain.Building {
	return domain.Building{
		BuildingID:  m.BuildingID,
		Name:        m.Name,
		Address:     m.Address,
		City:        m.City,
		AuditFields: m.AuditFields.toDomain(),
	}
}

func BuildingFromDomain(d domain.Building) Building {
	return Building{
		BuildingID:  d.BuildingID,
		Name:        d.Name,
		Address:     d.Address,
		City:        d.City,
		AuditFields: auditFromDomain(d.AuditFields),
	}
}
