package models

import "github.com/SscSPs/desk_reservation_app/internal/core/domain"

// Workspace is a row of the workspaces table. Category is stored as its
// stable string identifier.
type Workspace struct {
	WorkspaceID string `db:"workspace_id"`
	Code        string `db:"code"`
	Description string `db:"description"`
	Category    string `db:"category"`
	Capacity    int    `db:"capacity"`
	BuildingID  string `db:"building_id"`
	AuditFields
}

func (m Workspace) ToDomain() domain.Workspace {
	return domain.Workspace{
		WorkspaceID: m.WorkspaceID,
		Code:        m.Code,
		Description: m.Description,
		Category:    domain.WorkspaceCategory(m.Category),
		Capacity:    m.Capacity,
		BuildingID:  m.BuildingID,
		AuditFields: m.AuditFields.toDomain(),
	}
}

func WorkspaceFromDomain(d domain.Workspace) Workspace {
	return Workspace{
		WorkspaceID: d.WorkspaceID,
		Code:        d.Code,
		Description: d.Description,
		Category:    string(d.Category),
		Capacity:    d.Capacity,
		BuildingID:  d.BuildingID,
		AuditFields: auditFromDomain(d.AuditFields),
	}
}
