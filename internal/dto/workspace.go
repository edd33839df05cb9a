package dto

import (
	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
)

// CreateWorkspaceRequest defines data for adding a workspace to a building.
type CreateWorkspaceRequest struct {
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required,workspace_category"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	BuildingID  string `json:"buildingID" binding:"required"`
}

// SearchWorkspacesParams defines query parameters for a catalog search.
// When Date is set only workspaces free on that day are returned.
type SearchWorkspacesParams struct {
	Category string `form:"category" binding:"required,workspace_category"`
	City     string `form:"city" binding:"required"`
	Date     string `form:"date" binding:"omitempty,iso_date"`
}

// WorkspaceResponse defines data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID string                   `json:"workspaceID"`
	Code        string                   `json:"code"`
	Description string                   `json:"description"`
	Category    domain.WorkspaceCategory `json:"category"`
	Capacity    int                      `json:"capacity"`
	BuildingID  string                   `json:"buildingID"`
}

// ToWorkspaceResponse converts domain.Workspace to DTO.
func ToWorkspaceResponse(w *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		WorkspaceID: w.WorkspaceID,
		Code:        w.Code,
		Description: w.Description,
		Category:    w.Category,
		Capacity:    w.Capacity,
		BuildingID:  w.BuildingID,
	}
}

// ListWorkspacesResponse wraps a list of workspaces.
type ListWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

// ToListWorkspacesResponse converts a slice of domain.Workspace to DTO.
func ToListWorkspacesResponse(ws []domain.Workspace) ListWorkspacesResponse {
	list := make([]WorkspaceResponse, len(ws))
	for i := range ws {
		list[i] = ToWorkspaceResponse(&ws[i])
	}
	return ListWorkspacesResponse{Workspaces: list}
}
