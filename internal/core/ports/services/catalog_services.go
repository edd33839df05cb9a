package services

import (
	"context"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	"github.com/SscSPs/desk_reservation_app/internal/dto"
)

// BuildingSvc defines operations on buildings
type BuildingSvc interface {
	// CreateBuilding adds a building (administrator only).
	CreateBuilding(ctx context.Context, req dto.CreateBuildingRequest, requestingIdentity string) (*domain.Building, error)

	// GetBuilding retrieves a building by ID.
	GetBuilding(ctx context.Context, buildingID string) (*domain.Building, error)

	// ListBuildings retrieves every building.
	ListBuildings(ctx context.Context) ([]domain.Building, error)

	// GetOccupancy reports reserved versus declared capacity of a building on date.
	GetOccupancy(ctx context.Context, buildingID string, date time.Time) (*domain.BuildingOccupancy, error)
}

// WorkspaceSvc defines operations on the workspace catalog
type WorkspaceSvc interface {
	// AddWorkspace adds a workspace to a building (administrator only).
	AddWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, requestingIdentity string) (*domain.Workspace, error)

	// GetWorkspaceByCode retrieves a workspace by code.
	GetWorkspaceByCode(ctx context.Context, code string) (*domain.Workspace, error)

	// ListWorkspaces retrieves the whole catalog.
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)

	// SearchWorkspaces lists workspaces of a category in a city, regardless of bookings.
	SearchWorkspaces(ctx context.Context, category domain.WorkspaceCategory, city string) ([]domain.Workspace, error)

	// DeleteWorkspace removes a workspace by code (administrator only).
	DeleteWorkspace(ctx context.Context, code string, requestingIdentity string) error
}
