package repositories

import (
	"context"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
)

// WorkspaceReader defines the catalog lookups the admission engine depends on.
type WorkspaceReader interface {
	// FindWorkspaceByID retrieves a workspace by its ID.
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)

	// FindWorkspaceByCode retrieves a workspace by its unique code.
	FindWorkspaceByCode(ctx context.Context, code string) (*domain.Workspace, error)

	// ListWorkspacesByBuilding retrieves every workspace of a building.
	ListWorkspacesByBuilding(ctx context.Context, buildingID string) ([]domain.Workspace, error)

	// ListWorkspacesByCategoryAndCity retrieves workspaces of a category in buildings of a city.
	ListWorkspacesByCategoryAndCity(ctx context.Context, category domain.WorkspaceCategory, city string) ([]domain.Workspace, error)

	// ListWorkspaces retrieves the whole catalog ordered by code.
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)
}

// WorkspaceWriter defines write operations for the workspace catalog
type WorkspaceWriter interface {
	// SaveWorkspace persists a new workspace. Duplicate codes return apperrors.ErrDuplicate.
	SaveWorkspace(ctx context.Context, workspace domain.Workspace) error

	// DeleteWorkspace removes a workspace. Workspaces still referenced by reservations return apperrors.ErrConflict.
	DeleteWorkspace(ctx context.Context, workspaceID string) error
}

// WorkspaceRepositoryFacade combines all workspace-related repository interfaces
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
}
