package repositories

import (
	"context"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
)

// BuildingReader defines read operations for building data
type BuildingReader interface {
	// FindBuildingByID retrieves a building by its ID.
	FindBuildingByID(ctx context.Context, buildingID string) (*domain.Building, error)

	// ListBuildings retrieves all buildings ordered by city and name.
	ListBuildings(ctx context.Context) ([]domain.Building, error)

	// CountBuildings returns the number of buildings in the catalog.
	CountBuildings(ctx context.Context) (int, error)
}

// BuildingWriter defines write operations for building data
type BuildingWriter interface {
	// SaveBuilding persists a new building.
	SaveBuilding(ctx context.Context, building domain.Building) error
}

// BuildingRepositoryFacade combines all building-related repository interfaces
type BuildingRepositoryFacade interface {
	BuildingReader
	BuildingWriter
}
