package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_reservation_app/internal/core/ports/repositories"
	"github.com/SscSPs/desk_reservation_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBuildingRepository struct {
	BaseRepository
}

func newPgxBuildingRepository(pool *pgxpool.Pool) portsrepo.BuildingRepositoryFacade {
	return &PgxBuildingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BuildingRepositoryFacade = (*PgxBuildingRepository)(nil)

const buildingSelectQuery = `
SELECT building_id, name, address, city, created_at, created_by, last_updated_at, last_updated_by
FROM buildings
`

func (r *PgxBuildingRepository) FindBuildingByID(ctx context.Context, buildingID string) (*domain.Building, error) {
	row, err := queryOne[models.Building](ctx, r.Pool, "building "+buildingID, buildingSelectQuery+"WHERE building_id = $1", buildingID)
	if err != nil {
		return nil, err
	}
	building := row.ToDomain()
	return &building, nil
}

func (r *PgxBuildingRepository) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	rows, err := queryRows[models.Building](ctx, r.Pool, "buildings", buildingSelectQuery+"ORDER BY city, name")
	if err != nil {
		return nil, err
	}
	return models.ToDomainSlice[models.Building, domain.Building](rows), nil
}

func (r *PgxBuildingRepository) CountBuildings(ctx context.Context) (int, error) {
	return r.count(ctx, "buildings", `SELECT COUNT(*) FROM buildings`)
}

func (r *PgxBuildingRepository) SaveBuilding(ctx context.Context, building domain.Building) error {
	m := models.BuildingFromDomain(building)
	query := `
		INSERT INTO buildings (building_id, name, address, city, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BuildingID, m.Name, m.Address, m.City,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == pgUniqueViolation {
			return apperrors.NewDuplicateError("building " + building.BuildingID + " already exists")
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save building", err)
	}
	return nil
}
