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

type PgxWorkspaceRepository struct {
	BaseRepository
}

func newPgxWorkspaceRepository(pool *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

const workspaceSelectQuery = `
SELECT
	w.workspace_id, w.code, w.description, w.category, w.capacity, w.building_id,
	w.created_at, w.created_by, w.last_updated_at, w.last_updated_by
FROM workspaces w
`

func (r *PgxWorkspaceRepository) getWorkspaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workspace, error) {
	rows, err := queryRows[models.Workspace](ctx, r.Pool, "workspaces", workspaceSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, err
	}
	return models.ToDomainSlice[models.Workspace, domain.Workspace](rows), nil
}

func (r *PgxWorkspaceRepository) getWorkspace(ctx context.Context, what, filterQuery string, arg string) (*domain.Workspace, error) {
	row, err := queryOne[models.Workspace](ctx, r.Pool, what, workspaceSelectQuery+filterQuery, arg)
	if err != nil {
		return nil, err
	}
	workspace := row.ToDomain()
	return &workspace, nil
}

func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	return r.getWorkspace(ctx, "workspace "+workspaceID, "WHERE w.workspace_id = $1", workspaceID)
}

func (r *PgxWorkspaceRepository) FindWorkspaceByCode(ctx context.Context, code string) (*domain.Workspace, error) {
	return r.getWorkspace(ctx, "workspace "+code, "WHERE w.code = $1", code)
}

func (r *PgxWorkspaceRepository) ListWorkspacesByBuilding(ctx context.Context, buildingID string) ([]domain.Workspace, error) {
	return r.getWorkspaces(ctx, "WHERE w.building_id = $1 ORDER BY w.code", buildingID)
}

func (r *PgxWorkspaceRepository) ListWorkspacesByCategoryAndCity(ctx context.Context, category domain.WorkspaceCategory, city string) ([]domain.Workspace, error) {
	return r.getWorkspaces(ctx, `
		JOIN buildings b ON b.building_id = w.building_id
		WHERE w.category = $1 AND LOWER(b.city) = LOWER($2)
		ORDER BY w.code`, string(category), city)
}

func (r *PgxWorkspaceRepository) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	return r.getWorkspaces(ctx, "ORDER BY w.code")
}

func (r *PgxWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	m := models.WorkspaceFromDomain(workspace)
	query := `
		INSERT INTO workspaces (
			workspace_id, code, description, category, capacity, building_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.Pool.Exec(ctx, query,
		m.WorkspaceID, m.Code, m.Description, m.Category, m.Capacity, m.BuildingID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if pgErr, ok := asPgError(err); ok {
			switch pgErr.Code {
			case pgUniqueViolation:
				return apperrors.NewDuplicateError("workspace code " + workspace.Code + " already exists")
			case pgForeignKeyViolation:
				return apperrors.NewNotFoundError("building " + workspace.BuildingID)
			case pgCheckViolation:
				return apperrors.NewValidationFailedError("workspace violates " + pgErr.ConstraintName)
			}
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save workspace", err)
	}
	return nil
}

func (r *PgxWorkspaceRepository) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM workspaces WHERE workspace_id = $1`, workspaceID)
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == pgForeignKeyViolation {
			return apperrors.NewConflictError("workspace still has reservations")
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete workspace", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("workspace " + workspaceID)
	}
	return nil
}
