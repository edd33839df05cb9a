package pgsql

import (
	"context"
	"net/http"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_reservation_app/internal/core/ports/repositories"
	"github.com/SscSPs/desk_reservation_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReservationRepository struct {
	BaseRepository
}

func newPgxReservationRepository(pool *pgxpool.Pool) portsrepo.ReservationRepositoryFacade {
	return &PgxReservationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReservationRepositoryFacade = (*PgxReservationRepository)(nil)

const reservationSelectQuery = `
SELECT
	r.reservation_id, r.user_id, r.workspace_id, r.reservation_date,
	r.created_at, r.created_by, r.last_updated_at, r.last_updated_by
FROM reservations r
`

func (r *PgxReservationRepository) getReservations(ctx context.Context, filterQuery string, args ...any) ([]domain.Reservation, error) {
	rows, err := queryRows[models.Reservation](ctx, r.Pool, "reservations", reservationSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, err
	}
	return models.ToDomainSlice[models.Reservation, domain.Reservation](rows), nil
}

func (r *PgxReservationRepository) ExistsReservationForWorkspace(ctx context.Context, workspaceID string, date time.Time, excludingReservationID string) (bool, error) {
	return r.exists(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE workspace_id = $1 AND reservation_date = $2 AND reservation_id <> $3
		)`, workspaceID, domain.NormalizeDate(date), excludingReservationID)
}

func (r *PgxReservationRepository) ExistsReservationForUser(ctx context.Context, userID string, date time.Time, excludingReservationID string) (bool, error) {
	return r.exists(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE user_id = $1 AND reservation_date = $2 AND reservation_id <> $3
		)`, userID, domain.NormalizeDate(date), excludingReservationID)
}

func (r *PgxReservationRepository) FindReservationsForBuildingOnDate(ctx context.Context, buildingID string, date time.Time) ([]domain.Reservation, error) {
	return r.getReservations(ctx, `
		JOIN workspaces w ON w.workspace_id = r.workspace_id
		WHERE w.building_id = $1 AND r.reservation_date = $2
		ORDER BY r.reservation_id`, buildingID, domain.NormalizeDate(date))
}

func (r *PgxReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	row, err := queryOne[models.Reservation](ctx, r.Pool, "reservation "+reservationID, reservationSelectQuery+"WHERE r.reservation_id = $1", reservationID)
	if err != nil {
		return nil, err
	}
	reservation := row.ToDomain()
	return &reservation, nil
}

func (r *PgxReservationRepository) FindReservationsByUserID(ctx context.Context, userID string) ([]domain.Reservation, error) {
	return r.getReservations(ctx, "WHERE r.user_id = $1 ORDER BY r.reservation_date, r.reservation_id", userID)
}

func (r *PgxReservationRepository) FindAllReservations(ctx context.Context) ([]domain.Reservation, error) {
	return r.getReservations(ctx, "ORDER BY r.reservation_date, r.reservation_id")
}

func (r *PgxReservationRepository) CountReservationsByUser(ctx context.Context, userID string) (int, error) {
	return r.count(ctx, "reservations", `SELECT COUNT(*) FROM reservations WHERE user_id = $1`, userID)
}

func (r *PgxReservationRepository) CountReservationsByWorkspace(ctx context.Context, workspaceID string) (int, error) {
	return r.count(ctx, "reservations", `SELECT COUNT(*) FROM reservations WHERE workspace_id = $1`, workspaceID)
}

func (r *PgxReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	m := models.ReservationFromDomain(reservation)
	query := `
		INSERT INTO reservations (
			reservation_id, user_id, workspace_id, reservation_date,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReservationID, m.UserID, m.WorkspaceID, m.ReservationDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateReservationError(err, "failed to save reservation")
	}
	return nil
}

func (r *PgxReservationRepository) UpdateReservation(ctx context.Context, reservation domain.Reservation) error {
	m := models.ReservationFromDomain(reservation)
	query := `
		UPDATE reservations
		SET workspace_id = $2, reservation_date = $3, last_updated_at = $4, last_updated_by = $5
		WHERE reservation_id = $1
	`
	tag, err := r.Pool.Exec(ctx, query, m.ReservationID, m.WorkspaceID, m.ReservationDate, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translateReservationError(err, "failed to update reservation")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("reservation " + reservation.ReservationID)
	}
	return nil
}

func (r *PgxReservationRepository) DeleteReservation(ctx context.Context, reservationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM reservations WHERE reservation_id = $1`, reservationID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("reservation " + reservationID)
	}
	return nil
}

// translateReservationError maps constraint violations onto admission rejections.
func translateReservationError(err error, msg string) error {
	pgErr, ok := asPgError(err)
	if !ok {
		return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case constraintReservationWorkspaceDate:
			return domain.ErrWorkspaceAlreadyBooked
		case constraintReservationUserDate:
			return domain.ErrUserAlreadyBooked
		}
		return apperrors.NewDuplicateError("reservation already exists")
	case pgForeignKeyViolation:
		switch pgErr.ConstraintName {
		case constraintReservationUser:
			return domain.ErrUserNotFound
		case constraintReservationWorkspace:
			return domain.ErrWorkspaceNotFound
		}
	}
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}

// Constraint names from migrations/000001_init.up.sql.
const (
	constraintReservationWorkspaceDate = "uq_reservations_workspace_date"
	constraintReservationUserDate      = "uq_reservations_user_date"
	constraintReservationUser          = "fk_reservations_user"
	constraintReservationWorkspace     = "fk_reservations_workspace"
)
