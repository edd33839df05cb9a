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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelectQuery = `
SELECT user_id, handle, name, email, created_at, created_by, last_updated_at, last_updated_by
FROM users
`

func (r *PgxUserRepository) findOne(ctx context.Context, what, filter string, arg string) (*domain.User, error) {
	row, err := queryOne[models.User](ctx, r.Pool, what, userSelectQuery+filter, arg)
	if err != nil {
		return nil, err
	}
	user := row.ToDomain()
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user "+userID, "WHERE user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByHandle(ctx context.Context, handle string) (*domain.User, error) {
	return r.findOne(ctx, "user "+handle, "WHERE handle = $1", handle)
}

func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := queryRows[models.User](ctx, r.Pool, "users", userSelectQuery+"ORDER BY handle")
	if err != nil {
		return nil, err
	}
	return models.ToDomainSlice[models.User, domain.User](rows), nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := models.UserFromDomain(user)
	query := `
		INSERT INTO users (user_id, handle, name, email, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Handle, m.Name, m.Email,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == pgUniqueViolation {
			switch pgErr.ConstraintName {
			case "uq_users_email":
				return apperrors.NewDuplicateError("email " + user.Email + " is already registered")
			default:
				return apperrors.NewDuplicateError("handle " + user.Handle + " is already taken")
			}
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save user", err)
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		if pgErr, ok := asPgError(err); ok && pgErr.Code == pgForeignKeyViolation {
			return apperrors.NewConflictError("user still has reservations")
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + userID)
	}
	return nil
}
