package pgsql

import (
	"context"
	"errors"
	"net/http"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// queryRows runs a select and collects every row into T by column name.
func queryRows[T any](ctx context.Context, pool *pgxpool.Pool, what string, query string, args ...any) ([]T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query "+what, err)
	}
	defer rows.Close()

	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect "+what+" rows", err)
	}
	return collected, nil
}

// queryOne is queryRows for lookups by key; zero rows map to apperrors.ErrNotFound.
func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, what string, query string, args ...any) (*T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query "+what, err)
	}
	defer rows.Close()

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(what)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect "+what, err)
	}
	return &row, nil
}

func (r *BaseRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found bool
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "failed to run existence check", err)
	}
	return found, nil
}

func (r *BaseRepository) count(ctx context.Context, what string, query string, args ...any) (int, error) {
	var n int
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to count "+what, err)
	}
	return n, nil
}

// asPgError extracts the driver error, if any.
func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}
