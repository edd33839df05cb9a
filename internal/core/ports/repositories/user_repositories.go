package repositories

import (
	"context"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByHandle retrieves a user by their unique handle.
	FindUserByHandle(ctx context.Context, handle string) (*domain.User, error)

	// ListUsers retrieves every registered user ordered by handle.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Duplicate handles or emails return apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// DeleteUser removes a user. Users still referenced by reservations return apperrors.ErrConflict.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
