package services

import (
	"context"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	"github.com/SscSPs/desk_reservation_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByHandle retrieves a user by handle.
	GetUserByHandle(ctx context.Context, handle string) (*domain.User, error)

	// ListUsers retrieves all registered users (administrator only).
	ListUsers(ctx context.Context, requestingIdentity string) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new user.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser removes a user (administrator only).
	DeleteUser(ctx context.Context, handle string, requestingIdentity string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// Authenticate resolves login credentials to a caller identity.
	Authenticate(ctx context.Context, handle, password string) (string, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
