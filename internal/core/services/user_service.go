package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_reservation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/desk_reservation_app/internal/core/ports/services"
	"github.com/SscSPs/desk_reservation_app/internal/dto"
	"github.com/SscSPs/desk_reservation_app/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo          portsrepo.UserRepositoryFacade
	reservationRepo   portsrepo.ReservationReader
	adminPasswordHash string
}

// UserServiceOption is a functional option for configuring the user service
type UserServiceOption func(*userService)

// WithAdministratorPasswordHash enables administrator login with the given bcrypt hash.
func WithAdministratorPasswordHash(hash string) UserServiceOption {
	return func(s *userService) {
		s.adminPasswordHash = hash
	}
}

// NewUserService creates the user directory service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, reservationRepo portsrepo.ReservationReader, options ...UserServiceOption) portssvc.UserSvcFacade {
	svc := &userService{userRepo: userRepo, reservationRepo: reservationRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	handle := strings.TrimSpace(req.Handle)
	if handle == "" {
		return nil, apperrors.NewValidationFailedError("handle is required")
	}
	if domain.IsReservedHandle(handle) {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("handle %q is reserved", handle))
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID: uuid.NewString(),
		Handle: handle,
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     handle,
			LastUpdatedAt: now,
			LastUpdatedBy: handle,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("handle", handle))
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("handle", handle))
	return &user, nil
}

func (s *userService) GetUserByHandle(ctx context.Context, handle string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByHandle(ctx, handle)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by handle", slog.String("handle", handle))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, requestingIdentity string) ([]domain.User, error) {
	if err := s.AuthorizeAdministrator(ctx, requestingIdentity, "list users"); err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}
	return users, nil
}

func (s *userService) DeleteUser(ctx context.Context, handle string, requestingIdentity string) error {
	if err := s.AuthorizeAdministrator(ctx, requestingIdentity, "delete users"); err != nil {
		return err
	}

	user, err := s.GetUserByHandle(ctx, handle)
	if err != nil {
		return err
	}

	held, err := s.reservationRepo.CountReservationsByUser(ctx, user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count reservations of user", slog.String("user_id", user.UserID))
		return err
	}
	if held > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("user %s still holds %d reservation(s)", user.Handle, held))
	}

	// The store rejects the delete too if a reservation slipped in meanwhile.
	if err := s.userRepo.DeleteUser(ctx, user.UserID); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", user.UserID))
		}
		return err
	}

	s.LogInfo(ctx, "User deleted", slog.String("user_id", user.UserID), slog.String("handle", handle))
	return nil
}

// Authenticate accepts a registered handle as-is. The administrator must
// present the password matching the configured bcrypt hash.
func (s *userService) Authenticate(ctx context.Context, handle, password string) (string, error) {
	handle = strings.TrimSpace(handle)

	if domain.IsReservedHandle(handle) {
		if s.adminPasswordHash == "" {
			s.LogInfo(ctx, "Administrator login attempted but no password hash is configured")
			return "", apperrors.NewUnauthorizedError("administrator login is disabled")
		}
		if !utils.CheckPasswordHash(password, s.adminPasswordHash) {
			s.LogInfo(ctx, "Administrator login refused")
			return "", apperrors.NewUnauthorizedError("invalid credentials")
		}
		return domain.AdministratorHandle, nil
	}

	user, err := s.userRepo.FindUserByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewUnauthorizedError("invalid credentials")
		}
		s.LogError(ctx, err, "Failed to look up user during login", slog.String("handle", handle))
		return "", err
	}
	return user.Handle, nil
}
