package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	"github.com/SscSPs/desk_reservation_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeAdministrator rejects any identity other than the administrator.
func (s *BaseService) AuthorizeAdministrator(ctx context.Context, requestingIdentity, action string) error {
	if domain.IsAdministrator(requestingIdentity) {
		return nil
	}
	s.LogInfo(ctx, "Administrator-only action refused",
		slog.String("identity", requestingIdentity),
		slog.String("action", action))
	return apperrors.NewForbiddenError("only the administrator may " + action)
}

// AuthorizeOwner allows the owning user or the administrator.
func (s *BaseService) AuthorizeOwner(ctx context.Context, requestingIdentity, ownerHandle string) error {
	if domain.IsAdministrator(requestingIdentity) {
		return nil
	}
	if ownerHandle != "" && requestingIdentity == ownerHandle {
		return nil
	}
	s.LogInfo(ctx, "Reservation access refused",
		slog.String("identity", requestingIdentity),
		slog.String("owner", ownerHandle))
	return apperrors.NewForbiddenError("reservation belongs to another user")
}
