package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	"github.com/SscSPs/desk_reservation_app/internal/dto"
	"github.com/SscSPs/desk_reservation_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps the application error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondError writes the JSON error body for err. Internal failures are
// logged and reported with the generic action message only.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)

	if status >= http.StatusInternalServerError {
		logger.Error(action, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: action})
		return
	}

	body := dto.ErrorResponse{Error: err.Error()}
	if reason, ok := domain.RejectionReasonOf(err); ok {
		body.Reason = string(reason)
	}
	logger.Warn(action, slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, body)
}

func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}

// requireIdentity returns the caller identity set by AuthMiddleware.
func requireIdentity(c *gin.Context) (string, bool) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Identity not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return identity, true
}

// parseDateParam parses a date already accepted by the iso_date validator.
func parseDateParam(c *gin.Context, raw string) (time.Time, bool) {
	date, err := domain.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}
