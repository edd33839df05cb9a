package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	portssvc "github.com/SscSPs/desk_reservation_app/internal/core/ports/services"
	"github.com/SscSPs/desk_reservation_app/internal/dto"
	"github.com/SscSPs/desk_reservation_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reservationHandler handles HTTP requests related to reservations.
type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
}

func newReservationHandler(rs portssvc.ReservationSvcFacade) *reservationHandler {
	return &reservationHandler{reservationService: rs}
}

// registerReservationRoutes registers the reservation lifecycle routes.
// bookingLimit throttles reservation creation per client.
func registerReservationRoutes(rg *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade, bookingLimit gin.HandlerFunc) {
	h := newReservationHandler(reservationService)

	reservations := rg.Group("/reservations")
	{
		reservations.POST("", bookingLimit, h.createReservation)
		reservations.GET("", h.listReservations)
		reservations.GET("/:reservationID", h.getReservation)
		reservations.PATCH("/:reservationID", h.modifyReservation)
		reservations.DELETE("/:reservationID", h.deleteReservation)
	}

	rg.GET("/users/:handle/reservations", h.listUserReservations)
}

// createReservation godoc
// @Summary Book a workspace
// @Description Books a workspace for a day. The handle defaults to the caller; only the Administrator may book on behalf of another user. Rejections carry a reason code.
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "WORKSPACE_NOT_FOUND or USER_NOT_FOUND"
// @Failure 409 {object} dto.ErrorResponse "USER_ALREADY_BOOKED, WORKSPACE_ALREADY_BOOKED or BUILDING_AT_CAPACITY"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reservations [post]
func (h *reservationHandler) createReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	handle := req.Handle
	if handle == "" {
		handle = identity
	}
	if handle != identity && !domain.IsAdministrator(identity) {
		logger.Warn("Refused booking on behalf of another user", slog.String("handle", handle))
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "only the administrator may book for another user"})
		return
	}

	date, ok := parseDateParam(c, req.Date)
	if !ok {
		return
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), handle, req.WorkspaceCode, date)
	if err != nil {
		respondError(c, err, "Failed to create reservation")
		return
	}

	logger.Info("Reservation created", slog.String("reservation_id", reservation.ReservationID))
	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

// listReservations godoc
// @Summary List reservations
// @Description The Administrator sees every reservation; any other caller sees their own.
// @Tags reservations
// @Produce json
// @Success 200 {object} dto.ListReservationsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reservations [get]
func (h *reservationHandler) listReservations(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListAll(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReservationsResponse(reservations))
}

// getReservation godoc
// @Summary Get a reservation
// @Tags reservations
// @Produce json
// @Param reservationID path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reservations/{reservationID} [get]
func (h *reservationHandler) getReservation(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	reservation, err := h.reservationService.GetReservation(c.Request.Context(), c.Param("reservationID"), identity)
	if err != nil {
		respondError(c, err, "Failed to get reservation")
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// modifyReservation godoc
// @Summary Move a reservation
// @Description Changes the date and/or workspace of a reservation. Omitted fields keep their current value. Owner or Administrator only.
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservationID path string true "Reservation ID"
// @Param changes body dto.ModifyReservationRequest true "Fields to change"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reservations/{reservationID} [patch]
func (h *reservationHandler) modifyReservation(c *gin.Context) {
	var req dto.ModifyReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var newDate *time.Time
	if req.Date != nil {
		date, ok := parseDateParam(c, *req.Date)
		if !ok {
			return
		}
		newDate = &date
	}

	reservation, err := h.reservationService.Modify(c.Request.Context(), c.Param("reservationID"), newDate, req.WorkspaceCode, identity)
	if err != nil {
		respondError(c, err, "Failed to modify reservation")
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// deleteReservation godoc
// @Summary Cancel a reservation
// @Tags reservations
// @Param reservationID path string true "Reservation ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reservations/{reservationID} [delete]
func (h *reservationHandler) deleteReservation(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.reservationService.Delete(c.Request.Context(), c.Param("reservationID"), identity); err != nil {
		respondError(c, err, "Failed to delete reservation")
		return
	}
	c.Status(http.StatusNoContent)
}

// listUserReservations godoc
// @Summary List a user's reservations
// @Description A user may list their own reservations; the Administrator may list anyone's.
// @Tags reservations
// @Produce json
// @Param handle path string true "User handle"
// @Success 200 {object} dto.ListReservationsResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{handle}/reservations [get]
func (h *reservationHandler) listUserReservations(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	handle := c.Param("handle")
	if handle != identity && !domain.IsAdministrator(identity) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "only the owner or the administrator may list these reservations"})
		return
	}

	reservations, err := h.reservationService.ListForUser(c.Request.Context(), handle)
	if err != nil {
		respondError(c, err, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReservationsResponse(reservations))
}
