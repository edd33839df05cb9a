package handlers

import (
	"net/http"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	portssvc "github.com/SscSPs/desk_reservation_app/internal/core/ports/services"
	"github.com/SscSPs/desk_reservation_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests for the user directory.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.GET("/:handle", h.getUser)
		users.DELETE("/:handle", h.deleteUser)
	}
}

// listUsers godoc
// @Summary List users
// @Description Administrator only.
// @Tags users
// @Produce json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// getUser godoc
// @Summary Get a user by handle
// @Description Users may read their own profile; the Administrator may read any.
// @Tags users
// @Produce json
// @Param handle path string true "User handle"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{handle} [get]
func (h *userHandler) getUser(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	handle := c.Param("handle")
	if handle != identity && !domain.IsAdministrator(identity) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "only the owner or the administrator may read this user"})
		return
	}

	user, err := h.userService.GetUserByHandle(c.Request.Context(), handle)
	if err != nil {
		respondError(c, err, "Failed to get user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Administrator only. Users holding reservations cannot be deleted.
// @Tags users
// @Param handle path string true "User handle"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/{handle} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("handle"), identity); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}
