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
	"github.com/patrickmn/go-cache"
)

// workspaceHandler handles HTTP requests related to the workspace catalog.
type workspaceHandler struct {
	workspaceService   portssvc.WorkspaceSvc
	reservationService portssvc.ReservationReaderSvc
	catalogCache       *cache.Cache
}

func newWorkspaceHandler(ws portssvc.WorkspaceSvc, rs portssvc.ReservationReaderSvc, catalogCache *cache.Cache) *workspaceHandler {
	return &workspaceHandler{
		workspaceService:   ws,
		reservationService: rs,
		catalogCache:       catalogCache,
	}
}

// registerWorkspaceRoutes registers the workspace catalog routes. Plain
// listings are served through the catalog cache; searches are not, since
// dated searches depend on reservations.
func registerWorkspaceRoutes(rg *gin.RouterGroup, workspaceService portssvc.WorkspaceSvc, reservationService portssvc.ReservationReaderSvc, catalogCache *cache.Cache, ttl time.Duration) {
	h := newWorkspaceHandler(workspaceService, reservationService, catalogCache)
	cached := middleware.CatalogCache(catalogCache, ttl)

	workspaces := rg.Group("/workspaces")
	{
		workspaces.GET("", cached, h.listWorkspaces)
		workspaces.GET("/search", h.searchWorkspaces)
		workspaces.GET("/:code", cached, h.getWorkspace)
		workspaces.POST("", h.addWorkspace)
		workspaces.DELETE("/:code", h.deleteWorkspace)
	}
}

// listWorkspaces godoc
// @Summary List workspaces
// @Tags workspaces
// @Produce json
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /workspaces [get]
func (h *workspaceHandler) listWorkspaces(c *gin.Context) {
	workspaces, err := h.workspaceService.ListWorkspaces(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list workspaces")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(workspaces))
}

// searchWorkspaces godoc
// @Summary Search workspaces
// @Description Finds workspaces of a category in a city. With a date, only workspaces not reserved on that day are returned.
// @Tags workspaces
// @Produce json
// @Param category query string true "PRIVATO, OPENSPACE or SALA_RIUNIONI"
// @Param city query string true "City"
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /workspaces/search [get]
func (h *workspaceHandler) searchWorkspaces(c *gin.Context) {
	var params dto.SearchWorkspacesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := domain.ParseWorkspaceCategory(params.Category)
	if err != nil {
		respondError(c, err, "Failed to search workspaces")
		return
	}

	var workspaces []domain.Workspace
	if params.Date == "" {
		workspaces, err = h.workspaceService.SearchWorkspaces(c.Request.Context(), category, params.City)
	} else {
		date, ok := parseDateParam(c, params.Date)
		if !ok {
			return
		}
		workspaces, err = h.reservationService.SearchAvailable(c.Request.Context(), category, params.City, date)
	}
	if err != nil {
		respondError(c, err, "Failed to search workspaces")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(workspaces))
}

// getWorkspace godoc
// @Summary Get a workspace by code
// @Tags workspaces
// @Produce json
// @Param code path string true "Workspace code, e.g. MI001"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{code} [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	workspace, err := h.workspaceService.GetWorkspaceByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err, "Failed to get workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// addWorkspace godoc
// @Summary Add a workspace to a building
// @Description Administrator only. The building must exist and the code must be unique.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Building not found"
// @Failure 409 {object} dto.ErrorResponse "Code already in use"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /workspaces [post]
func (h *workspaceHandler) addWorkspace(c *gin.Context) {
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	workspace, err := h.workspaceService.AddWorkspace(c.Request.Context(), req, identity)
	if err != nil {
		respondError(c, err, "Failed to add workspace")
		return
	}
	h.catalogCache.Flush()

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Workspace added", slog.String("code", workspace.Code))
	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(workspace))
}

// deleteWorkspace godoc
// @Summary Remove a workspace
// @Description Administrator only. Workspaces with reservations cannot be removed.
// @Tags workspaces
// @Param code path string true "Workspace code"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{code} [delete]
func (h *workspaceHandler) deleteWorkspace(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.workspaceService.DeleteWorkspace(c.Request.Context(), c.Param("code"), identity); err != nil {
		respondError(c, err, "Failed to delete workspace")
		return
	}
	h.catalogCache.Flush()
	c.Status(http.StatusNoContent)
}
