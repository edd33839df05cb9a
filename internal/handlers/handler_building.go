package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/desk_reservation_app/internal/core/ports/services"
	"github.com/SscSPs/desk_reservation_app/internal/dto"
	"github.com/SscSPs/desk_reservation_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// buildingHandler handles HTTP requests related to buildings.
type buildingHandler struct {
	buildingService portssvc.BuildingSvc
	catalogCache    *cache.Cache
}

func newBuildingHandler(bs portssvc.BuildingSvc, catalogCache *cache.Cache) *buildingHandler {
	return &buildingHandler{buildingService: bs, catalogCache: catalogCache}
}

func registerBuildingRoutes(rg *gin.RouterGroup, buildingService portssvc.BuildingSvc, catalogCache *cache.Cache, ttl time.Duration) {
	h := newBuildingHandler(buildingService, catalogCache)
	cached := middleware.CatalogCache(catalogCache, ttl)

	buildings := rg.Group("/buildings")
	{
		buildings.GET("", cached, h.listBuildings)
		buildings.POST("", h.createBuilding)
		buildings.GET("/:buildingID", cached, h.getBuilding)
		buildings.GET("/:buildingID/occupancy", h.getOccupancy)
	}
}

// listBuildings godoc
// @Summary List buildings
// @Tags buildings
// @Produce json
// @Success 200 {object} dto.ListBuildingsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /buildings [get]
func (h *buildingHandler) listBuildings(c *gin.Context) {
	buildings, err := h.buildingService.ListBuildings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list buildings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBuildingsResponse(buildings))
}

// createBuilding godoc
// @Summary Create a building
// @Description Administrator only.
// @Tags buildings
// @Accept json
// @Produce json
// @Param building body dto.CreateBuildingRequest true "Building details"
// @Success 201 {object} dto.BuildingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /buildings [post]
func (h *buildingHandler) createBuilding(c *gin.Context) {
	var req dto.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	building, err := h.buildingService.CreateBuilding(c.Request.Context(), req, identity)
	if err != nil {
		respondError(c, err, "Failed to create building")
		return
	}
	h.catalogCache.Flush()

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Building created", slog.String("building_id", building.BuildingID))
	c.JSON(http.StatusCreated, dto.ToBuildingResponse(building))
}

// getBuilding godoc
// @Summary Get a building
// @Tags buildings
// @Produce json
// @Param buildingID path string true "Building ID"
// @Success 200 {object} dto.BuildingResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /buildings/{buildingID} [get]
func (h *buildingHandler) getBuilding(c *gin.Context) {
	building, err := h.buildingService.GetBuilding(c.Request.Context(), c.Param("buildingID"))
	if err != nil {
		respondError(c, err, "Failed to get building")
		return
	}
	c.JSON(http.StatusOK, dto.ToBuildingResponse(building))
}

// getOccupancy godoc
// @Summary Building occupancy for a day
// @Description Reserved capacity against total capacity of the building's workspaces.
// @Tags buildings
// @Produce json
// @Param buildingID path string true "Building ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} dto.OccupancyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /buildings/{buildingID}/occupancy [get]
func (h *buildingHandler) getOccupancy(c *gin.Context) {
	var params dto.OccupancyParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	date, ok := parseDateParam(c, params.Date)
	if !ok {
		return
	}

	occupancy, err := h.buildingService.GetOccupancy(c.Request.Context(), c.Param("buildingID"), date)
	if err != nil {
		respondError(c, err, "Failed to compute occupancy")
		return
	}
	c.JSON(http.StatusOK, dto.ToOccupancyResponse(occupancy))
}
