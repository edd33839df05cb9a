package dto

import (
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBuildingRequest defines data for adding a building.
type CreateBuildingRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city" binding:"required"`
}

// BuildingResponse defines data returned for a building.
type BuildingResponse struct {
	BuildingID string    `json:"buildingID"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	CreatedAt  time.Time `json:"createdAt"`
	CreatedBy  string    `json:"createdBy"`
}

// ToBuildingResponse converts domain.Building to DTO.
func ToBuildingResponse(b *domain.Building) BuildingResponse {
	return BuildingResponse{
		BuildingID: b.BuildingID,
		Name:       b.Name,
		Address:    b.Address,
		City:       b.City,
		CreatedAt:  b.CreatedAt,
		CreatedBy:  b.CreatedBy,
	}
}

// ListBuildingsResponse wraps a list of buildings.
type ListBuildingsResponse struct {
	Buildings []BuildingResponse `json:"buildings"`
}

// ToListBuildingsResponse converts a slice of domain.Building to DTO.
func ToListBuildingsResponse(bs []domain.Building) ListBuildingsResponse {
	list := make([]BuildingResponse, len(bs))
	for i := range bs {
		list[i] = ToBuildingResponse(&bs[i])
	}
	return ListBuildingsResponse{Buildings: list}
}

// OccupancyParams defines query parameters for the occupancy report.
type OccupancyParams struct {
	Date string `form:"date" binding:"required,iso_date"`
}

// OccupancyResponse reports how much of a building is reserved on a day.
type OccupancyResponse struct {
	BuildingID       string          `json:"buildingID"`
	Date             string          `json:"date"`
	ReservedCapacity int             `json:"reservedCapacity"`
	TotalCapacity    int             `json:"totalCapacity"`
	Reservations     int             `json:"reservations"`
	Utilization      decimal.Decimal `json:"utilization"`
}

// ToOccupancyResponse converts domain.BuildingOccupancy to DTO.
func ToOccupancyResponse(o *domain.BuildingOccupancy) OccupancyResponse {
	return OccupancyResponse{
		BuildingID:       o.BuildingID,
		Date:             domain.FormatDate(o.Date),
		ReservedCapacity: o.ReservedCapacity,
		TotalCapacity:    o.TotalCapacity,
		Reservations:     o.Reservations,
		Utilization:      o.Utilization,
	}
}
