package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Building groups workspaces at a single address.
type Building struct {
	BuildingID string `json:"buildingID"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	AuditFields
}

// BuildingOccupancy summarises how much declared capacity of a building is
// already reserved on a date.
type BuildingOccupancy struct {
	BuildingID       string          `json:"buildingID"`
	Date             time.Time       `json:"date"`
	ReservedCapacity int             `json:"reservedCapacity"`
	TotalCapacity    int             `json:"totalCapacity"`
	Reservations     int             `json:"reservations"`
	Utilization      decimal.Decimal `json:"utilization"` // reserved/total, 0 when total is 0
}

// NewBuildingOccupancy computes the utilization ratio rounded to four places.
func NewBuildingOccupancy(buildingID string, date time.Time, reserved, total, count int) BuildingOccupancy {
	utilization := decimal.Zero
	if total > 0 {
		utilization = decimal.NewFromInt(int64(reserved)).
			Div(decimal.NewFromInt(int64(total))).
			Round(4)
	}
	return BuildingOccupancy{
		BuildingID:       buildingID,
		Date:             date,
		ReservedCapacity: reserved,
		TotalCapacity:    total,
		Reservations:     count,
		Utilization:      utilization,
	}
}
