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
	"github.com/google/uuid"
)

type buildingService struct {
	BaseService
	buildingRepo    portsrepo.BuildingRepositoryFacade
	workspaceRepo   portsrepo.WorkspaceReader
	reservationRepo portsrepo.ReservationReader
}

// NewBuildingService creates the building catalog service.
func NewBuildingService(
	buildingRepo portsrepo.BuildingRepositoryFacade,
	workspaceRepo portsrepo.WorkspaceReader,
	reservationRepo portsrepo.ReservationReader,
) portssvc.BuildingSvc {
	return &buildingService{
		buildingRepo:    buildingRepo,
		workspaceRepo:   workspaceRepo,
		reservationRepo: reservationRepo,
	}
}

var _ portssvc.BuildingSvc = (*buildingService)(nil)

func (s *buildingService) CreateBuilding(ctx context.Context, req dto.CreateBuildingRequest, requestingIdentity string) (*domain.Building, error) {
	if err := s.AuthorizeAdministrator(ctx, requestingIdentity, "create buildings"); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	building := domain.Building{
		BuildingID: uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Address:    strings.TrimSpace(req.Address),
		City:       strings.TrimSpace(req.City),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingIdentity,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingIdentity,
		},
	}
	if building.Name == "" || building.City == "" {
		return nil, apperrors.NewValidationFailedError("building name and city are required")
	}

	if err := s.buildingRepo.SaveBuilding(ctx, building); err != nil {
		s.LogError(ctx, err, "Failed to save building", slog.String("name", building.Name))
		return nil, fmt.Errorf("failed to create building: %w", err)
	}

	s.LogInfo(ctx, "Building created", slog.String("building_id", building.BuildingID), slog.String("city", building.City))
	return &building, nil
}

func (s *buildingService) GetBuilding(ctx context.Context, buildingID string) (*domain.Building, error) {
	building, err := s.buildingRepo.FindBuildingByID(ctx, buildingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find building", slog.String("building_id", buildingID))
		}
		return nil, err
	}
	return building, nil
}

func (s *buildingService) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	buildings, err := s.buildingRepo.ListBuildings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list buildings")
		return nil, err
	}
	return buildings, nil
}

func (s *buildingService) GetOccupancy(ctx context.Context, buildingID string, date time.Time) (*domain.BuildingOccupancy, error) {
	if _, err := s.GetBuilding(ctx, buildingID); err != nil {
		return nil, err
	}

	date = domain.NormalizeDate(date)
	load, err := computeBuildingLoad(ctx, s.workspaceRepo, s.reservationRepo, buildingID, date, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to compute building occupancy", slog.String("building_id", buildingID))
		return nil, err
	}

	occupancy := domain.NewBuildingOccupancy(buildingID, date, load.reserved, load.total, load.reservations)
	return &occupancy, nil
}
