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

type workspaceService struct {
	BaseService
	workspaceRepo   portsrepo.WorkspaceRepositoryFacade
	buildingRepo    portsrepo.BuildingReader
	reservationRepo portsrepo.ReservationReader
}

// NewWorkspaceService creates the workspace catalog service.
func NewWorkspaceService(workspaceRepo portsrepo.WorkspaceRepositoryFacade, buildingRepo portsrepo.BuildingReader, reservationRepo portsrepo.ReservationReader) portssvc.WorkspaceSvc {
	return &workspaceService{
		workspaceRepo:   workspaceRepo,
		buildingRepo:    buildingRepo,
		reservationRepo: reservationRepo,
	}
}

var _ portssvc.WorkspaceSvc = (*workspaceService)(nil)

func (s *workspaceService) AddWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, requestingIdentity string) (*domain.Workspace, error) {
	if err := s.AuthorizeAdministrator(ctx, requestingIdentity, "add workspaces"); err != nil {
		return nil, err
	}

	category, err := domain.ParseWorkspaceCategory(req.Category)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	if req.Capacity <= 0 {
		return nil, apperrors.NewValidationFailedError("capacity must be positive")
	}
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, apperrors.NewValidationFailedError("workspace code is required")
	}

	if _, err := s.buildingRepo.FindBuildingByID(ctx, req.BuildingID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("building %s", req.BuildingID))
		}
		s.LogError(ctx, err, "Failed to resolve building", slog.String("building_id", req.BuildingID))
		return nil, err
	}

	now := time.Now().UTC()
	workspace := domain.Workspace{
		WorkspaceID: uuid.NewString(),
		Code:        code,
		Description: strings.TrimSpace(req.Description),
		Category:    category,
		Capacity:    req.Capacity,
		BuildingID:  req.BuildingID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingIdentity,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingIdentity,
		},
	}

	if err := s.workspaceRepo.SaveWorkspace(ctx, workspace); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save workspace", slog.String("code", code))
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.LogInfo(ctx, "Workspace added",
		slog.String("workspace_id", workspace.WorkspaceID),
		slog.String("code", code),
		slog.String("building_id", workspace.BuildingID))
	return &workspace, nil
}

func (s *workspaceService) GetWorkspaceByCode(ctx context.Context, code string) (*domain.Workspace, error) {
	workspace, err := s.workspaceRepo.FindWorkspaceByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find workspace", slog.String("code", code))
		}
		return nil, err
	}
	return workspace, nil
}

func (s *workspaceService) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	workspaces, err := s.workspaceRepo.ListWorkspaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces")
		return nil, err
	}
	return workspaces, nil
}

func (s *workspaceService) SearchWorkspaces(ctx context.Context, category domain.WorkspaceCategory, city string) ([]domain.Workspace, error) {
	if !category.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown workspace category %q", category))
	}
	workspaces, err := s.workspaceRepo.ListWorkspacesByCategoryAndCity(ctx, category, strings.TrimSpace(city))
	if err != nil {
		s.LogError(ctx, err, "Failed to search workspaces",
			slog.String("category", string(category)),
			slog.String("city", city))
		return nil, err
	}
	return workspaces, nil
}

func (s *workspaceService) DeleteWorkspace(ctx context.Context, code string, requestingIdentity string) error {
	if err := s.AuthorizeAdministrator(ctx, requestingIdentity, "delete workspaces"); err != nil {
		return err
	}

	workspace, err := s.GetWorkspaceByCode(ctx, code)
	if err != nil {
		return err
	}

	booked, err := s.reservationRepo.CountReservationsByWorkspace(ctx, workspace.WorkspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count reservations of workspace", slog.String("workspace_id", workspace.WorkspaceID))
		return err
	}
	if booked > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("workspace %s has %d reservation(s)", workspace.Code, booked))
	}

	if err := s.workspaceRepo.DeleteWorkspace(ctx, workspace.WorkspaceID); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete workspace", slog.String("workspace_id", workspace.WorkspaceID))
		}
		return err
	}

	s.LogInfo(ctx, "Workspace deleted", slog.String("code", workspace.Code))
	return nil
}
