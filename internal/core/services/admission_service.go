package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_reservation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/desk_reservation_app/internal/core/ports/services"
)

// admissionService decides whether a candidate reservation may be admitted.
type admissionService struct {
	BaseService
	userRepo        portsrepo.UserReader
	workspaceRepo   portsrepo.WorkspaceReader
	reservationRepo portsrepo.ReservationReader
}

// NewAdmissionService creates the admission engine over read-only ports.
func NewAdmissionService(
	userRepo portsrepo.UserReader,
	workspaceRepo portsrepo.WorkspaceReader,
	reservationRepo portsrepo.ReservationReader,
) portssvc.AdmissionSvc {
	return &admissionService{
		userRepo:        userRepo,
		workspaceRepo:   workspaceRepo,
		reservationRepo: reservationRepo,
	}
}

var _ portssvc.AdmissionSvc = (*admissionService)(nil)

// Evaluate checks, in order: workspace existence, one reservation per user per
// day, building capacity, one reservation per workspace per day, user existence.
// The first failing rule decides the reason.
func (s *admissionService) Evaluate(ctx context.Context, candidate domain.Candidate, excludingReservationID string) (domain.Verdict, error) {
	date := domain.NormalizeDate(candidate.Date)
	logger := s.GetLogger(ctx).With(
		slog.String("user_id", candidate.UserID),
		slog.String("workspace_id", candidate.WorkspaceID),
		slog.String("date", domain.FormatDate(date)),
	)

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, candidate.WorkspaceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.reject(logger, domain.ReasonWorkspaceNotFound), nil
		}
		return domain.Verdict{}, fmt.Errorf("admission: resolving workspace: %w", err)
	}

	userBooked, err := s.reservationRepo.ExistsReservationForUser(ctx, candidate.UserID, date, excludingReservationID)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("admission: checking user bookings: %w", err)
	}
	if userBooked {
		return s.reject(logger, domain.ReasonUserAlreadyBooked), nil
	}

	load, err := computeBuildingLoad(ctx, s.workspaceRepo, s.reservationRepo, workspace.BuildingID, date, excludingReservationID)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("admission: computing building load: %w", err)
	}
	if load.reservations > 0 && load.reserved >= load.total {
		return s.reject(logger, domain.ReasonBuildingAtCapacity), nil
	}

	workspaceBooked, err := s.reservationRepo.ExistsReservationForWorkspace(ctx, workspace.WorkspaceID, date, excludingReservationID)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("admission: checking workspace bookings: %w", err)
	}
	if workspaceBooked {
		return s.reject(logger, domain.ReasonWorkspaceAlreadyBooked), nil
	}

	if _, err := s.userRepo.FindUserByID(ctx, candidate.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.reject(logger, domain.ReasonUserNotFound), nil
		}
		return domain.Verdict{}, fmt.Errorf("admission: resolving user: %w", err)
	}

	logger.Debug("Candidate reservation approved")
	return domain.Approve(), nil
}

func (s *admissionService) EvaluateWorkspaceAvailability(ctx context.Context, workspaceID string, date time.Time, excludingReservationID string) (domain.Verdict, error) {
	booked, err := s.reservationRepo.ExistsReservationForWorkspace(ctx, workspaceID, domain.NormalizeDate(date), excludingReservationID)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("admission: checking workspace bookings: %w", err)
	}
	if booked {
		return s.reject(s.GetLogger(ctx).With(slog.String("workspace_id", workspaceID)), domain.ReasonWorkspaceAlreadyBooked), nil
	}
	return domain.Approve(), nil
}

func (s *admissionService) reject(logger *slog.Logger, reason domain.RejectionReason) domain.Verdict {
	logger.Info("Candidate reservation rejected", slog.String("reason", string(reason)))
	return domain.Reject(reason)
}

// buildingLoad is the reserved versus declared capacity of one building on one day.
type buildingLoad struct {
	reserved     int
	total        int
	reservations int
}

func computeBuildingLoad(
	ctx context.Context,
	workspaceRepo portsrepo.WorkspaceReader,
	reservationRepo portsrepo.ReservationReader,
	buildingID string,
	date time.Time,
	excludingReservationID string,
) (buildingLoad, error) {
	var load buildingLoad

	reservations, err := reservationRepo.FindReservationsForBuildingOnDate(ctx, buildingID, date)
	if err != nil {
		return load, err
	}
	workspaces, err := workspaceRepo.ListWorkspacesByBuilding(ctx, buildingID)
	if err != nil {
		return load, err
	}

	capacityByWorkspace := make(map[string]int, len(workspaces))
	for _, ws := range workspaces {
		capacityByWorkspace[ws.WorkspaceID] = ws.Capacity
		load.total += ws.Capacity
	}
	for _, r := range reservations {
		if excludingReservationID != "" && r.ReservationID == excludingReservationID {
			continue
		}
		load.reservations++
		load.reserved += capacityByWorkspace[r.WorkspaceID]
	}
	return load, nil
}
