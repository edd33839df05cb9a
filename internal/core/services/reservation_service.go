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
	"github.com/google/uuid"
)

// maxModifyAttempts bounds how often Modify re-locks after the reservation
// moved underneath it between the snapshot and lock acquisition.
const maxModifyAttempts = 3

// reservationService implements the ReservationSvcFacade interface
type reservationService struct {
	BaseService
	admission       portssvc.AdmissionSvc
	userRepo        portsrepo.UserReader
	workspaceRepo   portsrepo.WorkspaceReader
	reservationRepo portsrepo.ReservationRepositoryFacade
	locks           *keyedLocker
	now             func() time.Time
}

// ReservationServiceOption is a functional option for configuring the reservation service
type ReservationServiceOption func(*reservationService)

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) ReservationServiceOption {
	return func(s *reservationService) {
		s.now = now
	}
}

// NewReservationService creates the reservation lifecycle manager.
func NewReservationService(
	admission portssvc.AdmissionSvc,
	userRepo portsrepo.UserReader,
	workspaceRepo portsrepo.WorkspaceReader,
	reservationRepo portsrepo.ReservationRepositoryFacade,
	options ...ReservationServiceOption,
) portssvc.ReservationSvcFacade {
	svc := &reservationService{
		admission:       admission,
		userRepo:        userRepo,
		workspaceRepo:   workspaceRepo,
		reservationRepo: reservationRepo,
		locks:           newKeyedLocker(),
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReservationSvcFacade = (*reservationService)(nil)

func (s *reservationService) Create(ctx context.Context, userHandle string, workspaceCode string, date time.Time) (*domain.Reservation, error) {
	date = domain.NormalizeDate(date)
	logger := s.GetLogger(ctx).With(
		slog.String("user", userHandle),
		slog.String("workspace_code", workspaceCode),
		slog.String("date", domain.FormatDate(date)),
	)

	workspace, err := s.workspaceRepo.FindWorkspaceByCode(ctx, strings.TrimSpace(workspaceCode))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Info("Reservation rejected", slog.String("reason", string(domain.ReasonWorkspaceNotFound)))
			return nil, domain.ErrWorkspaceNotFound
		}
		logger.Error("Failed to resolve workspace", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to resolve workspace %s: %w", workspaceCode, err)
	}

	// An unknown handle is left for the engine so that earlier rules keep precedence.
	var userID string
	user, err := s.userRepo.FindUserByHandle(ctx, userHandle)
	switch {
	case err == nil:
		userID = user.UserID
	case !errors.Is(err, apperrors.ErrNotFound):
		logger.Error("Failed to resolve user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to resolve user %s: %w", userHandle, err)
	}

	unlock := s.locks.Lock(
		userDayKey(userID, date),
		workspaceDayKey(workspace.WorkspaceID, date),
		buildingDayKey(workspace.BuildingID, date),
	)
	defer unlock()

	verdict, err := s.admission.Evaluate(ctx, domain.Candidate{
		UserID:      userID,
		WorkspaceID: workspace.WorkspaceID,
		Date:        date,
	}, "")
	if err != nil {
		logger.Error("Admission evaluation failed", slog.String("error", err.Error()))
		return nil, err
	}
	if !verdict.Approved {
		return nil, verdict.Err()
	}

	now := s.now().UTC()
	reservation := domain.Reservation{
		ReservationID: uuid.NewString(),
		UserID:        userID,
		WorkspaceID:   workspace.WorkspaceID,
		Date:          date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userHandle,
			LastUpdatedAt: now,
			LastUpdatedBy: userHandle,
		},
	}
	if err := s.reservationRepo.SaveReservation(ctx, reservation); err != nil {
		return nil, s.storeError(ctx, err, "Failed to save reservation")
	}

	logger.Info("Reservation created", slog.String("reservation_id", reservation.ReservationID))
	return &reservation, nil
}

func (s *reservationService) Modify(ctx context.Context, reservationID string, newDate *time.Time, newWorkspaceCode *string, requestingIdentity string) (*domain.Reservation, error) {
	current, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeReservation(ctx, current, requestingIdentity); err != nil {
		return nil, err
	}

	var date *time.Time
	if newDate != nil {
		d := domain.NormalizeDate(*newDate)
		date = &d
	}

	var target *domain.Workspace
	if newWorkspaceCode != nil && strings.TrimSpace(*newWorkspaceCode) != "" {
		target, err = s.workspaceRepo.FindWorkspaceByCode(ctx, strings.TrimSpace(*newWorkspaceCode))
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, domain.ErrWorkspaceNotFound
			}
			s.LogError(ctx, err, "Failed to resolve workspace", slog.String("workspace_code", *newWorkspaceCode))
			return nil, fmt.Errorf("failed to resolve workspace %s: %w", *newWorkspaceCode, err)
		}
	}

	for attempt := 1; attempt <= maxModifyAttempts; attempt++ {
		keys, err := s.modifyKeys(ctx, *current, date, target)
		if err != nil {
			return nil, err
		}

		unlock := s.locks.Lock(keys...)
		fresh, err := s.findReservation(ctx, reservationID)
		if err != nil {
			unlock()
			return nil, err
		}
		if fresh.WorkspaceID != current.WorkspaceID || !fresh.Date.Equal(current.Date) {
			unlock()
			s.LogDebug(ctx, "Reservation moved while acquiring locks, retrying",
				slog.String("reservation_id", reservationID),
				slog.Int("attempt", attempt))
			current = fresh
			continue
		}

		updated, err := s.applyModification(ctx, *fresh, date, target, requestingIdentity)
		unlock()
		return updated, err
	}

	return nil, apperrors.NewConflictError("reservation changed concurrently, please retry")
}

// modifyKeys lists the contention keys guarding the reservation's target slot.
func (s *reservationService) modifyKeys(ctx context.Context, current domain.Reservation, date *time.Time, target *domain.Workspace) ([]string, error) {
	effectiveDate := current.Date
	if date != nil {
		effectiveDate = *date
	}

	workspace := target
	if workspace == nil {
		var err error
		workspace, err = s.workspaceRepo.FindWorkspaceByID(ctx, current.WorkspaceID)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve reserved workspace", slog.String("workspace_id", current.WorkspaceID))
			return nil, fmt.Errorf("failed to resolve workspace of reservation %s: %w", current.ReservationID, err)
		}
	}

	return []string{
		reservationKey(current.ReservationID),
		userDayKey(current.UserID, effectiveDate),
		workspaceDayKey(workspace.WorkspaceID, effectiveDate),
		buildingDayKey(workspace.BuildingID, effectiveDate),
	}, nil
}

// applyModification re-checks workspace availability only; it must run under the reservation's locks.
func (s *reservationService) applyModification(ctx context.Context, current domain.Reservation, date *time.Time, target *domain.Workspace, requestingIdentity string) (*domain.Reservation, error) {
	updated := current

	if date != nil && !date.Equal(current.Date) {
		verdict, err := s.admission.EvaluateWorkspaceAvailability(ctx, current.WorkspaceID, *date, current.ReservationID)
		if err != nil {
			return nil, err
		}
		if !verdict.Approved {
			return nil, verdict.Err()
		}
		updated.Date = *date
	}

	if target != nil && target.WorkspaceID != current.WorkspaceID {
		verdict, err := s.admission.EvaluateWorkspaceAvailability(ctx, target.WorkspaceID, updated.Date, current.ReservationID)
		if err != nil {
			return nil, err
		}
		if !verdict.Approved {
			return nil, verdict.Err()
		}
		updated.WorkspaceID = target.WorkspaceID
	}

	if updated.WorkspaceID == current.WorkspaceID && updated.Date.Equal(current.Date) {
		return &current, nil
	}

	updated.LastUpdatedAt = s.now().UTC()
	updated.LastUpdatedBy = requestingIdentity
	if err := s.reservationRepo.UpdateReservation(ctx, updated); err != nil {
		return nil, s.storeError(ctx, err, "Failed to update reservation")
	}

	s.LogInfo(ctx, "Reservation modified",
		slog.String("reservation_id", updated.ReservationID),
		slog.String("workspace_id", updated.WorkspaceID),
		slog.String("date", domain.FormatDate(updated.Date)))
	return &updated, nil
}

func (s *reservationService) Delete(ctx context.Context, reservationID string, requestingIdentity string) error {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if err := s.authorizeReservation(ctx, reservation, requestingIdentity); err != nil {
		return err
	}

	unlock := s.locks.Lock(reservationKey(reservationID))
	defer unlock()

	if err := s.reservationRepo.DeleteReservation(ctx, reservationID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete reservation", slog.String("reservation_id", reservationID))
		}
		return err
	}

	s.LogInfo(ctx, "Reservation deleted", slog.String("reservation_id", reservationID))
	return nil
}

func (s *reservationService) GetReservation(ctx context.Context, reservationID string, requestingIdentity string) (*domain.Reservation, error) {
	reservation, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeReservation(ctx, reservation, requestingIdentity); err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) ListForUser(ctx context.Context, userHandle string) ([]domain.Reservation, error) {
	user, err := s.userRepo.FindUserByHandle(ctx, userHandle)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		s.LogError(ctx, err, "Failed to resolve user", slog.String("user", userHandle))
		return nil, err
	}

	reservations, err := s.reservationRepo.FindReservationsByUserID(ctx, user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reservations for user", slog.String("user_id", user.UserID))
		return nil, err
	}
	return reservations, nil
}

func (s *reservationService) ListAll(ctx context.Context, requestingIdentity string) ([]domain.Reservation, error) {
	if !domain.IsAdministrator(requestingIdentity) {
		return s.ListForUser(ctx, requestingIdentity)
	}

	reservations, err := s.reservationRepo.FindAllReservations(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reservations")
		return nil, err
	}
	return reservations, nil
}

func (s *reservationService) SearchAvailable(ctx context.Context, category domain.WorkspaceCategory, city string, date time.Time) ([]domain.Workspace, error) {
	if !category.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown workspace category %q", category))
	}
	date = domain.NormalizeDate(date)

	candidates, err := s.workspaceRepo.ListWorkspacesByCategoryAndCity(ctx, category, strings.TrimSpace(city))
	if err != nil {
		s.LogError(ctx, err, "Failed to search workspaces",
			slog.String("category", string(category)),
			slog.String("city", city))
		return nil, err
	}

	available := make([]domain.Workspace, 0, len(candidates))
	for _, ws := range candidates {
		booked, err := s.reservationRepo.ExistsReservationForWorkspace(ctx, ws.WorkspaceID, date, "")
		if err != nil {
			s.LogError(ctx, err, "Failed to check workspace availability", slog.String("workspace_id", ws.WorkspaceID))
			return nil, err
		}
		if !booked {
			available = append(available, ws)
		}
	}
	return available, nil
}

func (s *reservationService) findReservation(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find reservation", slog.String("reservation_id", reservationID))
		}
		return nil, err
	}
	return reservation, nil
}

func (s *reservationService) authorizeReservation(ctx context.Context, reservation *domain.Reservation, requestingIdentity string) error {
	var ownerHandle string
	owner, err := s.userRepo.FindUserByID(ctx, reservation.UserID)
	switch {
	case err == nil:
		ownerHandle = owner.Handle
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to resolve reservation owner", slog.String("user_id", reservation.UserID))
		return err
	}
	return s.AuthorizeOwner(ctx, requestingIdentity, ownerHandle)
}

// storeError passes uniqueness rejections from the store through unchanged.
func (s *reservationService) storeError(ctx context.Context, err error, msg string) error {
	if reason, ok := domain.RejectionReasonOf(err); ok {
		s.LogInfo(ctx, "Reservation rejected by store", slog.String("reason", string(reason)))
		return err
	}
	s.LogError(ctx, err, msg)
	return fmt.Errorf("%s: %w", strings.ToLower(msg), err)
}
