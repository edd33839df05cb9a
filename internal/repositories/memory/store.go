// Package memory implements the directory and ledger ports on top of process
// memory. It enforces the same uniqueness and referential rules as the
// PostgreSQL schema so services behave identically against either backend.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_reservation_app/internal/core/ports/repositories"
)

type dayKey struct {
	id   string
	date time.Time
}

// Store is a mutex-guarded arena of entities keyed by ID.
type Store struct {
	mu sync.RWMutex

	users        map[string]domain.User
	buildings    map[string]domain.Building
	workspaces   map[string]domain.Workspace
	reservations map[string]domain.Reservation

	// secondary indexes mirroring the SQL unique constraints
	userByHandle         map[string]string
	userByEmail          map[string]string
	workspaceByCode      map[string]string
	reservationByWsDay   map[dayKey]string
	reservationByUserDay map[dayKey]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:                make(map[string]domain.User),
		buildings:            make(map[string]domain.Building),
		workspaces:           make(map[string]domain.Workspace),
		reservations:         make(map[string]domain.Reservation),
		userByHandle:         make(map[string]string),
		userByEmail:          make(map[string]string),
		workspaceByCode:      make(map[string]string),
		reservationByWsDay:   make(map[dayKey]string),
		reservationByUserDay: make(map[dayKey]string),
	}
}

// NewRepositoryProvider exposes a single store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        store,
		BuildingRepo:    store,
		WorkspaceRepo:   store,
		ReservationRepo: store,
	}
}

var (
	_ portsrepo.UserRepositoryFacade        = (*Store)(nil)
	_ portsrepo.BuildingRepositoryFacade    = (*Store)(nil)
	_ portsrepo.WorkspaceRepositoryFacade   = (*Store)(nil)
	_ portsrepo.ReservationRepositoryFacade = (*Store)(nil)
)

// --- users ---

func (s *Store) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (s *Store) FindUserByHandle(ctx context.Context, handle string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.userByHandle[handle]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	u := s.users[id]
	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })
	return out, nil
}

func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.userByHandle[user.Handle]; taken {
		return apperrors.NewDuplicateError("handle " + user.Handle + " already in use")
	}
	email := strings.ToLower(user.Email)
	if _, taken := s.userByEmail[email]; taken {
		return apperrors.NewDuplicateError("email " + user.Email + " already in use")
	}
	s.users[user.UserID] = user
	s.userByHandle[user.Handle] = user.UserID
	s.userByEmail[email] = user.UserID
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return apperrors.ErrNotFound
	}
	for _, r := range s.reservations {
		if r.UserID == userID {
			return apperrors.NewConflictError("user " + u.Handle + " still has reservations")
		}
	}
	delete(s.users, userID)
	delete(s.userByHandle, u.Handle)
	delete(s.userByEmail, strings.ToLower(u.Email))
	return nil
}

// --- buildings ---

func (s *Store) FindBuildingByID(ctx context.Context, buildingID string) (*domain.Building, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.buildings[buildingID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &b, nil
}

func (s *Store) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Building, 0, len(s.buildings))
	for _, b := range s.buildings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].City != out[j].City {
			return out[i].City < out[j].City
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *Store) CountBuildings(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.buildings), nil
}

func (s *Store) SaveBuilding(ctx context.Context, building domain.Building) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.buildings[building.BuildingID]; exists {
		return apperrors.NewDuplicateError("building ID " + building.BuildingID + " already exists")
	}
	s.buildings[building.BuildingID] = building
	return nil
}

// --- workspaces ---

func (s *Store) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.workspaces[workspaceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &w, nil
}

func (s *Store) FindWorkspaceByCode(ctx context.Context, code string) (*domain.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.workspaceByCode[code]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	w := s.workspaces[id]
	return &w, nil
}

func (s *Store) ListWorkspacesByBuilding(ctx context.Context, buildingID string) ([]domain.Workspace, error) {
	return s.filterWorkspaces(func(w domain.Workspace) bool { return w.BuildingID == buildingID }), nil
}

func (s *Store) ListWorkspacesByCategoryAndCity(ctx context.Context, category domain.WorkspaceCategory, city string) ([]domain.Workspace, error) {
	s.mu.RLock()
	inCity := make(map[string]bool)
	for id, b := range s.buildings {
		if strings.EqualFold(b.City, city) {
			inCity[id] = true
		}
	}
	s.mu.RUnlock()
	return s.filterWorkspaces(func(w domain.Workspace) bool {
		return w.Category == category && inCity[w.BuildingID]
	}), nil
}

func (s *Store) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	return s.filterWorkspaces(func(domain.Workspace) bool { return true }), nil
}

func (s *Store) filterWorkspaces(keep func(domain.Workspace) bool) []domain.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Workspace{}
	for _, w := range s.workspaces {
		if keep(w) {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func (s *Store) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buildings[workspace.BuildingID]; !ok {
		return apperrors.NewNotFoundError("building " + workspace.BuildingID + " not found")
	}
	if _, taken := s.workspaceByCode[workspace.Code]; taken {
		return apperrors.NewDuplicateError("workspace code " + workspace.Code + " already exists")
	}
	s.workspaces[workspace.WorkspaceID] = workspace
	s.workspaceByCode[workspace.Code] = workspace.WorkspaceID
	return nil
}

func (s *Store) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workspaces[workspaceID]
	if !ok {
		return apperrors.ErrNotFound
	}
	for _, r := range s.reservations {
		if r.WorkspaceID == workspaceID {
			return apperrors.NewConflictError("workspace " + w.Code + " still has reservations")
		}
	}
	delete(s.workspaces, workspaceID)
	delete(s.workspaceByCode, w.Code)
	return nil
}

// --- reservations ---

func (s *Store) ExistsReservationForWorkspace(ctx context.Context, workspaceID string, date time.Time, excludingReservationID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.reservationByWsDay[dayKey{workspaceID, domain.NormalizeDate(date)}]
	return ok && id != excludingReservationID, nil
}

func (s *Store) ExistsReservationForUser(ctx context.Context, userID string, date time.Time, excludingReservationID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.reservationByUserDay[dayKey{userID, domain.NormalizeDate(date)}]
	return ok && id != excludingReservationID, nil
}

func (s *Store) FindReservationsForBuildingOnDate(ctx context.Context, buildingID string, date time.Time) ([]domain.Reservation, error) {
	day := domain.NormalizeDate(date)
	return s.filterReservations(func(r domain.Reservation) bool {
		w, ok := s.workspaces[r.WorkspaceID]
		return ok && w.BuildingID == buildingID && r.Date.Equal(day)
	}), nil
}

func (s *Store) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reservations[reservationID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (s *Store) FindReservationsByUserID(ctx context.Context, userID string) ([]domain.Reservation, error) {
	return s.filterReservations(func(r domain.Reservation) bool { return r.UserID == userID }), nil
}

func (s *Store) FindAllReservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.filterReservations(func(domain.Reservation) bool { return true }), nil
}

func (s *Store) CountReservationsByUser(ctx context.Context, userID string) (int, error) {
	return s.countReservations(func(r domain.Reservation) bool { return r.UserID == userID }), nil
}

func (s *Store) CountReservationsByWorkspace(ctx context.Context, workspaceID string) (int, error) {
	return s.countReservations(func(r domain.Reservation) bool { return r.WorkspaceID == workspaceID }), nil
}

func (s *Store) countReservations(match func(domain.Reservation) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.reservations {
		if match(r) {
			n++
		}
	}
	return n
}

// filterReservations runs keep under the read lock.
func (s *Store) filterReservations(keep func(domain.Reservation) bool) []domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Reservation{}
	for _, r := range s.reservations {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ReservationID < out[j].ReservationID
	})
	return out
}

func (s *Store) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.reservations[reservation.ReservationID]; exists {
		return apperrors.NewDuplicateError("reservation ID " + reservation.ReservationID + " already exists")
	}
	reservation.Date = domain.NormalizeDate(reservation.Date)
	if err := s.checkReferencesLocked(reservation); err != nil {
		return err
	}
	if err := s.checkUniqueLocked(reservation); err != nil {
		return err
	}
	s.indexLocked(reservation)
	return nil
}

func (s *Store) UpdateReservation(ctx context.Context, reservation domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.reservations[reservation.ReservationID]
	if !ok {
		return apperrors.ErrNotFound
	}
	reservation.Date = domain.NormalizeDate(reservation.Date)
	if err := s.checkReferencesLocked(reservation); err != nil {
		return err
	}
	if err := s.checkUniqueLocked(reservation); err != nil {
		return err
	}
	s.unindexLocked(current)
	s.indexLocked(reservation)
	return nil
}

func (s *Store) DeleteReservation(ctx context.Context, reservationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[reservationID]
	if !ok {
		return apperrors.ErrNotFound
	}
	s.unindexLocked(r)
	return nil
}

func (s *Store) checkReferencesLocked(r domain.Reservation) error {
	if _, ok := s.users[r.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	if _, ok := s.workspaces[r.WorkspaceID]; !ok {
		return domain.ErrWorkspaceNotFound
	}
	return nil
}

// checkUniqueLocked mirrors the (workspace, date) and (user, date) unique constraints.
func (s *Store) checkUniqueLocked(r domain.Reservation) error {
	if id, ok := s.reservationByWsDay[dayKey{r.WorkspaceID, r.Date}]; ok && id != r.ReservationID {
		return domain.ErrWorkspaceAlreadyBooked
	}
	if id, ok := s.reservationByUserDay[dayKey{r.UserID, r.Date}]; ok && id != r.ReservationID {
		return domain.ErrUserAlreadyBooked
	}
	return nil
}

func (s *Store) indexLocked(r domain.Reservation) {
	s.reservations[r.ReservationID] = r
	s.reservationByWsDay[dayKey{r.WorkspaceID, r.Date}] = r.ReservationID
	s.reservationByUserDay[dayKey{r.UserID, r.Date}] = r.ReservationID
}

func (s *Store) unindexLocked(r domain.Reservation) {
	delete(s.reservations, r.ReservationID)
	delete(s.reservationByWsDay, dayKey{r.WorkspaceID, r.Date})
	delete(s.reservationByUserDay, dayKey{r.UserID, r.Date})
}
