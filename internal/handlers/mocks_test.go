package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	portssvc "github.com/SscSPs/desk_reservation_app/internal/core/ports/services"
	"github.com/SscSPs/desk_reservation_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock Reservation Service ---
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) GetReservation(ctx context.Context, reservationID string, requestingIdentity string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID, requestingIdentity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) ListForUser(ctx context.Context, userHandle string) ([]domain.Reservation, error) {
	args := m.Called(ctx, userHandle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationService) ListAll(ctx context.Context, requestingIdentity string) ([]domain.Reservation, error) {
	args := m.Called(ctx, requestingIdentity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationService) SearchAvailable(ctx context.Context, category domain.WorkspaceCategory, city string, date time.Time) ([]domain.Workspace, error) {
	args := m.Called(ctx, category, city, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workspace), args.Error(1)
}

func (m *MockReservationService) Create(ctx context.Context, userHandle string, workspaceCode string, date time.Time) (*domain.Reservation, error) {
	args := m.Called(ctx, userHandle, workspaceCode, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Modify(ctx context.Context, reservationID string, newDate *time.Time, newWorkspaceCode *string, requestingIdentity string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID, newDate, newWorkspaceCode, requestingIdentity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Delete(ctx context.Context, reservationID string, requestingIdentity string) error {
	args := m.Called(ctx, reservationID, requestingIdentity)
	return args.Error(0)
}

var _ portssvc.ReservationSvcFacade = (*MockReservationService)(nil)

// --- Mock User Service ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByHandle(ctx context.Context, handle string) (*domain.User, error) {
	args := m.Called(ctx, handle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, requestingIdentity string) ([]domain.User, error) {
	args := m.Called(ctx, requestingIdentity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, handle string, requestingIdentity string) error {
	args := m.Called(ctx, handle, requestingIdentity)
	return args.Error(0)
}

func (m *MockUserService) Authenticate(ctx context.Context, handle, password string) (string, error) {
	args := m.Called(ctx, handle, password)
	return args.String(0), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock Building Service ---
type MockBuildingService struct {
	mock.Mock
}

func (m *MockBuildingService) CreateBuilding(ctx context.Context, req dto.CreateBuildingRequest, requestingIdentity string) (*domain.Building, error) {
	args := m.Called(ctx, req, requestingIdentity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *MockBuildingService) GetBuilding(ctx context.Context, buildingID string) (*domain.Building, error) {
	args := m.Called(ctx, buildingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Building), args.Error(1)
}

func (m *MockBuildingService) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Building), args.Error(1)
}

func (m *MockBuildingService) GetOccupancy(ctx context.Context, buildingID string, date time.Time) (*domain.BuildingOccupancy, error) {
	args := m.Called(ctx, buildingID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BuildingOccupancy), args.Error(1)
}

var _ portssvc.BuildingSvc = (*MockBuildingService)(nil)

// --- Mock Workspace Service ---
type MockWorkspaceService struct {
	mock.Mock
}

func (m *MockWorkspaceService) AddWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest, requestingIdentity string) (*domain.Workspace, error) {
	args := m.Called(ctx, req, requestingIdentity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceService) GetWorkspaceByCode(ctx context.Context, code string) (*domain.Workspace, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceService) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceService) SearchWorkspaces(ctx context.Context, category domain.WorkspaceCategory, city string) ([]domain.Workspace, error) {
	args := m.Called(ctx, category, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceService) DeleteWorkspace(ctx context.Context, code string, requestingIdentity string) error {
	args := m.Called(ctx, code, requestingIdentity)
	return args.Error(0)
}

var _ portssvc.WorkspaceSvc = (*MockWorkspaceService)(nil)
