package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	portssvc "github.com/SscSPs/desk_reservation_app/internal/core/ports/services"
	"github.com/SscSPs/desk_reservation_app/internal/dto"
	"github.com/SscSPs/desk_reservation_app/internal/handlers"
	"github.com/SscSPs/desk_reservation_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	june1 = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	june2 = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
)

func sameDay(want time.Time) interface{} {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	cfg          *config.Config
	reservations *MockReservationService
	users        *MockUserService
	buildings    *MockBuildingService
	workspaces   *MockWorkspaceService
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterBindingValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		IsProduction:      true,
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTIssuer:         "deskres-test",
		JWTExpiryDuration: time.Hour,
		RateLimit:         "1000-M",
		CacheTTL:          time.Minute,
	}
	suite.reservations = new(MockReservationService)
	suite.users = new(MockUserService)
	suite.buildings = new(MockBuildingService)
	suite.workspaces = new(MockWorkspaceService)

	suite.router = gin.New()
	err := handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Reservation: suite.reservations,
		User:        suite.users,
		Building:    suite.buildings,
		Workspace:   suite.workspaces,
	})
	suite.Require().NoError(err)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.reservations.AssertExpectations(suite.T())
	suite.users.AssertExpectations(suite.T())
	suite.buildings.AssertExpectations(suite.T())
	suite.workspaces.AssertExpectations(suite.T())
}

// generateTestToken creates a signed JWT for the given identity.
func (suite *HandlerTestSuite) generateTestToken(identity string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    suite.cfg.JWTIssuer,
		Subject:   identity,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.cfg.JWTSecret))
	suite.Require().NoError(err)
	return signed
}

// do serves a request as identity; an empty identity sends no token.
func (suite *HandlerTestSuite) do(method, path, identity string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if identity != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(identity))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestLogin_IssuesTokenForIdentity() {
	suite.users.On("Authenticate", mock.Anything, "alice", "").Return("alice", nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Handle: "alice"})
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(3600), resp.ExpiresIn)

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(suite.cfg.JWTSecret), nil
	})
	suite.Require().NoError(err)
	suite.Equal("alice", claims.Subject)
	suite.Equal("deskres-test", claims.Issuer)
}

func (suite *HandlerTestSuite) TestLogin_RejectedCredentials() {
	suite.users.On("Authenticate", mock.Anything, "Administrator", "wrong").
		Return("", apperrors.NewUnauthorizedError("invalid credentials")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Handle: "Administrator", Password: "wrong"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"password": "x"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRegister() {
	req := dto.RegisterUserRequest{Handle: "mario.rossi", Name: "Mario Rossi", Email: "mario@example.com"}
	suite.users.On("RegisterUser", mock.Anything, req).
		Return(&domain.User{UserID: "u1", Handle: "mario.rossi", Name: "Mario Rossi", Email: "mario@example.com"}, nil).Once()
	suite.users.On("RegisterUser", mock.Anything, mock.MatchedBy(func(r dto.RegisterUserRequest) bool { return r.Handle == "taken" })).
		Return(nil, apperrors.NewDuplicateError("handle already registered")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", "", req)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var user dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &user))
	suite.Equal("u1", user.UserID)

	w = suite.do(http.MethodPost, "/api/v1/auth/register", "", dto.RegisterUserRequest{Handle: "taken", Name: "T", Email: "t@example.com"})
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/register", "", dto.RegisterUserRequest{Handle: "has space", Name: "T", Email: "t@example.com"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestProtectedRoutesRequireToken() {
	w := suite.do(http.MethodGet, "/api/v1/reservations", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestCreateReservation_DefaultsToCaller() {
	suite.reservations.On("Create", mock.Anything, "alice", "MI001", sameDay(june1)).
		Return(&domain.Reservation{ReservationID: "r1", UserID: "u-alice", WorkspaceID: "w1", Date: june1}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reservations", "alice", dto.CreateReservationRequest{WorkspaceCode: "MI001", Date: "2025-06-01"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("r1", resp.ReservationID)
	suite.Equal("2025-06-01", resp.Date)
}

func (suite *HandlerTestSuite) TestCreateReservation_OnBehalfOfAnotherUser() {
	w := suite.do(http.MethodPost, "/api/v1/reservations", "alice", dto.CreateReservationRequest{Handle: "bob", WorkspaceCode: "MI001", Date: "2025-06-01"})
	suite.Equal(http.StatusForbidden, w.Code)
	suite.reservations.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	suite.reservations.On("Create", mock.Anything, "bob", "MI001", sameDay(june1)).
		Return(&domain.Reservation{ReservationID: "r2", UserID: "u-bob", WorkspaceID: "w1", Date: june1}, nil).Once()
	w = suite.do(http.MethodPost, "/api/v1/reservations", domain.AdministratorHandle, dto.CreateReservationRequest{Handle: "bob", WorkspaceCode: "MI001", Date: "2025-06-01"})
	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestCreateReservation_RejectionsCarryReason() {
	tests := []struct {
		name       string
		code       string
		err        error
		wantStatus int
		wantReason domain.RejectionReason
	}{
		{"building full", "SOLO01", domain.ErrBuildingAtCapacity, http.StatusConflict, domain.ReasonBuildingAtCapacity},
		{"workspace taken", "MI002", domain.ErrWorkspaceAlreadyBooked, http.StatusConflict, domain.ReasonWorkspaceAlreadyBooked},
		{"user busy", "MI003", domain.ErrUserAlreadyBooked, http.StatusConflict, domain.ReasonUserAlreadyBooked},
		{"unknown workspace", "XX999", domain.ErrWorkspaceNotFound, http.StatusNotFound, domain.ReasonWorkspaceNotFound},
		{"unknown user", "MI004", domain.ErrUserNotFound, http.StatusNotFound, domain.ReasonUserNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.reservations.On("Create", mock.Anything, "alice", tt.code, sameDay(june1)).Return(nil, tt.err).Once()

			w := suite.do(http.MethodPost, "/api/v1/reservations", "alice", dto.CreateReservationRequest{WorkspaceCode: tt.code, Date: "2025-06-01"})
			suite.Equal(tt.wantStatus, w.Code)
			suite.Equal(string(tt.wantReason), suite.decodeError(w).Reason)
		})
	}
}

func (suite *HandlerTestSuite) TestCreateReservation_InvalidInput() {
	w := suite.do(http.MethodPost, "/api/v1/reservations", "alice", dto.CreateReservationRequest{WorkspaceCode: "MI001", Date: "01/06/2025"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/reservations", "alice", dto.CreateReservationRequest{Date: "2025-06-01"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateReservation_InternalErrorIsHidden() {
	suite.reservations.On("Create", mock.Anything, "alice", "MI001", sameDay(june1)).
		Return(nil, errors.New("connection reset by peer")).Once()

	w := suite.do(http.MethodPost, "/api/v1/reservations", "alice", dto.CreateReservationRequest{WorkspaceCode: "MI001", Date: "2025-06-01"})
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to create reservation", suite.decodeError(w).Error)
}

func (suite *HandlerTestSuite) TestModifyReservation() {
	newDate := mock.MatchedBy(func(d *time.Time) bool { return d != nil && d.Equal(june2) })
	suite.reservations.On("Modify", mock.Anything, "r1", newDate, (*string)(nil), "alice").
		Return(&domain.Reservation{ReservationID: "r1", UserID: "u-alice", WorkspaceID: "w1", Date: june2}, nil).Once()

	date := "2025-06-02"
	w := suite.do(http.MethodPatch, "/api/v1/reservations/r1", "alice", dto.ModifyReservationRequest{Date: &date})
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ReservationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-06-02", resp.Date)

	code := "MI002"
	suite.reservations.On("Modify", mock.Anything, "r1", (*time.Time)(nil), &code, "bob").
		Return(nil, apperrors.NewForbiddenError("not the owner")).Once()
	w = suite.do(http.MethodPatch, "/api/v1/reservations/r1", "bob", dto.ModifyReservationRequest{WorkspaceCode: &code})
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestGetAndDeleteReservation() {
	suite.reservations.On("GetReservation", mock.Anything, "r1", "alice").
		Return(&domain.Reservation{ReservationID: "r1", Date: june1}, nil).Once()
	suite.reservations.On("GetReservation", mock.Anything, "missing", "alice").
		Return(nil, apperrors.NewNotFoundError("reservation missing")).Once()
	suite.reservations.On("Delete", mock.Anything, "r1", "alice").Return(nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/reservations/r1", "alice", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/reservations/missing", "alice", nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/reservations/r1", "alice", nil).Code)
}

func (suite *HandlerTestSuite) TestListReservations() {
	suite.reservations.On("ListAll", mock.Anything, "alice").
		Return([]domain.Reservation{{ReservationID: "r1", Date: june1}}, nil).Once()
	suite.reservations.On("ListForUser", mock.Anything, "bob").
		Return([]domain.Reservation{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reservations", "alice", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListReservationsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Reservations, 1)

	suite.Equal(http.StatusForbidden, suite.do(http.MethodGet, "/api/v1/users/bob/reservations", "alice", nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/users/bob/reservations", domain.AdministratorHandle, nil).Code)
}

func (suite *HandlerTestSuite) TestSearchWorkspaces() {
	openMilan := []domain.Workspace{{WorkspaceID: "w2", Code: "MI002", Category: domain.CategoryOpenSpace, Capacity: 15}}
	suite.workspaces.On("SearchWorkspaces", mock.Anything, domain.CategoryOpenSpace, "Milano").Return(openMilan, nil).Once()
	suite.reservations.On("SearchAvailable", mock.Anything, domain.CategoryOpenSpace, "Milano", sameDay(june1)).Return([]domain.Workspace{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/workspaces/search?category=openspace&city=Milano", "alice", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListWorkspacesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Workspaces, 1)
	suite.Equal("MI002", resp.Workspaces[0].Code)

	w = suite.do(http.MethodGet, "/api/v1/workspaces/search?category=OPENSPACE&city=Milano&date=2025-06-01", "alice", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/workspaces/search?category=GARAGE&city=Milano", "alice", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestWorkspaceCatalog() {
	req := dto.CreateWorkspaceRequest{Code: "MI010", Category: "PRIVATO", Capacity: 1, BuildingID: "b1"}
	suite.workspaces.On("AddWorkspace", mock.Anything, req, domain.AdministratorHandle).
		Return(&domain.Workspace{WorkspaceID: "w10", Code: "MI010", Category: domain.CategoryPrivateOffice, Capacity: 1, BuildingID: "b1"}, nil).Once()
	suite.workspaces.On("AddWorkspace", mock.Anything, req, "alice").
		Return(nil, apperrors.NewForbiddenError("only the administrator may add workspaces")).Once()
	suite.workspaces.On("GetWorkspaceByCode", mock.Anything, "MI010").
		Return(&domain.Workspace{WorkspaceID: "w10", Code: "MI010"}, nil).Once()
	suite.workspaces.On("DeleteWorkspace", mock.Anything, "MI010", domain.AdministratorHandle).
		Return(apperrors.NewConflictError("workspace has reservations")).Once()

	suite.Equal(http.StatusCreated, suite.do(http.MethodPost, "/api/v1/workspaces", domain.AdministratorHandle, req).Code)
	suite.Equal(http.StatusForbidden, suite.do(http.MethodPost, "/api/v1/workspaces", "alice", req).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/workspaces/MI010", "alice", nil).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodDelete, "/api/v1/workspaces/MI010", domain.AdministratorHandle, nil).Code)

	bad := req
	bad.Capacity = 0
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/workspaces", domain.AdministratorHandle, bad).Code)
}

func (suite *HandlerTestSuite) TestBuildingListingIsCachedUntilCatalogWrite() {
	buildings := []domain.Building{{BuildingID: "b1", Name: "Grattacielo Milano", City: "Milano"}}
	suite.buildings.On("ListBuildings", mock.Anything).Return(buildings, nil).Twice()
	created := dto.CreateBuildingRequest{Name: "Torre Roma", City: "Roma"}
	suite.buildings.On("CreateBuilding", mock.Anything, created, domain.AdministratorHandle).
		Return(&domain.Building{BuildingID: "b2", Name: "Torre Roma", City: "Roma"}, nil).Once()

	for i := 0; i < 2; i++ {
		suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/buildings", "alice", nil).Code)
	}
	suite.buildings.AssertNumberOfCalls(suite.T(), "ListBuildings", 1)

	suite.Equal(http.StatusCreated, suite.do(http.MethodPost, "/api/v1/buildings", domain.AdministratorHandle, created).Code)

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/buildings", "alice", nil).Code)
	suite.buildings.AssertNumberOfCalls(suite.T(), "ListBuildings", 2)
}

func (suite *HandlerTestSuite) TestBuildingOccupancy() {
	occupancy := domain.NewBuildingOccupancy("b1", june1, 3, 4, 2)
	suite.buildings.On("GetOccupancy", mock.Anything, "b1", sameDay(june1)).Return(&occupancy, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/buildings/b1/occupancy?date=2025-06-01", "alice", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"utilization":"0.75"`)
	suite.Contains(w.Body.String(), `"date":"2025-06-01"`)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/buildings/b1/occupancy", "alice", nil).Code)
}

func (suite *HandlerTestSuite) TestUserDirectory() {
	suite.users.On("ListUsers", mock.Anything, "alice").
		Return(nil, apperrors.NewForbiddenError("only the administrator may list users")).Once()
	suite.users.On("GetUserByHandle", mock.Anything, "alice").
		Return(&domain.User{UserID: "u-alice", Handle: "alice"}, nil).Once()
	suite.users.On("DeleteUser", mock.Anything, "bob", domain.AdministratorHandle).Return(nil).Once()

	suite.Equal(http.StatusForbidden, suite.do(http.MethodGet, "/api/v1/users", "alice", nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/users/alice", "alice", nil).Code)
	suite.Equal(http.StatusForbidden, suite.do(http.MethodGet, "/api/v1/users/bob", "alice", nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/users/bob", domain.AdministratorHandle, nil).Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
