package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	"github.com/SscSPs/desk_reservation_app/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, dto.RegisterValidators(v))
	return v
}

func TestCreateWorkspaceRequestValidation(t *testing.T) {
	v := newValidator(t)

	valid := dto.CreateWorkspaceRequest{Code: "MI010", Category: "openspace", Capacity: 12, BuildingID: "b1"}
	assert.NoError(t, v.Struct(valid))

	badCategory := valid
	badCategory.Category = "GARAGE"
	assert.Error(t, v.Struct(badCategory))

	zeroCapacity := valid
	zeroCapacity.Capacity = 0
	assert.Error(t, v.Struct(zeroCapacity))
}

func TestReservationRequestValidation(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(dto.CreateReservationRequest{WorkspaceCode: "MI001", Date: "2025-06-01"}))
	assert.Error(t, v.Struct(dto.CreateReservationRequest{WorkspaceCode: "MI001", Date: "01/06/2025"}))

	assert.NoError(t, v.Struct(dto.ModifyReservationRequest{}))
	bad := "2025-13-40"
	assert.Error(t, v.Struct(dto.ModifyReservationRequest{Date: &bad}))
}

func TestRegisterUserRequestValidation(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(dto.RegisterUserRequest{Handle: "mario.rossi", Name: "Mario", Email: "mario@example.com"}))
	assert.Error(t, v.Struct(dto.RegisterUserRequest{Handle: "mario rossi", Name: "Mario", Email: "mario@example.com"}))
	assert.Error(t, v.Struct(dto.RegisterUserRequest{Handle: "mario", Name: "Mario", Email: "not-an-email"}))
}

func TestResponseConversions(t *testing.T) {
	day := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	res := dto.ToListReservationsResponse([]domain.Reservation{
		{ReservationID: "r1", UserID: "u1", WorkspaceID: "w1", Date: day},
		{ReservationID: "r2", UserID: "u2", WorkspaceID: "w2", Date: day.AddDate(0, 0, 1)},
	})
	require.Len(t, res.Reservations, 2)
	assert.Equal(t, "2025-06-01", res.Reservations[0].Date)
	assert.Equal(t, "r2", res.Reservations[1].ReservationID)

	occ := domain.NewBuildingOccupancy("b1", day, 3, 4, 2)
	out := dto.ToOccupancyResponse(&occ)
	assert.Equal(t, "2025-06-01", out.Date)
	assert.True(t, decimal.RequireFromString("0.75").Equal(out.Utilization))
}
