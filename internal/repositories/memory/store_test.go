package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	"github.com/SscSPs/desk_reservation_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.SaveBuilding(ctx, domain.Building{BuildingID: "b-mi", Name: "Grattacielo Milano", City: "Milano"}))
	require.NoError(t, s.SaveBuilding(ctx, domain.Building{BuildingID: "b-rm", Name: "Roma EUR", City: "Roma"}))
	require.NoError(t, s.SaveWorkspace(ctx, domain.Workspace{WorkspaceID: "w1", Code: "MI001", Category: domain.CategoryPrivateOffice, Capacity: 1, BuildingID: "b-mi"}))
	require.NoError(t, s.SaveWorkspace(ctx, domain.Workspace{WorkspaceID: "w2", Code: "MI002", Category: domain.CategoryOpenSpace, Capacity: 15, BuildingID: "b-mi"}))
	require.NoError(t, s.SaveWorkspace(ctx, domain.Workspace{WorkspaceID: "w3", Code: "RM003", Category: domain.CategoryOpenSpace, Capacity: 30, BuildingID: "b-rm"}))
	require.NoError(t, s.SaveUser(ctx, domain.User{UserID: "u1", Handle: "alice", Email: "alice@example.com"}))
	require.NoError(t, s.SaveUser(ctx, domain.User{UserID: "u2", Handle: "bob", Email: "bob@example.com"}))
	return s
}

var day = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestStore_UserUniqueness(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	err := s.SaveUser(ctx, domain.User{UserID: "u3", Handle: "alice", Email: "other@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	err = s.SaveUser(ctx, domain.User{UserID: "u3", Handle: "carol", Email: "ALICE@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	u, err := s.FindUserByHandle(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "u2", u.UserID)

	_, err = s.FindUserByHandle(ctx, "nobody")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_WorkspaceCatalog(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	err := s.SaveWorkspace(ctx, domain.Workspace{WorkspaceID: "w9", Code: "MI001", Capacity: 1, BuildingID: "b-mi"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	err = s.SaveWorkspace(ctx, domain.Workspace{WorkspaceID: "w9", Code: "XX001", Capacity: 1, BuildingID: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	ws, err := s.ListWorkspacesByBuilding(ctx, "b-mi")
	require.NoError(t, err)
	assert.Len(t, ws, 2)
	assert.Equal(t, "MI001", ws[0].Code)

	open, err := s.ListWorkspacesByCategoryAndCity(ctx, domain.CategoryOpenSpace, "milano")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "MI002", open[0].Code)
}

func TestStore_ReservationUniqueConstraints(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)

	require.NoError(t, s.SaveReservation(ctx, domain.Reservation{ReservationID: "r1", UserID: "u1", WorkspaceID: "w1", Date: day}))

	err := s.SaveReservation(ctx, domain.Reservation{ReservationID: "r2", UserID: "u2", WorkspaceID: "w1", Date: day})
	assert.ErrorIs(t, err, domain.ErrWorkspaceAlreadyBooked)

	err = s.SaveReservation(ctx, domain.Reservation{ReservationID: "r2", UserID: "u1", WorkspaceID: "w2", Date: day})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyBooked)

	err = s.SaveReservation(ctx, domain.Reservation{ReservationID: "r2", UserID: "ghost", WorkspaceID: "w2", Date: day})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	exists, err := s.ExistsReservationForWorkspace(ctx, "w1", day, "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.ExistsReservationForWorkspace(ctx, "w1", day, "r1")
	require.NoError(t, err)
	assert.False(t, exists, "own reservation must be excluded")

	exists, err = s.ExistsReservationForUser(ctx, "u1", day.Add(24*time.Hour), "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_UpdateReservationReindexes(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	require.NoError(t, s.SaveReservation(ctx, domain.Reservation{ReservationID: "r1", UserID: "u1", WorkspaceID: "w1", Date: day}))

	next := day.AddDate(0, 0, 1)
	require.NoError(t, s.UpdateReservation(ctx, domain.Reservation{ReservationID: "r1", UserID: "u1", WorkspaceID: "w1", Date: next}))

	exists, _ := s.ExistsReservationForWorkspace(ctx, "w1", day, "")
	assert.False(t, exists)
	exists, _ = s.ExistsReservationForWorkspace(ctx, "w1", next, "")
	assert.True(t, exists)

	err := s.UpdateReservation(ctx, domain.Reservation{ReservationID: "missing", UserID: "u1", WorkspaceID: "w1", Date: next})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_BuildingDayQueryAndRestrictedDeletes(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	require.NoError(t, s.SaveReservation(ctx, domain.Reservation{ReservationID: "r1", UserID: "u1", WorkspaceID: "w1", Date: day}))
	require.NoError(t, s.SaveReservation(ctx, domain.Reservation{ReservationID: "r2", UserID: "u2", WorkspaceID: "w3", Date: day}))

	inMilan, err := s.FindReservationsForBuildingOnDate(ctx, "b-mi", day)
	require.NoError(t, err)
	require.Len(t, inMilan, 1)
	assert.Equal(t, "r1", inMilan[0].ReservationID)

	assert.ErrorIs(t, s.DeleteUser(ctx, "u1"), apperrors.ErrConflict)
	assert.ErrorIs(t, s.DeleteWorkspace(ctx, "w1"), apperrors.ErrConflict)

	require.NoError(t, s.DeleteReservation(ctx, "r1"))
	assert.NoError(t, s.DeleteWorkspace(ctx, "w1"))
	assert.NoError(t, s.DeleteUser(ctx, "u1"))
	assert.ErrorIs(t, s.DeleteReservation(ctx, "r1"), apperrors.ErrNotFound)
}

func TestStore_CountReservations(t *testing.T) {
	ctx := context.Background()
	s := seededStore(t)
	require.NoError(t, s.SaveReservation(ctx, domain.Reservation{ReservationID: "r1", UserID: "u1", WorkspaceID: "w1", Date: day}))
	require.NoError(t, s.SaveReservation(ctx, domain.Reservation{ReservationID: "r2", UserID: "u1", WorkspaceID: "w1", Date: day.AddDate(0, 0, 1)}))
	require.NoError(t, s.SaveReservation(ctx, domain.Reservation{ReservationID: "r3", UserID: "u2", WorkspaceID: "w2", Date: day}))

	n, err := s.CountReservationsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.CountReservationsByWorkspace(ctx, "w2")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.CountReservationsByWorkspace(ctx, "w3")
	require.NoError(t, err)
	assert.Zero(t, n)
}
