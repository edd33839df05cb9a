package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	"github.com/SscSPs/desk_reservation_app/internal/repositories/memory"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var (
	june1  = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	july10 = time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)
	july11 = time.Date(2025, time.July, 11, 0, 0, 0, 0, time.UTC)
)

// catalogFixture seeds a memory store with:
//
//	EdificioTest (Milano): TEST001 PRIVATO/1, TEST002 OPENSPACE/1, TEST003 SALA_RIUNIONI/1
//	Solo (Milano):         SOLO01 PRIVATO/1
//	Torre Milano (Milano): MI-OPEN OPENSPACE/20
//	Roma EUR (Roma):       RM-OPEN OPENSPACE/30
//	users: alice, bob, carol, dave
type catalogFixture struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	users map[string]string
	ws    map[string]string
}

func (f *catalogFixture) seedCatalog() {
	f.ctx = context.Background()
	f.store = memory.NewStore()
	f.users = map[string]string{}
	f.ws = map[string]string{}

	buildings := []domain.Building{
		{BuildingID: "b-test", Name: "EdificioTest", City: "Milano"},
		{BuildingID: "b-solo", Name: "Solo", City: "Milano"},
		{BuildingID: "b-torre", Name: "Torre Milano", City: "Milano"},
		{BuildingID: "b-eur", Name: "Roma EUR", City: "Roma"},
	}
	for _, b := range buildings {
		require.NoError(f.T(), f.store.SaveBuilding(f.ctx, b))
	}

	workspaces := []domain.Workspace{
		{WorkspaceID: "w-test001", Code: "TEST001", Category: domain.CategoryPrivateOffice, Capacity: 1, BuildingID: "b-test"},
		{WorkspaceID: "w-test002", Code: "TEST002", Category: domain.CategoryOpenSpace, Capacity: 1, BuildingID: "b-test"},
		{WorkspaceID: "w-test003", Code: "TEST003", Category: domain.CategoryMeetingRoom, Capacity: 1, BuildingID: "b-test"},
		{WorkspaceID: "w-solo01", Code: "SOLO01", Category: domain.CategoryPrivateOffice, Capacity: 1, BuildingID: "b-solo"},
		{WorkspaceID: "w-miopen", Code: "MI-OPEN", Category: domain.CategoryOpenSpace, Capacity: 20, BuildingID: "b-torre"},
		{WorkspaceID: "w-rmopen", Code: "RM-OPEN", Category: domain.CategoryOpenSpace, Capacity: 30, BuildingID: "b-eur"},
	}
	for _, w := range workspaces {
		require.NoError(f.T(), f.store.SaveWorkspace(f.ctx, w))
		f.ws[w.Code] = w.WorkspaceID
	}

	for _, handle := range []string{"alice", "bob", "carol", "dave"} {
		id := "u-" + handle
		require.NoError(f.T(), f.store.SaveUser(f.ctx, domain.User{UserID: id, Handle: handle, Email: handle + "@example.com"}))
		f.users[handle] = id
	}
}

// book writes a reservation straight into the store, bypassing admission.
func (f *catalogFixture) book(id, handle, code string, date time.Time) {
	require.NoError(f.T(), f.store.SaveReservation(f.ctx, domain.Reservation{
		ReservationID: id,
		UserID:        f.users[handle],
		WorkspaceID:   f.ws[code],
		Date:          date,
	}))
}
