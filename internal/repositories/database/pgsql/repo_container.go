package pgsql

import (
	portsrepo "github.com/SscSPs/desk_reservation_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		BuildingRepo:    newPgxBuildingRepository(dbPool),
		WorkspaceRepo:   newPgxWorkspaceRepository(dbPool),
		ReservationRepo: newPgxReservationRepository(dbPool),
	}
}
