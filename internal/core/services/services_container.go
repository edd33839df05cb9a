package services

import (
	portsrepo "github.com/SscSPs/desk_reservation_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/desk_reservation_app/internal/core/ports/services"
	"github.com/SscSPs/desk_reservation_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The admission engine only ever reads; the lifecycle manager owns all ledger writes.
	container.Admission = NewAdmissionService(repos.UserRepo, repos.WorkspaceRepo, repos.ReservationRepo)
	container.Reservation = NewReservationService(
		container.Admission,
		repos.UserRepo,
		repos.WorkspaceRepo,
		repos.ReservationRepo,
	)

	container.User = NewUserService(repos.UserRepo, repos.ReservationRepo, WithAdministratorPasswordHash(cfg.AdminPasswordHash))
	container.Building = NewBuildingService(repos.BuildingRepo, repos.WorkspaceRepo, repos.ReservationRepo)
	container.Workspace = NewWorkspaceService(repos.WorkspaceRepo, repos.BuildingRepo, repos.ReservationRepo)

	return container
}
