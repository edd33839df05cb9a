// Package seed loads the starting catalog (buildings, workspaces, users) from YAML.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	portsrepo "github.com/SscSPs/desk_reservation_app/internal/core/ports/repositories"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed default_seed.yaml
var defaultSeed []byte

// seededBy is recorded in the audit fields of seeded rows.
const seededBy = "seed"

// Data is the on-disk seed document.
type Data struct {
	Buildings []Building `yaml:"buildings"`
	Users     []User     `yaml:"users"`
}

type Building struct {
	Name       string      `yaml:"name"`
	Address    string      `yaml:"address"`
	City       string      `yaml:"city"`
	Workspaces []Workspace `yaml:"workspaces"`
}

type Workspace struct {
	Code        string                   `yaml:"code"`
	Description string                   `yaml:"description"`
	Category    domain.WorkspaceCategory `yaml:"category"`
	Capacity    int                      `yaml:"capacity"`
}

type User struct {
	Handle string `yaml:"handle"`
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
}

// Result counts what Apply wrote.
type Result struct {
	Buildings  int
	Workspaces int
	Users      int
	Skipped    bool
}

// Load reads seed data from path, or the built-in catalog when path is empty.
func Load(path string) (*Data, error) {
	if path == "" {
		return Parse(bytes.NewReader(defaultSeed))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates a seed document.
func Parse(r io.Reader) (*Data, error) {
	var data Data
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding seed data: %w", err)
	}
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (d *Data) validate() error {
	codes := map[string]bool{}
	for _, b := range d.Buildings {
		if strings.TrimSpace(b.Name) == "" || strings.TrimSpace(b.City) == "" {
			return fmt.Errorf("%w: seed building needs a name and a city", apperrors.ErrValidation)
		}
		for _, w := range b.Workspaces {
			if w.Code == "" || w.Capacity <= 0 || !w.Category.IsValid() {
				return fmt.Errorf("%w: seed workspace %q in %q is invalid", apperrors.ErrValidation, w.Code, b.Name)
			}
			if codes[w.Code] {
				return fmt.Errorf("%w: seed workspace code %q repeated", apperrors.ErrValidation, w.Code)
			}
			codes[w.Code] = true
		}
	}
	for _, u := range d.Users {
		if domain.IsReservedHandle(u.Handle) {
			return fmt.Errorf("%w: seed user handle %q is reserved", apperrors.ErrValidation, u.Handle)
		}
	}
	return nil
}

// Apply writes the seed catalog when no building exists yet. Ids are derived
// from names and codes so repeated seeding of an empty store is stable.
func Apply(ctx context.Context, repos portsrepo.RepositoryProvider, data *Data, logger *slog.Logger) (Result, error) {
	count, err := repos.BuildingRepo.CountBuildings(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("counting buildings: %w", err)
	}
	if count > 0 {
		logger.Info("Catalog already populated, skipping seed", slog.Int("buildings", count))
		return Result{Skipped: true}, nil
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: seededBy, LastUpdatedAt: now, LastUpdatedBy: seededBy}
	var res Result

	for _, b := range data.Buildings {
		building := domain.Building{
			BuildingID:  stableID("building", b.City+"/"+b.Name),
			Name:        b.Name,
			Address:     b.Address,
			City:        b.City,
			AuditFields: audit,
		}
		if err := repos.BuildingRepo.SaveBuilding(ctx, building); err != nil {
			return res, fmt.Errorf("seeding building %s: %w", b.Name, err)
		}
		res.Buildings++

		for _, w := range b.Workspaces {
			workspace := domain.Workspace{
				WorkspaceID: stableID("workspace", w.Code),
				Code:        w.Code,
				Description: w.Description,
				Category:    w.Category,
				Capacity:    w.Capacity,
				BuildingID:  building.BuildingID,
				AuditFields: audit,
			}
			if err := repos.WorkspaceRepo.SaveWorkspace(ctx, workspace); err != nil {
				return res, fmt.Errorf("seeding workspace %s: %w", w.Code, err)
			}
			res.Workspaces++
		}
	}

	for _, u := range data.Users {
		user := domain.User{
			UserID:      stableID("user", u.Handle),
			Handle:      u.Handle,
			Name:        u.Name,
			Email:       u.Email,
			AuditFields: audit,
		}
		if err := repos.UserRepo.SaveUser(ctx, user); err != nil {
			// users may survive a catalog wipe
			if errors.Is(err, apperrors.ErrDuplicate) {
				logger.Debug("Seed user already registered", slog.String("handle", u.Handle))
				continue
			}
			return res, fmt.Errorf("seeding user %s: %w", u.Handle, err)
		}
		res.Users++
	}

	logger.Info("Seed data applied",
		slog.Int("buildings", res.Buildings),
		slog.Int("workspaces", res.Workspaces),
		slog.Int("users", res.Users))
	return res, nil
}

func stableID(kind, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("desk-reservation/"+kind+"/"+key)).String()
}
