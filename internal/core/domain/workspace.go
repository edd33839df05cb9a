package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/desk_reservation_app/internal/apperrors"
)

// WorkspaceCategory is the kind of a bookable workspace. The string values are
// stable identifiers shared by the API, the database and seed files.
type WorkspaceCategory string

const (
	CategoryPrivateOffice WorkspaceCategory = "PRIVATO"
	CategoryOpenSpace     WorkspaceCategory = "OPENSPACE"
	CategoryMeetingRoom   WorkspaceCategory = "SALA_RIUNIONI"
)

// WorkspaceCategories lists every valid category.
var WorkspaceCategories = []WorkspaceCategory{
	CategoryPrivateOffice,
	CategoryOpenSpace,
	CategoryMeetingRoom,
}

// IsValid reports whether c is one of the known categories.
func (c WorkspaceCategory) IsValid() bool {
	switch c {
	case CategoryPrivateOffice, CategoryOpenSpace, CategoryMeetingRoom:
		return true
	}
	return false
}

// ParseWorkspaceCategory parses a category identifier, ignoring surrounding
// whitespace and letter case.
func ParseWorkspaceCategory(s string) (WorkspaceCategory, error) {
	c := WorkspaceCategory(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unknown workspace category %q", apperrors.ErrValidation, s)
	}
	return c, nil
}

// UnmarshalText rejects unknown categories at every decoding boundary (JSON, YAML).
func (c *WorkspaceCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseWorkspaceCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText emits the identifier unchanged.
func (c WorkspaceCategory) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

// Workspace is a bookable unit inside a building.
type Workspace struct {
	WorkspaceID string            `json:"workspaceID"`
	Code        string            `json:"code"` // Unique human-facing key, e.g. MI001
	Description string            `json:"description"`
	Category    WorkspaceCategory `json:"category"`
	Capacity    int               `json:"capacity"` // Maximum occupants, always > 0
	BuildingID  string            `json:"buildingID"`
	AuditFields
}
