package dto

import (
	"regexp"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

var handlePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RegisterValidators installs the request validation tags used by the DTOs:
// workspace_category, iso_date and handle.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("workspace_category", validateWorkspaceCategory); err != nil {
		return err
	}
	if err := v.RegisterValidation("iso_date", validateISODate); err != nil {
		return err
	}
	return v.RegisterValidation("handle", validateHandle)
}

func validateWorkspaceCategory(fl validator.FieldLevel) bool {
	_, err := domain.ParseWorkspaceCategory(fl.Field().String())
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := domain.ParseDate(fl.Field().String())
	return err == nil
}

func validateHandle(fl validator.FieldLevel) bool {
	return handlePattern.MatchString(fl.Field().String())
}
