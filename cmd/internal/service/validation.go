package service

import (
	"consultas/cmd/internal/utils"
	"consultas/cmd/internal/utils/apierror"
	"consultas/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
)

type AppointmentRequest struct {
	Name             string `json:"name" validate:"required"`
	IdentifierNumber string `json:"identifier_number" validate:"required,identifier"`
	Specialty        string `json:"specialty" validate:"required"`
	Date             string `json:"date" validate:"required"`
	Time             string `json:"time" validate:"required"`
}

// NewValidator returns a validator with the scheduler's custom tags.
func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("identifier", validators.IsIdentifier)
	return validate
}

// ValidateAppointment trims req in place and checks it. Dates and times
// are only checked for presence.
func ValidateAppointment(validate *validator.Validate, req *AppointmentRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}
	return nil
}
