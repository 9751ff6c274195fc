package validators

import (
	"consultas/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
)

// IsIdentifier accepts national identifier numbers holding exactly
// 11 digits; dots, dashes and spaces are ignored.
func IsIdentifier(fl validator.FieldLevel) bool {
	return utils.IsIdentifier(fl.Field().String())
}
