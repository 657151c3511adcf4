package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its `validate` tags using the shared
// instance.
func Struct(v any) error {
	return validate.Struct(v)
}
