package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its `validate` struct tags.
func ValidateRequest(s interface{}) error {
	return validate.Struct(s)
}
