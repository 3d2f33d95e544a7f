package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the validate struct tags on v and reports the first set of
// failing fields.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
