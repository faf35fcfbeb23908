package services

import (
	"github.com/go-playground/validator/v10"
)

// bindingValidator reads the same `binding` tags gin uses for request bodies,
// so rows that do not come through HTTP follow identical rules.
var bindingValidator = newBindingValidator()

func newBindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}
