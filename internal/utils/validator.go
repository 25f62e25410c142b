package utils

import (
	"github.com/go-playground/validator/v10"

	"github.com/bloodbanker/bloodbanker-server/internal/model"
)

// RequestValidator adapts go-playground/validator to echo.Validator.
type RequestValidator struct {
	validator *validator.Validate
}

// NewRequestValidator registers the domain tags "role" and
// "donation_status" next to the built-in rules.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "role", func(fl validator.FieldLevel) bool {
		return model.ValidRole(fl.Field().String())
	})
	mustRegister(v, "donation_status", func(fl validator.FieldLevel) bool {
		return model.ValidDonationStatus(fl.Field().String())
	})
	return &RequestValidator{validator: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("register validation " + tag + ": " + err.Error())
	}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
