package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/kr1119/portfolio-backend/internal/domain"
)

// newValidator returns a validator with the "plan" tag bound to catalog.
func newValidator(catalog *domain.Catalog) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("plan", func(fl validator.FieldLevel) bool {
		_, ok := catalog.Lookup(fl.Field().String())
		return ok
	})
	return v
}
