package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// monthYearLayout is the ledger bucket key format, e.g. "2025-08".
const monthYearLayout = "2006-01"

// validMonthYear implements the `monthyear` binding tag.
func validMonthYear(fl validator.FieldLevel) bool {
	_, err := time.Parse(monthYearLayout, fl.Field().String())
	return err == nil
}

// RegisterCustomValidations registers the application's custom binding tags
// on the given validator engine. Called once at startup.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("monthyear", validMonthYear)
}
