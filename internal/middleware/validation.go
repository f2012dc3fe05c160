package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hoangle/english-center/internal/pkg/timeslot"
)

// RegisterValidators attaches domain validators to gin's binding engine so
// request DTOs can tag fields with them.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		_, err := timeslot.ParseClock(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, err := timeslot.ParseWeekday(fl.Field().String())
		return err == nil
	})
}

// FormatValidationError creates a human-readable validation error message
func FormatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "clocktime":
		return e.Field() + " must be a HH:MM wall-clock time"
	case "weekday":
		return e.Field() + " must be a lowercase weekday name"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
