// Package validation checks request payloads at the API boundary.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"careerflow/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enums := map[string]func(string) bool{
		"role":      func(s string) bool { return models.Role(s).Valid() },
		"jobstatus": func(s string) bool { return models.JobStatus(s).Valid() },
		"jobtype":   func(s string) bool { return models.JobType(s).Valid() },
		"appstatus": func(s string) bool { return models.ApplicationStatus(s).Valid() },
	}
	for tag, ok := range enums {
		ok := ok
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return ok(fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("register %s validator: %v", tag, err))
		}
	}
	return v
}

// Struct validates s against its `validate` tags and reports the first failure as a ValidationError.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return models.NewValidationError(describe(verrs[0]))
	}
	return models.NewValidationError(err.Error())
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "role":
		return fmt.Sprintf("%s must be one of: recruiter, user", field)
	case "jobstatus":
		return fmt.Sprintf("%s must be one of: pending, interview, declined, offer", field)
	case "jobtype":
		return fmt.Sprintf("%s must be one of: full-time, part-time, remote, internship", field)
	case "appstatus":
		return fmt.Sprintf("%s must be one of: %s", field, joinStatuses())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func joinStatuses() string {
	parts := make([]string, len(models.ApplicationStatuses))
	for i, s := range models.ApplicationStatuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
