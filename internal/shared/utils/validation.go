package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"datarequests/internal/shared/errors"
)

// Validation messages surfaced to API callers.
const (
	MsgMissingValue = "Missing value"
	MsgRequired     = "This field is required."
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank rejects strings made only of whitespace.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return true
		}
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// ValidateStruct validates s and returns a field-level validation error keyed
// by JSON field name, or nil.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationError("Validation failed", err.Error())
	}

	fields := make(map[string][]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = append(fields[fe.Field()], fieldErrorMessage(fe))
	}
	return errors.NewFieldValidationError(fields)
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgMissingValue
	case "notblank":
		return MsgRequired
	case "oneof":
		opts := strings.Fields(fe.Param())
		quoted := make([]string, len(opts))
		for i, o := range opts {
			quoted[i] = fmt.Sprintf("%q", o)
		}
		return "Must be " + strings.Join(quoted, " or ")
	case "max":
		return fmt.Sprintf("Must be at most %s characters long", fe.Param())
	case "uuid":
		return "Must be a valid identifier"
	default:
		return fmt.Sprintf("Failed validation for '%s'", fe.Tag())
	}
}
