package usecase

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var logoURLPattern = regexp.MustCompile(`^https?://.+`)

// newValidator builds the form validator: field names come from json
// tags so errors line up with the wire/input names, and logo_url is the
// loose http(s) prefix check the logo field uses.
func newValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("logo_url", func(fl validator.FieldLevel) bool {
		return logoURLPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("failed to register logo_url validation: %v", err))
	}

	return validate
}

// FieldError is one failed constraint on one form field.
type FieldError struct {
	Tag   string // validator tag, e.g. "required", "min"
	Param string // tag parameter, e.g. the length bound
}

// fieldMessage maps a field's failed constraint to the message the UI
// renders. First match wins; an empty error yields an empty string.
func fieldMessage(err FieldError) string {
	switch err.Tag {
	case "":
		return ""
	case "required":
		return "This field is mandatory"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param)
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param)
	case "logo_url":
		return "Must be a valid URL (http:// or https://)"
	case "min_date":
		return "Date must be today or later"
	case "id_exists":
		return "This ID already exists"
	default:
		return "Invalid value"
	}
}
