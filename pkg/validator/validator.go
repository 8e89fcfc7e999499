package validator

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SpaBoard/pkg/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	_ = validate.RegisterValidation("bed_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "massage", "facial", "body", "vip":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := types.ParseTimeOfDay(fl.Field().String())
		return err == nil
	})

	// notblank rejects strings made only of whitespace
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Validate validates a struct and returns a map of field errors (nil when valid)
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		switch fe.Tag() {
		case "required", "notblank":
			fields[field] = "This field is required"
		case "min":
			fields[field] = "Value is too short (min: " + fe.Param() + ")"
		case "max":
			fields[field] = "Value is too long (max: " + fe.Param() + ")"
		case "gt", "gte":
			fields[field] = "Value must be greater than " + fe.Param()
		case "bed_type":
			fields[field] = "Invalid bed type. Must be: massage, facial, body or vip"
		case "hhmm":
			fields[field] = "Invalid time. Expected HH:MM"
		default:
			fields[field] = "Invalid value"
		}
	}

	return fields
}

// FieldsError carries per-field validation messages
type FieldsError struct {
	Fields map[string]string
}

func (e *FieldsError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Struct validates s and returns *FieldsError when it is invalid
func Struct(s interface{}) error {
	fields := Validate(s)
	if fields == nil {
		return nil
	}
	return &FieldsError{Fields: fields}
}
