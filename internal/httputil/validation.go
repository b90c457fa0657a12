package httputil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		panic("gin does not use go-playground/validator")
	}

	// Errors name fields the way clients send them
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := f.Tag.Get("json")
		if tag == "" {
			tag = f.Tag.Get("form")
		}

		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// FieldError is a violated constraint on a single field.
type FieldError struct {
	Field   string `json:"field" example:"dueDay"`
	Message string `json:"message" example:"must be at most 31"`
}

// ValidationError lists all violated constraints of a request.
type ValidationError []FieldError

func (e ValidationError) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return strings.Join(parts, "; ")
}

// Invalid returns a ValidationError for a single field.
func Invalid(field, message string) ValidationError {
	return ValidationError{{Field: field, Message: message}}
}

// Validate validates v with its binding tags.
func Validate(v any) error {
	return translate(binding.Validator.ValidateStruct(v))
}

// ValidatePartial validates only the named struct fields of v.
func ValidatePartial(v any, fields ...string) error {
	engine := binding.Validator.Engine().(*validator.Validate)
	return translate(engine.StructPartial(v, fields...))
}

// TranslateQuery converts errors from binding the query string.
// Values that cannot be parsed at all yield ErrInvalidQuery.
func TranslateQuery(err error) error {
	err = translate(err)

	var v ValidationError
	if err != nil && !errors.As(err, &v) {
		return ErrInvalidQuery
	}
	return err
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	result := make(ValidationError, 0, len(errs))
	for _, e := range errs {
		result = append(result, FieldError{Field: e.Field(), Message: message(e)})
	}
	return result
}

func message(e validator.FieldError) string {
	isString := e.Kind() == reflect.String

	switch e.Tag() {
	case "required", "notblank":
		return "must not be empty"
	case "max", "lte":
		if isString {
			return fmt.Sprintf("must not be longer than %s characters", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	case "min", "gte":
		if isString {
			return fmt.Sprintf("must be at least %s characters long", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "ne":
		return fmt.Sprintf("must not be %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.ReplaceAll(e.Param(), " ", ", "))
	}
	return "is not valid"
}
