package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"torneos/pkg/lib/patch"
)

var phonePattern = regexp.MustCompile(`^[0-9+\-() ]+$`)

// FieldError is one entry of the structured validation error list.
type FieldError struct {
	Field   string `json:"campo"`
	Message string `json:"mensaje"`
	Rule    string `json:"regla"`
}

// Messages overrides the default text per "field.rule" key, e.g. "nombre.min".
type Messages map[string]string

// New returns a validator that reports json field names, knows the "phone"
// rule and validates patch.Field values as their inner value.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Only fails on a malformed tag, which is a programming error.
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Errorf("register phone rule: %w", err))
	}

	v.RegisterCustomTypeFunc(patchValue, patch.Field[string]{}, patch.Field[int64]{})
	return v
}

// patchValue exposes the inner value of a set, non-null patch field. Absent
// and null fields yield nil so "omitempty" skips them.
func patchValue(field reflect.Value) interface{} {
	switch f := field.Interface().(type) {
	case patch.Field[string]:
		if f.HasValue() {
			return f.Value
		}
	case patch.Field[int64]:
		if f.HasValue() {
			return f.Value
		}
	}
	return nil
}

// Errors converts a validator or JSON decoding error into the field list.
// Any other error yields a single entry without a field.
func Errors(err error, msgs Messages) []FieldError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		out := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			out = append(out, FieldError{
				Field:   fe.Field(),
				Message: message(fe.Field(), fe.Tag(), fe.Param(), msgs),
				Rule:    fe.Tag(),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		return []FieldError{{
			Field:   field,
			Message: message(field, "type", typeErr.Type.String(), msgs),
			Rule:    "type",
		}}
	}

	return []FieldError{{Message: "Cuerpo de la petición inválido", Rule: "json"}}
}

func message(field, tag, param string, msgs Messages) string {
	if m, ok := msgs[field+"."+tag]; ok {
		return m
	}
	switch tag {
	case "required":
		return fmt.Sprintf("El campo %s es requerido", field)
	case "min":
		return fmt.Sprintf("El campo %s debe tener al menos %s caracteres", field, param)
	case "max":
		return fmt.Sprintf("El campo %s no puede exceder %s caracteres", field, param)
	case "gt", "gte":
		return fmt.Sprintf("El campo %s debe ser un número positivo", field)
	case "email":
		return fmt.Sprintf("El campo %s debe ser un email válido", field)
	case "phone":
		return fmt.Sprintf("El campo %s solo puede contener números, +, -, paréntesis y espacios", field)
	case "type":
		return fmt.Sprintf("El campo %s tiene un tipo inválido", field)
	default:
		return fmt.Sprintf("El campo %s no es válido (%s)", field, tag)
	}
}
