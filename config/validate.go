package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their configuration key
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	return v
}

// Validate checks c field by field and reports every failure at once.
func Validate(c Config) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, describe(e))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

// describe renders one failure as "sweep.eta.step: must be > 0".
func describe(e validator.FieldError) string {
	field := e.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:] // drop the root struct name
	}
	field = strings.ToLower(field)

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", field)
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s], got %v", field, e.Param(), e.Value())
	case "gt":
		return fmt.Sprintf("%s: must be > %s, got %v", field, e.Param(), e.Value())
	case "gte":
		return fmt.Sprintf("%s: must be >= %s, got %v", field, e.Param(), e.Value())
	case "lte":
		return fmt.Sprintf("%s: must be <= %s, got %v", field, e.Param(), e.Value())
	case "gtefield":
		return fmt.Sprintf("%s: must not be below %s", field, strings.ToLower(e.Param()))
	case "min":
		return fmt.Sprintf("%s: needs at least %s entries", field, e.Param())
	default:
		return fmt.Sprintf("%s: failed %s", field, e.Tag())
	}
}
