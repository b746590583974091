package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/ironsheep/hsv-picker-mcp/internal/hsv"
)

// ValidationError reports the first configuration field that failed
// validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Message)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("argb_hex", func(fl validator.FieldLevel) bool {
			_, err := hsv.ParseHex(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			lvl := fl.Field().String()
			if lvl == "" {
				return true
			}
			_, err := zerolog.ParseLevel(strings.ToLower(lvl))
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks cfg field by field.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{Field: "config", Message: "configuration is nil"}
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ValidationError{Field: fieldPath(fe.Namespace()), Message: describe(fe)}
		}
		return &ValidationError{Field: "config", Message: err.Error()}
	}
	return nil
}

// fieldPath drops the root type name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "argb_hex":
		return fmt.Sprintf("%q is not a #RGB, #RRGGBB or #AARRGGBB color", fe.Value())
	case "log_level":
		return fmt.Sprintf("%q is not a log level", fe.Value())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
