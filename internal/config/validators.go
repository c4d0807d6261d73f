package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/idelchi/hillc/pkg/hill"
)

// registerValidators adds the custom validations and reports fields by their flag label.
func registerValidators(validate *validator.Validate) error {
	if err := validate.RegisterValidation("exclusive", validateExclusive); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	if err := validate.RegisterValidation("alphabet", validateAlphabet); err != nil {
		return fmt.Errorf("registering alphabet validation: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	otherField := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	if field.Kind() == reflect.String && otherField.Kind() == reflect.String {
		return field.String() == "" || otherField.String() == ""
	}

	return true
}

// validateAlphabet accepts the names understood by hill.ParseAlphabet.
func validateAlphabet(fl validator.FieldLevel) bool {
	_, err := hill.ParseAlphabet(fl.Field().String())

	return err == nil
}
