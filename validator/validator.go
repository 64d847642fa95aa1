// Package validator holds the shared go-playground instance with the IBAN
// tags registered.
//
//	type Payout struct {
//		Account string `validate:"required,iban"`
//	}
package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/go-iban/iban"
)

var v *validator.Validate

func init() {
	v = validator.New()
	mustRegister("iban", validateIBAN)
	mustRegister("iban_basic", validateIBANBasic)
}

func mustRegister(tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// validateIBAN accepts strings that pass the full country check.
func validateIBAN(fl validator.FieldLevel) bool {
	return iban.IsValid(fl.Field().String())
}

// validateIBANBasic only checks format and check digits, so addresses from
// countries missing in the registry still pass.
func validateIBANBasic(fl validator.FieldLevel) bool {
	_, err := iban.ParseBasic(fl.Field().String())
	return err == nil
}

func Instance() *validator.Validate {
	return v
}

// Validate returns field -> reason pairs, or nil when i is valid.
func Validate(i any) map[string]string {
	if err := v.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string]string)
			for _, e := range errs {
				out[e.Field()] = mapTagToCode(e.Tag())
			}
			return out
		}
		return map[string]string{"_error": "validation_failed"}
	}
	return nil
}

// Var validates a single value against tag, returning the reason on failure.
func Var(value any, tag string) (string, bool) {
	if err := v.Var(value, tag); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return mapTagToCode(errs[0].Tag()), false
		}
		return "validation_failed", false
	}
	return "", true
}
