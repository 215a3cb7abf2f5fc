package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers the project's custom rules on the
// given validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("br_state", isStateCode); err != nil {
		return err
	}
	if err := v.RegisterValidation("order_code", isOrderCode); err != nil {
		return err
	}
	return nil
}

var stateCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

// Two-letter uppercase state code.
func isStateCode(fl validator.FieldLevel) bool {
	return stateCodeRe.MatchString(fl.Field().String())
}

var orderCodeRe = regexp.MustCompile(`^OS-\d{4}-\d{4}$`)

func isOrderCode(fl validator.FieldLevel) bool {
	return orderCodeRe.MatchString(fl.Field().String())
}
