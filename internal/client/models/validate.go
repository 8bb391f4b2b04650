package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/jobhunt/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// phone: at least 8 digits once punctuation is stripped.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return common.DigitCount(fl.Field().String()) >= 8
	})
	return v
}

// Validate checks v against its validate tags. Failures wrap
// common.ErrorValidation and name each offending field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if m := fieldMessage(fe); !slices.Contains(msgs, m) {
			msgs = append(msgs, m)
		}
	}
	return fmt.Errorf("%w: %s", common.ErrorValidation, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_without":
		return "email or phone is required"
	case "email":
		return "enter a valid email address"
	case "phone":
		return "enter a valid phone number"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, fe.Param())
	case "datauri":
		return field + " must be a data URI"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
