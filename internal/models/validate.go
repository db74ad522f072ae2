package models

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
	// report fields by their wire name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(interface{ Valid() bool })
		return ok && e.Valid()
	})
	return v
}

// Validate checks the validate tags of v. The returned error wraps ErrInvalid
// and names the first offending field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("%w: field %q is required", ErrInvalid, fe.Field())
		case "enum":
			return fmt.Errorf("%w: field %q has unknown value %q", ErrInvalid, fe.Field(), fe.Value())
		}
		return fmt.Errorf("%w: field %q failed %s", ErrInvalid, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}
