package composer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shhac/burrow/internal/domain"
	apperrors "github.com/shhac/burrow/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks the method and URL of a normalized draft. The first
// failing field is reported as a ValidationError.
func Validate(d domain.Draft) error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate draft: %w", err)
	}

	fe := fieldErrs[0]
	return apperrors.ValidationError{
		Field:   fe.Field(),
		Message: formatError(fe),
	}
}

func formatError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field missing"
	case "oneof":
		return fmt.Sprintf("invalid value: %v", fe.Value())
	case "http_url":
		return fmt.Sprintf("not a valid http(s) URL: %v", fe.Value())
	}
	return fe.Error()
}
