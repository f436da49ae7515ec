package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator plugs go-playground/validator into Echo's c.Validate call
// and flattens the per-field failures into one readable message.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator builds the validator assigned to echo.Echo.Validator at wiring
// time.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, describeFailure(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// describeFailure turns one failed rule into a message that names the field
// without echoing back whatever the client sent.
func describeFailure(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("missing required field %q", field)
	case "email":
		return fmt.Sprintf("%q is not a valid email address", field)
	case "min":
		return fmt.Sprintf("%q needs at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%q violates rule %q", field, fe.Tag())
	}
}
