package validator

import (
	"fmt"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/control"
)

// formats checks single values against go-playground tags; it is safe for
// concurrent use.
var formats = playground.New()

// Email reports "email" when a non-empty value is not a valid email address.
func Email(c *control.Control) control.Errors {
	return tagRule(c, "email", "email")
}

// URL reports "url" when a non-empty value is not an absolute URL.
func URL(c *control.Control) control.Errors {
	return tagRule(c, "url", "url")
}

// UUID reports "uuid" when a non-empty value is not a canonical UUID.
func UUID(c *control.Control) control.Errors {
	v := c.Value()
	if isEmpty(v) {
		return nil
	}
	s, ok := v.(string)
	if !ok || len(s) != 36 {
		return control.NewErrors("uuid", nil)
	}
	if _, err := uuid.Parse(s); err != nil {
		return control.NewErrors("uuid", nil)
	}
	return nil
}

func tagRule(c *control.Control, tag, code string) control.Errors {
	v := c.Value()
	if isEmpty(v) {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	if err := formats.Var(s, tag); err != nil {
		return control.NewErrors(code, nil)
	}
	return nil
}
