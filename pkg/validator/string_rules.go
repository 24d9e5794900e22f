package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/control"
)

// Required reports "required" when the value is empty.
func Required(c *control.Control) control.Errors {
	if isEmpty(c.Value()) {
		return control.NewErrors("required", nil)
	}
	return nil
}

// RequiredTrue reports "required" unless the value is boolean true.
func RequiredTrue(c *control.Control) control.Errors {
	if v, ok := c.Value().(bool); ok && v {
		return nil
	}
	return control.NewErrors("required", nil)
}

// MinLength reports "minlength" when the value is shorter than n.
// Values without a length are ignored.
func MinLength(n int) control.ValidatorFunc {
	return func(c *control.Control) control.Errors {
		v := c.Value()
		if isEmpty(v) {
			return nil
		}
		l, ok := length(v)
		if !ok || l >= n {
			return nil
		}
		return control.NewErrors("minlength", control.Payload{
			"requiredLength": n,
			"actualLength":   l,
		})
	}
}

// MaxLength reports "maxlength" when the value is longer than n.
func MaxLength(n int) control.ValidatorFunc {
	return func(c *control.Control) control.Errors {
		l, ok := length(c.Value())
		if !ok || l <= n {
			return nil
		}
		return control.NewErrors("maxlength", control.Payload{
			"requiredLength": n,
			"actualLength":   l,
		})
	}
}

// Pattern reports "pattern" when a string value does not match expr.
// Unanchored expressions are anchored at both ends. An empty expression
// yields Null.
func Pattern(expr string) (control.ValidatorFunc, error) {
	if expr == "" {
		return Null, nil
	}

	anchored := expr
	if !strings.HasPrefix(anchored, "^") {
		anchored = "^" + anchored
	}
	if !strings.HasSuffix(anchored, "$") {
		anchored += "$"
	}

	re, err := regexp.Compile(anchored)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	return PatternRegexp(re), nil
}

// PatternRegexp reports "pattern" when the value does not match re.
// Non-string values are formatted with fmt.Sprint before matching.
func PatternRegexp(re *regexp.Regexp) control.ValidatorFunc {
	if re == nil {
		return Null
	}
	return func(c *control.Control) control.Errors {
		v := c.Value()
		if isEmpty(v) {
			return nil
		}
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprint(v)
		}
		if re.MatchString(s) {
			return nil
		}
		return control.NewErrors("pattern", control.Payload{
			"requiredPattern": re.String(),
			"actualValue":     s,
		})
	}
}
