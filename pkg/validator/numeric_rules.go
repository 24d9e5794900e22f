package validator

import (
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/control"
)

// Min reports "min" when a numeric value is less than min.
// Empty and non-numeric values are ignored.
func Min(min float64) control.ValidatorFunc {
	return func(c *control.Control) control.Errors {
		v := c.Value()
		if isEmpty(v) {
			return nil
		}
		n, ok := ToFloat(v)
		if !ok || n >= min {
			return nil
		}
		return control.NewErrors("min", control.Payload{"min": min, "actual": v})
	}
}

// Max reports "max" when a numeric value is greater than max.
func Max(max float64) control.ValidatorFunc {
	return func(c *control.Control) control.Errors {
		v := c.Value()
		if isEmpty(v) {
			return nil
		}
		n, ok := ToFloat(v)
		if !ok || n <= max {
			return nil
		}
		return control.NewErrors("max", control.Payload{"max": max, "actual": v})
	}
}

// ToFloat converts numbers and numeric strings to float64. NaN is rejected.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
