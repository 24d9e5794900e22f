package validator

import (
	"reflect"

	"github.com/dmitrymomot/formkit/pkg/control"
)

// Null never reports errors.
func Null(*control.Control) control.Errors {
	return nil
}

// Compose runs validators in order and merges their errors.
// It returns nil when no validators are given.
func Compose(validators ...control.ValidatorFunc) control.ValidatorFunc {
	present := make([]control.ValidatorFunc, 0, len(validators))
	for _, v := range validators {
		if v != nil {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return nil
	}

	return func(c *control.Control) control.Errors {
		var errs control.Errors
		for _, v := range present {
			errs = errs.Merge(v(c))
		}
		return errs
	}
}

// isEmpty reports whether v should be treated as "no input".
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if l, ok := length(v); ok {
		return l == 0
	}
	return false
}

// length returns the length of strings, slices, arrays and maps.
func length(v any) (int, bool) {
	switch t := v.(type) {
	case string:
		return len([]rune(t)), true
	case []any:
		return len(t), true
	case map[string]any:
		return len(t), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return len([]rune(rv.String())), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	case reflect.Pointer:
		if rv.IsNil() {
			return 0, true
		}
	}
	return 0, false
}
