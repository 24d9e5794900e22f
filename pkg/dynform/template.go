package dynform

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
)

const validatorScope = "validator."

var placeholderRegex = regexp.MustCompile(`\{\{\s*(.+?)\s*\}\}`)

// Render interpolates {{ name }} placeholders in a single pass.
//
// A placeholder starting with "validator." reads the rest of the expression
// from errPayload when one is given; every other placeholder reads the whole
// expression from model. Missing and falsy values (nil, false, zero, "")
// render as an empty string.
func Render(template string, model PropertySource, errPayload PropertySource) string {
	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		sub := placeholderRegex.FindStringSubmatch(match)
		if len(sub) < 2 {
			return ""
		}
		expr := sub[1]

		source, name := model, expr
		if rest, ok := strings.CutPrefix(expr, validatorScope); ok && errPayload != nil {
			source, name = errPayload, rest
		}
		if source == nil {
			return ""
		}

		v, ok := source.Property(name)
		if !ok || !truthy(v) {
			return ""
		}
		return fmt.Sprint(v)
	})
}

func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
