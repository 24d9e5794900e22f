package dynform

import (
	"fmt"
	"math"
	"regexp"

	"github.com/dmitrymomot/formkit/pkg/control"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Builtins returns the standard validator set. Built-ins are consulted before
// any registry supplied to the Service.
//
// Flag rules (required, email, ...) accept a boolean argument: true enables
// the rule and false replaces it with a null validator. Parameterised rules
// (min, maxLength, pattern, ...) must be configured with an argument.
func Builtins() Registry[control.ValidatorFunc] {
	return Registry[control.ValidatorFunc]{
		flagEntry("required", validator.Required),
		flagEntry("requiredTrue", validator.RequiredTrue),
		flagEntry("email", validator.Email),
		flagEntry("url", validator.URL),
		flagEntry("uuid", validator.UUID),
		flagEntry("nullValidator", validator.Null),
		SyncFactoryEntry("min", numberFactory(validator.Min)),
		SyncFactoryEntry("max", numberFactory(validator.Max)),
		SyncFactoryEntry("minLength", lengthFactory(validator.MinLength)),
		SyncFactoryEntry("maxLength", lengthFactory(validator.MaxLength)),
		SyncFactoryEntry("pattern", patternFactory),
	}
}

func flagEntry(name string, v control.ValidatorFunc) Entry[control.ValidatorFunc] {
	return Entry[control.ValidatorFunc]{
		Name:      name,
		Validator: v,
		Factory: func(args any) (control.ValidatorFunc, error) {
			enabled, ok := args.(bool)
			if !ok {
				return nil, fmt.Errorf("expected boolean, got %T", args)
			}
			if !enabled {
				return validator.Null, nil
			}
			return v, nil
		},
	}
}

func numberFactory(build func(float64) control.ValidatorFunc) Factory[control.ValidatorFunc] {
	return func(args any) (control.ValidatorFunc, error) {
		n, ok := validator.ToFloat(args)
		if !ok {
			return nil, fmt.Errorf("expected number, got %T", args)
		}
		return build(n), nil
	}
}

func lengthFactory(build func(int) control.ValidatorFunc) Factory[control.ValidatorFunc] {
	return func(args any) (control.ValidatorFunc, error) {
		n, err := intArg(args)
		if err != nil {
			return nil, err
		}
		return build(n), nil
	}
}

func patternFactory(args any) (control.ValidatorFunc, error) {
	switch p := args.(type) {
	case string:
		return validator.Pattern(p)
	case *regexp.Regexp:
		return validator.PatternRegexp(p), nil
	default:
		return nil, fmt.Errorf("expected pattern string, got %T", args)
	}
}

// intArg accepts integers and integral floats, which is what YAML and JSON
// decoders produce for numeric arguments.
func intArg(args any) (int, error) {
	f, ok := validator.ToFloat(args)
	if !ok {
		return 0, fmt.Errorf("expected integer, got %T", args)
	}
	if f != math.Trunc(f) || f < 0 || f >= math.MaxInt {
		return 0, fmt.Errorf("expected non-negative integer, got %v", args)
	}
	return int(f), nil
}
