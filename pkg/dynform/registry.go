package dynform

import (
	"reflect"

	"github.com/samber/lo"

	"github.com/dmitrymomot/formkit/pkg/control"
)

// Factory builds a validator from configuration arguments.
type Factory[V any] func(args any) (V, error)

// Entry is a named validator. Validator is used when a rule is configured
// without arguments, Factory when arguments are present. An entry may provide
// either or both.
type Entry[V any] struct {
	Name      string
	Validator V
	Factory   Factory[V]
}

// Callable reports whether the entry provides a validator or a factory.
func (e Entry[V]) Callable() bool {
	return !isNilFunc(e.Validator) || e.Factory != nil
}

// Registry is an ordered list of named validators searched by exact name.
// When names repeat, the first entry wins.
type Registry[V any] []Entry[V]

// Find returns the first entry named name.
func (r Registry[V]) Find(name string) (Entry[V], bool) {
	return lo.Find(r, func(e Entry[V]) bool { return e.Name == name })
}

// Names returns entry names in registry order without duplicates.
func (r Registry[V]) Names() []string {
	return lo.Uniq(lo.Map(r, func(e Entry[V], _ int) string { return e.Name }))
}

// SyncEntry is a shorthand for an entry holding a plain synchronous validator.
func SyncEntry(name string, v control.ValidatorFunc) Entry[control.ValidatorFunc] {
	return Entry[control.ValidatorFunc]{Name: name, Validator: v}
}

// SyncFactoryEntry is a shorthand for an entry holding a synchronous validator factory.
func SyncFactoryEntry(name string, f Factory[control.ValidatorFunc]) Entry[control.ValidatorFunc] {
	return Entry[control.ValidatorFunc]{Name: name, Factory: f}
}

// AsyncEntry is a shorthand for an entry holding a plain asynchronous validator.
func AsyncEntry(name string, v control.AsyncValidatorFunc) Entry[control.AsyncValidatorFunc] {
	return Entry[control.AsyncValidatorFunc]{Name: name, Validator: v}
}

// AsyncFactoryEntry is a shorthand for an entry holding an asynchronous validator factory.
func AsyncFactoryEntry(name string, f Factory[control.AsyncValidatorFunc]) Entry[control.AsyncValidatorFunc] {
	return Entry[control.AsyncValidatorFunc]{Name: name, Factory: f}
}

// liftRegistry exposes synchronous entries as asynchronous ones.
func liftRegistry(r Registry[control.ValidatorFunc]) Registry[control.AsyncValidatorFunc] {
	return lo.Map(r, func(e Entry[control.ValidatorFunc], _ int) Entry[control.AsyncValidatorFunc] {
		lifted := Entry[control.AsyncValidatorFunc]{Name: e.Name}
		if e.Validator != nil {
			lifted.Validator = control.Lift(e.Validator)
		}
		if f := e.Factory; f != nil {
			lifted.Factory = func(args any) (control.AsyncValidatorFunc, error) {
				v, err := f(args)
				if err != nil {
					return nil, err
				}
				return control.Lift(v), nil
			}
		}
		return lifted
	})
}

func isNilFunc(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
