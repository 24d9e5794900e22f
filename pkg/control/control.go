package control

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/formkit/pkg/async"
)

// Kind identifies the shape of a control.
type Kind int

const (
	KindLeaf Kind = iota
	KindGroup
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindGroup:
		return "group"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// ValidatorFunc inspects a control and returns nil when it is valid.
type ValidatorFunc func(c *Control) Errors

// AsyncValidatorFunc inspects a control and returns a future for its errors.
type AsyncValidatorFunc func(ctx context.Context, c *Control) *async.Future[Errors]

// Field is a named child of a group control.
type Field struct {
	Name    string
	Control *Control
}

// Option configures a control at construction time.
type Option func(*Control)

// WithValidators appends synchronous validators. Nil validators are skipped.
func WithValidators(validators ...ValidatorFunc) Option {
	return func(c *Control) {
		for _, v := range validators {
			if v != nil {
				c.validators = append(c.validators, v)
			}
		}
	}
}

// WithAsyncValidators appends asynchronous validators. Nil validators are skipped.
func WithAsyncValidators(validators ...AsyncValidatorFunc) Option {
	return func(c *Control) {
		for _, v := range validators {
			if v != nil {
				c.asyncValidators = append(c.asyncValidators, v)
			}
		}
	}
}

// Control is a node of a form tree.
type Control struct {
	kind     Kind
	value    any
	names    []string
	children []*Control

	validators      []ValidatorFunc
	asyncValidators []AsyncValidatorFunc

	mu     sync.RWMutex
	errors Errors
}

// NewLeaf creates a control holding a single value.
func NewLeaf(value any, opts ...Option) *Control {
	return newControl(KindLeaf, value, nil, nil, opts)
}

// NewGroup creates a control with named children. Fields with a nil control
// are skipped.
func NewGroup(fields []Field, opts ...Option) *Control {
	names := make([]string, 0, len(fields))
	children := make([]*Control, 0, len(fields))
	for _, f := range fields {
		if f.Control == nil {
			continue
		}
		names = append(names, f.Name)
		children = append(children, f.Control)
	}
	return newControl(KindGroup, nil, names, children, opts)
}

// NewArray creates a control with ordered children. Nil items are skipped.
func NewArray(items []*Control, opts ...Option) *Control {
	children := make([]*Control, 0, len(items))
	for _, item := range items {
		if item != nil {
			children = append(children, item)
		}
	}
	return newControl(KindArray, nil, nil, children, opts)
}

func newControl(kind Kind, value any, names []string, children []*Control, opts []Option) *Control {
	c := &Control{
		kind:     kind,
		value:    value,
		names:    names,
		children: children,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Kind returns the control kind.
func (c *Control) Kind() Kind { return c.kind }

// Value returns the control value. Groups return a map of child values and
// arrays return a slice of item values.
func (c *Control) Value() any {
	switch c.kind {
	case KindGroup:
		v := make(map[string]any, len(c.children))
		for i, child := range c.children {
			v[c.names[i]] = child.Value()
		}
		return v
	case KindArray:
		v := make([]any, 0, len(c.children))
		for _, child := range c.children {
			v = append(v, child.Value())
		}
		return v
	default:
		return c.value
	}
}

// Child returns the named child of a group control.
func (c *Control) Child(name string) (*Control, error) {
	for i, n := range c.names {
		if n == name {
			return c.children[i], nil
		}
	}
	return nil, errors.Join(ErrUnknownChild, errors.New(name))
}

// Fields returns the named children of a group control in declaration order.
func (c *Control) Fields() []Field {
	if c.kind != KindGroup {
		return nil
	}
	fields := make([]Field, 0, len(c.children))
	for i, child := range c.children {
		fields = append(fields, Field{Name: c.names[i], Control: child})
	}
	return fields
}

// Items returns the children of an array control.
func (c *Control) Items() []*Control {
	if c.kind != KindArray {
		return nil
	}
	return append([]*Control(nil), c.children...)
}

// Errors returns the errors recorded by the last validation run.
func (c *Control) Errors() Errors {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(Errors(nil), c.errors...)
}

// SetErrors replaces the recorded errors.
func (c *Control) SetErrors(errs Errors) {
	c.mu.Lock()
	c.errors = errs
	c.mu.Unlock()
}

// Error returns the payload recorded for code.
func (c *Control) Error(code string) (Payload, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errors.Get(code)
}

// Valid reports whether the control and all of its descendants have no errors.
func (c *Control) Valid() bool {
	c.mu.RLock()
	own := len(c.errors)
	c.mu.RUnlock()
	if own > 0 {
		return false
	}
	for _, child := range c.children {
		if !child.Valid() {
			return false
		}
	}
	return true
}

// Validate runs validators over the tree. Children are validated first and
// concurrently. Asynchronous validators only run when the synchronous ones
// report no errors. The returned error is non-nil only when validation could
// not complete; validation failures are recorded on the controls.
func (c *Control) Validate(ctx context.Context) error {
	if len(c.children) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		for _, child := range c.children {
			g.Go(func() error { return child.Validate(gctx) })
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	var errs Errors
	for _, v := range c.validators {
		errs = errs.Merge(v(c))
	}

	if len(errs) == 0 && len(c.asyncValidators) > 0 {
		futures := make([]*async.Future[Errors], 0, len(c.asyncValidators))
		for _, v := range c.asyncValidators {
			futures = append(futures, v(ctx, c))
		}

		results, err := async.WaitAll(ctx, futures...)
		if err != nil {
			return errors.Join(ErrAsyncValidation, err)
		}
		for _, res := range results {
			errs = errs.Merge(res)
		}
	}

	c.SetErrors(errs)
	return nil
}

// Lift adapts a synchronous validator into an asynchronous one whose future
// is already complete.
func Lift(v ValidatorFunc) AsyncValidatorFunc {
	if v == nil {
		return nil
	}
	return func(_ context.Context, c *Control) *async.Future[Errors] {
		return async.Resolved(v(c))
	}
}
