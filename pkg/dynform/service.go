package dynform

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/control"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

const (
	scopeBuiltin = "builtins"
	scopeSync    = "validators"
	scopeAsync   = "async validators"
)

// Service resolves validator configurations into validator functions and
// renders error messages. Registries are read-only once the service is built,
// so a Service is safe for concurrent use.
type Service struct {
	builtins        Registry[control.ValidatorFunc]
	asyncBuiltins   Registry[control.AsyncValidatorFunc]
	validators      Registry[control.ValidatorFunc]
	asyncValidators Registry[control.AsyncValidatorFunc]
	logger          *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithBuiltins replaces the standard validator set.
func WithBuiltins(r Registry[control.ValidatorFunc]) Option {
	return func(s *Service) { s.builtins = r }
}

// WithValidators appends custom synchronous validators.
func WithValidators(entries ...Entry[control.ValidatorFunc]) Option {
	return func(s *Service) { s.validators = append(s.validators, entries...) }
}

// WithAsyncValidators appends custom asynchronous validators.
func WithAsyncValidators(entries ...Entry[control.AsyncValidatorFunc]) Option {
	return func(s *Service) { s.asyncValidators = append(s.asyncValidators, entries...) }
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service with the standard built-ins.
func NewService(opts ...Option) *Service {
	s := &Service{
		builtins: Builtins(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.asyncBuiltins = liftRegistry(s.builtins)
	return s
}

// ValidatorByName resolves a synchronous validator. When args is non-nil the
// matched entry's factory is called with it.
func (s *Service) ValidatorByName(name string, args any) (control.ValidatorFunc, error) {
	v, err := resolve(name, args, s.builtins, s.validators, scopeSync)
	if err != nil {
		s.logFailure(name, err)
	}
	return v, err
}

// AsyncValidatorByName resolves an asynchronous validator. Built-ins take
// precedence and resolve to already-completed futures.
func (s *Service) AsyncValidatorByName(name string, args any) (control.AsyncValidatorFunc, error) {
	v, err := resolve(name, args, s.asyncBuiltins, s.asyncValidators, scopeAsync)
	if err != nil {
		s.logFailure(name, err)
	}
	return v, err
}

// Validator resolves only the first entry of cfg. It returns nil without an
// error when cfg is empty.
func (s *Service) Validator(cfg ValidatorsMap) (control.ValidatorFunc, error) {
	key, c, ok := first(cfg)
	if !ok {
		return nil, nil
	}
	name, args := c.Rule(key)
	return s.ValidatorByName(name, args)
}

// AsyncValidator is the asynchronous counterpart of Validator.
func (s *Service) AsyncValidator(cfg ValidatorsMap) (control.AsyncValidatorFunc, error) {
	key, c, ok := first(cfg)
	if !ok {
		return nil, nil
	}
	name, args := c.Rule(key)
	return s.AsyncValidatorByName(name, args)
}

// Validators resolves every entry of cfg in order. It stops at the first
// entry that cannot be resolved.
func (s *Service) Validators(cfg ValidatorsMap) ([]control.ValidatorFunc, error) {
	return resolveAll(cfg, s.ValidatorByName)
}

// AsyncValidators is the asynchronous counterpart of Validators.
func (s *Service) AsyncValidators(cfg ValidatorsMap) ([]control.AsyncValidatorFunc, error) {
	return resolveAll(cfg, s.AsyncValidatorByName)
}

func (s *Service) logFailure(name string, err error) {
	s.logger.Debug("validator resolution failed", logger.Validator(name), logger.Error(err))
}

func resolve[V any](name string, args any, builtins, registry Registry[V], scope string) (V, error) {
	var zero V
	searched := []string{scopeBuiltin, scope}

	entry, ok := builtins.Find(name)
	if !ok {
		entry, ok = registry.Find(name)
	}
	if !ok {
		return zero, &ValidatorNotFoundError{Name: name, Registries: searched}
	}
	if !entry.Callable() {
		return zero, &ValidatorNotFoundError{Name: name, Registries: searched, Reason: "entry is not callable"}
	}

	if args != nil {
		if entry.Factory == nil {
			return zero, &ValidatorNotFoundError{Name: name, Registries: searched, Reason: "entry does not accept arguments"}
		}
		v, err := entry.Factory(args)
		if err != nil {
			return zero, errors.Join(ErrInvalidValidatorArgs, fmt.Errorf("validator %q: %w", name, err))
		}
		if isNilFunc(v) {
			return zero, &ValidatorNotFoundError{Name: name, Registries: searched, Reason: "factory returned no validator"}
		}
		return v, nil
	}

	if isNilFunc(entry.Validator) {
		return zero, &ValidatorNotFoundError{Name: name, Registries: searched, Reason: "entry requires arguments"}
	}
	return entry.Validator, nil
}

func resolveAll[V any](cfg ValidatorsMap, byName func(string, any) (V, error)) ([]V, error) {
	out := make([]V, 0, cfg.Len())
	var err error
	cfg.Each(func(key string, c ValidatorConfig) bool {
		name, args := c.Rule(key)
		var v V
		if v, err = byName(name, args); err != nil {
			return false
		}
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func first(cfg ValidatorsMap) (string, ValidatorConfig, bool) {
	var (
		key   string
		c     ValidatorConfig
		found bool
	)
	cfg.Each(func(k string, v ValidatorConfig) bool {
		key, c, found = k, v, true
		return false
	})
	return key, c, found
}
