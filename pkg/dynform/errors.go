package dynform

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidatorNotFound matches every *ValidatorNotFoundError via errors.Is.
	ErrValidatorNotFound = errors.New("validator not found")

	// ErrInvalidValidatorArgs is returned when a validator factory rejects its arguments.
	ErrInvalidValidatorArgs = errors.New("invalid validator arguments")

	// ErrNilModel is returned when building a control from a nil model.
	ErrNilModel = errors.New("nil form model")

	// ErrInvalidConfig is returned when a validators or messages object cannot be decoded.
	ErrInvalidConfig = errors.New("invalid form configuration")

	// Parsing
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON form definition")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML form definition")
	ErrUnsupportedFormat    = errors.New("unsupported form definition format")
	ErrEmptyDefinition      = errors.New("empty form definition")
)

// ValidatorNotFoundError reports a rule name that could not be resolved to a
// callable validator.
type ValidatorNotFoundError struct {
	Name       string
	Registries []string
	Reason     string
}

func (e *ValidatorNotFoundError) Error() string {
	msg := fmt.Sprintf("validator %q is not provided via %s", e.Name, strings.Join(e.Registries, " or "))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is reports whether target is ErrValidatorNotFound.
func (e *ValidatorNotFoundError) Is(target error) bool {
	return target == ErrValidatorNotFound
}
