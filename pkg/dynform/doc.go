// Package dynform resolves the validator configuration of dynamic form models
// into validator functions and renders human-readable error messages from
// validation failures.
//
// # Validator resolution
//
// A model declares validators as an ordered map from entry key to
// configuration. A configuration is either shorthand, where the key is the
// rule name and the value its arguments, or expanded, where the value is a
// mapping with an explicit "name" and optional "args":
//
//	validators:
//	  required: ~                 # shorthand, no arguments
//	  minLength: 3                # shorthand, factory called with 3
//	  short:                      # expanded
//	    name: maxLength
//	    args: 20
//
// Names are resolved against the built-in set first (see Builtins) and then
// against the custom registry passed to NewService. Synchronous and
// asynchronous registries are separate. A rule with arguments resolves through
// the entry's factory; a rule without arguments resolves to the entry's
// validator. Any name that cannot be resolved fails with a
// *ValidatorNotFoundError, while empty configuration resolves to no
// validators.
//
//	svc := dynform.NewService(
//	    dynform.WithValidators(dynform.SyncEntry("slug", slugValidator)),
//	    dynform.WithAsyncValidators(dynform.AsyncEntry("uniqueEmail", uniqueEmail)),
//	)
//	validators, err := svc.Validators(model.Validators)
//
// # Error messages
//
// Templates use {{ name }} placeholders. Names prefixed with "validator." are
// read from the error payload of the failed rule, everything else from the
// model:
//
//	errorMessages:
//	  required: "{{ label }} is required"
//	  minLength: "{{ label }} must be at least {{ validator.requiredLength }} characters"
//
// ErrorMessages renders one message per failed rule for leaf controls and a
// single message (the model's first template) for group and array controls.
// The lowercase minlength and maxlength error codes are looked up as
// minLength and maxLength.
//
// Missing and falsy values (including 0 and false) render as an empty string.
//
// # Forms
//
// Build turns a Model tree into a control.Control tree, Report gathers the
// messages of failing controls by path, and Check does both around a
// validation run. Form definitions can be read from YAML or JSON with
// NewParserForFile; the order of validators and errorMessages keys is kept.
package dynform
