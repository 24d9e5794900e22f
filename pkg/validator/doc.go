// Package validator provides the standard validators available to every
// dynamic form: required, requiredTrue, email, url, uuid, min, max,
// minLength, maxLength, pattern and nullValidator.
//
// Each validator is a control.ValidatorFunc or a constructor returning one
// (for parameterised rules such as MinLength(5)). Validators report failures
// as control.Errors using the conventional error codes and payload keys, so
// message templates can reference them:
//
//	code        payload keys
//	required    (none)
//	email       (none)
//	url         (none)
//	uuid        (none)
//	min         min, actual
//	max         max, actual
//	minlength   requiredLength, actualLength
//	maxlength   requiredLength, actualLength
//	pattern     requiredPattern, actualValue
//
// Apart from required and requiredTrue, validators treat an empty value (nil,
// empty string, empty slice or map) as valid so that optional fields only
// report format problems once the user enters something.
//
// # Usage
//
//	name := control.NewLeaf("", control.WithValidators(
//	    validator.Required,
//	    validator.MinLength(3),
//	))
//
// The package is stateless and safe for concurrent use.
package validator
