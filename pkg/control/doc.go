// Package control models the nodes of a dynamic form tree and runs their
// validators.
//
// A Control is one of three kinds: KindLeaf holds a single value, KindGroup
// holds named children and KindArray holds ordered children. The kind is fixed
// at construction time and callers dispatch on it with a switch rather than by
// inspecting concrete types.
//
// Validation failures are recorded as an ordered Errors slice. Each Error has a
// short code (for example "required" or "minlength") and a Payload, a plain
// string-keyed map describing the failure (for example requiredLength and
// actualLength). The order of codes is the order in which validators reported
// them, which is what message aggregation relies on.
//
// # Validators
//
// ValidatorFunc inspects a control synchronously and returns nil when valid.
// AsyncValidatorFunc returns a *async.Future carrying the eventual Errors.
// Validate runs the tree bottom-up: children first (concurrently), then the
// control's own synchronous validators and, only when those pass, its
// asynchronous validators.
//
// # Usage
//
//	name := control.NewLeaf("", control.WithValidators(validator.Required))
//	form := control.NewGroup([]control.Field{{Name: "name", Control: name}})
//
//	if err := form.Validate(ctx); err != nil {
//	    // context ended or an async validator failed to run
//	}
//	fmt.Println(name.Errors().Codes()) // [required]
package control
