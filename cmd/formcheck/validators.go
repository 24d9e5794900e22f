package main

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/control"
	"github.com/dmitrymomot/formkit/pkg/dynform"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// reservedNames are rejected by the notReserved async validator.
var reservedNames = []string{"admin", "root", "support", "system"}

func newService(log *slog.Logger) *dynform.Service {
	return dynform.NewService(
		dynform.WithLogger(log),
		dynform.WithValidators(
			dynform.SyncEntry("slug", slug),
			dynform.SyncFactoryEntry("oneOf", oneOf),
		),
		dynform.WithAsyncValidators(
			dynform.AsyncEntry("notReserved", notReserved),
		),
	)
}

// slug reports "slug" for values that are not lowercase dash-separated words.
func slug(c *control.Control) control.Errors {
	s, _ := c.Value().(string)
	if s == "" || slugRegex.MatchString(s) {
		return nil
	}
	return control.NewErrors("slug", control.Payload{"actualValue": s})
}

// oneOf builds a validator that accepts only the listed values.
func oneOf(args any) (control.ValidatorFunc, error) {
	list, ok := args.([]any)
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("expected non-empty list, got %T", args)
	}
	allowed := make([]string, 0, len(list))
	for _, v := range list {
		allowed = append(allowed, fmt.Sprint(v))
	}

	return func(c *control.Control) control.Errors {
		v := c.Value()
		if v == nil || slices.Contains(allowed, fmt.Sprint(v)) {
			return nil
		}
		return control.NewErrors("oneOf", control.Payload{"allowed": strings.Join(allowed, ", ")})
	}, nil
}

// notReserved rejects reserved account names. It stands in for a lookup
// against an external store.
func notReserved(ctx context.Context, c *control.Control) *async.Future[control.Errors] {
	return async.Async(ctx, c.Value(), func(_ context.Context, v any) (control.Errors, error) {
		s, _ := v.(string)
		if slices.Contains(reservedNames, strings.ToLower(s)) {
			return control.NewErrors("reserved", control.Payload{"value": s}), nil
		}
		return nil, nil
	})
}
