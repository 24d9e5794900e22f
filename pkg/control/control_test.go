package control_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/async"
	"github.com/dmitrymomot/formkit/pkg/control"
)

func failWith(code string, payload control.Payload) control.ValidatorFunc {
	return func(*control.Control) control.Errors {
		return control.NewErrors(code, payload)
	}
}

func pass(*control.Control) control.Errors { return nil }

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("get and has", func(t *testing.T) {
		errs := control.Errors{
			{Code: "minlength", Payload: control.Payload{"requiredLength": 5}},
			{Code: "required"},
		}

		assert.True(t, errs.Has("required"))
		assert.False(t, errs.Has("pattern"))
		p, ok := errs.Get("minlength")
		require.True(t, ok)
		assert.Equal(t, 5, p["requiredLength"])
		assert.Equal(t, []string{"minlength", "required"}, errs.Codes())
	})

	t.Run("merge keeps first position and newest payload", func(t *testing.T) {
		a := control.Errors{
			{Code: "min", Payload: control.Payload{"min": 1}},
			{Code: "required"},
		}
		b := control.Errors{
			{Code: "pattern"},
			{Code: "min", Payload: control.Payload{"min": 2}},
		}

		merged := a.Merge(b)
		assert.Equal(t, []string{"min", "required", "pattern"}, merged.Codes())
		p, _ := merged.Get("min")
		assert.Equal(t, 2, p["min"])
		// source untouched
		p, _ = a.Get("min")
		assert.Equal(t, 1, p["min"])
	})

	t.Run("merge with nothing returns receiver", func(t *testing.T) {
		var errs control.Errors
		assert.Nil(t, errs.Merge(nil))
	})

	t.Run("payload property lookup", func(t *testing.T) {
		var nilPayload control.Payload
		_, ok := nilPayload.Property("x")
		assert.False(t, ok)

		v, ok := control.Payload{"x": 1}.Property("x")
		assert.True(t, ok)
		assert.Equal(t, 1, v)
	})
}

func TestControlShape(t *testing.T) {
	t.Parallel()

	name := control.NewLeaf("Ann")
	tags := control.NewArray([]*control.Control{control.NewLeaf("a"), nil, control.NewLeaf("b")})
	form := control.NewGroup([]control.Field{
		{Name: "name", Control: name},
		{Name: "skipped"},
		{Name: "tags", Control: tags},
	})

	assert.Equal(t, control.KindGroup, form.Kind())
	assert.Equal(t, control.KindArray, tags.Kind())
	assert.Equal(t, control.KindLeaf, name.Kind())
	assert.Equal(t, "group", form.Kind().String())

	assert.Equal(t, map[string]any{"name": "Ann", "tags": []any{"a", "b"}}, form.Value())
	assert.Len(t, form.Fields(), 2)
	assert.Len(t, tags.Items(), 2)
	assert.Nil(t, name.Fields())
	assert.Nil(t, name.Items())

	child, err := form.Child("name")
	require.NoError(t, err)
	assert.Same(t, name, child)

	_, err = form.Child("missing")
	assert.ErrorIs(t, err, control.ErrUnknownChild)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("records sync errors in validator order", func(t *testing.T) {
		c := control.NewLeaf("x", control.WithValidators(
			failWith("minlength", control.Payload{"requiredLength": 3}),
			nil,
			pass,
			failWith("pattern", nil),
		))

		require.NoError(t, c.Validate(context.Background()))
		assert.Equal(t, []string{"minlength", "pattern"}, c.Errors().Codes())
		assert.False(t, c.Valid())

		p, ok := c.Error("minlength")
		require.True(t, ok)
		assert.Equal(t, 3, p["requiredLength"])
	})

	t.Run("async validators run only when sync pass", func(t *testing.T) {
		called := false
		asyncV := func(_ context.Context, _ *control.Control) *async.Future[control.Errors] {
			called = true
			return async.Resolved(control.NewErrors("taken", nil))
		}

		failing := control.NewLeaf("", control.WithValidators(failWith("required", nil)), control.WithAsyncValidators(asyncV))
		require.NoError(t, failing.Validate(context.Background()))
		assert.False(t, called)
		assert.Equal(t, []string{"required"}, failing.Errors().Codes())

		passing := control.NewLeaf("bob", control.WithValidators(pass), control.WithAsyncValidators(asyncV))
		require.NoError(t, passing.Validate(context.Background()))
		assert.True(t, called)
		assert.Equal(t, []string{"taken"}, passing.Errors().Codes())
	})

	t.Run("async validator that runs in background", func(t *testing.T) {
		slow := func(ctx context.Context, c *control.Control) *async.Future[control.Errors] {
			return async.Async(ctx, c.Value(), func(_ context.Context, v any) (control.Errors, error) {
				time.Sleep(10 * time.Millisecond)
				if v == "admin" {
					return control.NewErrors("reserved", control.Payload{"value": v}), nil
				}
				return nil, nil
			})
		}

		c := control.NewLeaf("admin", control.WithAsyncValidators(slow))
		require.NoError(t, c.Validate(context.Background()))
		assert.True(t, c.Errors().Has("reserved"))
	})

	t.Run("async failure aborts validation", func(t *testing.T) {
		boom := errors.New("lookup failed")
		broken := func(_ context.Context, _ *control.Control) *async.Future[control.Errors] {
			return async.Rejected[control.Errors](boom)
		}

		form := control.NewGroup([]control.Field{
			{Name: "user", Control: control.NewLeaf("x", control.WithAsyncValidators(broken))},
		})

		err := form.Validate(context.Background())
		assert.ErrorIs(t, err, control.ErrAsyncValidation)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("group validity follows children", func(t *testing.T) {
		name := control.NewLeaf("", control.WithValidators(failWith("required", nil)))
		form := control.NewGroup([]control.Field{{Name: "name", Control: name}})

		require.NoError(t, form.Validate(context.Background()))
		assert.Empty(t, form.Errors())
		assert.False(t, form.Valid())
		assert.True(t, name.Errors().Has("required"))
	})

	t.Run("revalidation clears stale errors", func(t *testing.T) {
		fail := true
		v := func(*control.Control) control.Errors {
			if fail {
				return control.NewErrors("required", nil)
			}
			return nil
		}

		c := control.NewLeaf("", control.WithValidators(v))
		require.NoError(t, c.Validate(context.Background()))
		assert.False(t, c.Valid())

		fail = false
		require.NoError(t, c.Validate(context.Background()))
		assert.True(t, c.Valid())
	})
}

func TestLift(t *testing.T) {
	t.Parallel()

	assert.Nil(t, control.Lift(nil))

	lifted := control.Lift(failWith("required", nil))
	future := lifted(context.Background(), control.NewLeaf(nil))
	assert.True(t, future.IsComplete())

	errs, err := future.Await()
	require.NoError(t, err)
	assert.True(t, errs.Has("required"))
}
