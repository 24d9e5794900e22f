package dynform_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/dynform"
)

func TestParseValidatorConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      any
		kind     dynform.ConfigKind
		wantName string
		wantArgs any
	}{
		{name: "nil", raw: nil, kind: dynform.ConfigShorthand, wantName: "key"},
		{name: "scalar", raw: 5, kind: dynform.ConfigShorthand, wantName: "key", wantArgs: 5},
		{
			name:     "expanded",
			raw:      map[string]any{"name": "minlength", "args": 5},
			kind:     dynform.ConfigExpanded,
			wantName: "minlength",
			wantArgs: 5,
		},
		{
			name:     "expanded without args",
			raw:      map[string]any{"name": "required"},
			kind:     dynform.ConfigExpanded,
			wantName: "required",
		},
		{
			name:     "map with non-string name is shorthand",
			raw:      map[string]any{"name": 1},
			kind:     dynform.ConfigShorthand,
			wantName: "key",
			wantArgs: map[string]any{"name": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := dynform.ParseValidatorConfig(tt.raw)
			assert.Equal(t, tt.kind, cfg.Kind())

			name, args := cfg.Rule("key")
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestValidatorsMapDecoding(t *testing.T) {
	t.Parallel()

	t.Run("yaml keeps declaration order", func(t *testing.T) {
		t.Parallel()
		var vm dynform.ValidatorsMap
		require.NoError(t, yaml.Unmarshal([]byte(`
pattern: "[a-z]+"
required: true
min: {name: min, args: 3}
maxLength: 10
`), &vm))

		assert.Equal(t, []string{"pattern", "required", "min", "maxLength"}, vm.Keys())

		cfg, ok := vm.Get("min")
		require.True(t, ok)
		assert.Equal(t, dynform.ConfigExpanded, cfg.Kind())
		assert.Equal(t, 3, cfg.Args())
	})

	t.Run("json keeps declaration order", func(t *testing.T) {
		t.Parallel()
		var vm dynform.ValidatorsMap
		require.NoError(t, json.Unmarshal([]byte(`{"maxLength": 10, "required": null, "len": {"name": "minLength", "args": 2}}`), &vm))

		assert.Equal(t, []string{"maxLength", "required", "len"}, vm.Keys())

		cfg, ok := vm.Get("required")
		require.True(t, ok)
		assert.Nil(t, cfg.Args())

		name, args := mustGet(t, vm, "len").Rule("len")
		assert.Equal(t, "minLength", name)
		assert.InDelta(t, 2, args, 0)
	})

	t.Run("yaml non-mapping is empty", func(t *testing.T) {
		t.Parallel()
		for _, doc := range []string{`[required]`, `required`, `5`} {
			var vm dynform.ValidatorsMap
			require.NoError(t, yaml.Unmarshal([]byte(doc), &vm), doc)
			assert.Zero(t, vm.Len(), doc)
		}
	})

	t.Run("json non-object is empty", func(t *testing.T) {
		t.Parallel()
		for _, doc := range []string{`["required"]`, `"required"`, `5`, `true`} {
			var vm dynform.ValidatorsMap
			require.NoError(t, json.Unmarshal([]byte(doc), &vm), doc)
			assert.Zero(t, vm.Len(), doc)
		}
	})

	t.Run("broken json still fails", func(t *testing.T) {
		t.Parallel()
		var vm dynform.ValidatorsMap
		assert.Error(t, json.Unmarshal([]byte(`{"required": }`), &vm))
	})

	t.Run("set replaces in place", func(t *testing.T) {
		t.Parallel()
		vm := dynform.ValidatorsMap{}
		vm.Set("a", dynform.Shorthand(1)).Set("b", dynform.Shorthand(2)).Set("a", dynform.Shorthand(3))

		assert.Equal(t, []string{"a", "b"}, vm.Keys())
		assert.Equal(t, 3, mustGet(t, vm, "a").Args())
		assert.Equal(t, 2, vm.Len())
	})

	t.Run("each stops early", func(t *testing.T) {
		t.Parallel()
		vm := dynform.NewValidatorsMap()
		vm.Set("a", dynform.Shorthand(nil)).Set("b", dynform.Shorthand(nil))

		var seen []string
		vm.Each(func(key string, _ dynform.ValidatorConfig) bool {
			seen = append(seen, key)
			return false
		})
		assert.Equal(t, []string{"a"}, seen)
	})
}

func TestErrorMessagesDecoding(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		var em dynform.ErrorMessages
		require.NoError(t, yaml.Unmarshal([]byte(`
required: "{{ label }} is required"
minLength: "too short"
`), &em))

		assert.Equal(t, []string{"required", "minLength"}, em.Codes())
		code, tmpl, ok := em.First()
		require.True(t, ok)
		assert.Equal(t, "required", code)
		assert.Equal(t, "{{ label }} is required", tmpl)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		var em dynform.ErrorMessages
		require.NoError(t, json.Unmarshal([]byte(`{"pattern": "bad", "email": "not an email"}`), &em))

		assert.Equal(t, []string{"pattern", "email"}, em.Codes())
		tmpl, ok := em.Get("email")
		require.True(t, ok)
		assert.Equal(t, "not an email", tmpl)
	})

	t.Run("null is empty", func(t *testing.T) {
		t.Parallel()
		var em dynform.ErrorMessages
		require.NoError(t, em.UnmarshalJSON([]byte(" null ")))
		assert.Zero(t, em.Len())

		_, _, ok := em.First()
		assert.False(t, ok)
	})

	t.Run("non-string templates are skipped", func(t *testing.T) {
		t.Parallel()
		var em dynform.ErrorMessages
		require.NoError(t, json.Unmarshal([]byte(`{"required": 1, "email": "bad email", "min": {"x": 1}}`), &em))
		assert.Equal(t, []string{"email"}, em.Codes())

		var fromYAML dynform.ErrorMessages
		require.NoError(t, yaml.Unmarshal([]byte("required: [a, b]\nemail: bad email\n"), &fromYAML))
		assert.Equal(t, []string{"email"}, fromYAML.Codes())
	})

	t.Run("non-object is empty", func(t *testing.T) {
		t.Parallel()
		var em dynform.ErrorMessages
		require.NoError(t, json.Unmarshal([]byte(`"oops"`), &em))
		assert.Zero(t, em.Len())

		var fromYAML dynform.ErrorMessages
		require.NoError(t, yaml.Unmarshal([]byte(`[oops]`), &fromYAML))
		assert.Zero(t, fromYAML.Len())
	})

	t.Run("zero value", func(t *testing.T) {
		t.Parallel()
		var em dynform.ErrorMessages
		assert.Nil(t, em.Codes())
		em.Set("required", "x")
		assert.Equal(t, 1, em.Len())
	})
}

func mustGet(t *testing.T, vm dynform.ValidatorsMap, key string) dynform.ValidatorConfig {
	t.Helper()
	cfg, ok := vm.Get(key)
	require.True(t, ok, key)
	return cfg
}
