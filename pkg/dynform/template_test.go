package dynform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/control"
	"github.com/dmitrymomot/formkit/pkg/dynform"
)

func TestRender(t *testing.T) {
	t.Parallel()

	model := &dynform.Model{
		ID:          "name",
		Label:       "Name",
		Placeholder: "Jane",
		Properties: map[string]any{
			"minAge":                   18,
			"validator.requiredLength": 7,
		},
	}

	tests := []struct {
		name     string
		template string
		model    dynform.PropertySource
		payload  dynform.PropertySource
		want     string
	}{
		{
			name:     "model and payload",
			template: "{{ label }} must be at least {{ validator.requiredLength }}",
			model:    model,
			payload:  control.Payload{"requiredLength": 5},
			want:     "Name must be at least 5",
		},
		{
			name:     "whitespace inside braces is optional",
			template: "{{label}}/{{   placeholder   }}",
			model:    model,
			want:     "Name/Jane",
		},
		{
			name:     "free-form property",
			template: "Must be {{ minAge }}+",
			model:    model,
			want:     "Must be 18+",
		},
		{
			name:     "validator prefix without payload reads the model",
			template: "{{ validator.requiredLength }}",
			model:    model,
			want:     "7",
		},
		{
			name:     "prefix must start the expression",
			template: "{{ x.validator.requiredLength }}",
			model:    model,
			payload:  control.Payload{"requiredLength": 5},
			want:     "",
		},
		{
			name:     "missing properties render empty",
			template: "[{{ unknown }}][{{ validator.unknown }}]",
			model:    model,
			payload:  control.Payload{},
			want:     "[][]",
		},
		{
			name:     "no placeholders",
			template: "Invalid value",
			model:    model,
			want:     "Invalid value",
		},
		{
			name:     "nil model",
			template: "{{ label }}!",
			want:     "!",
		},
		{
			name:     "rendered values are not interpolated again",
			template: "{{ hint }}",
			model:    &dynform.Model{Hint: "{{ label }}", Label: "Name"},
			want:     "{{ label }}",
		},
		{
			name:     "single brace is literal",
			template: "{ label } is {{label}}",
			model:    model,
			want:     "{ label } is Name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dynform.Render(tt.template, tt.model, tt.payload))
		})
	}
}

// Falsy values are dropped rather than formatted, so a zero length or a false
// flag renders as an empty string. Callers relying on "0" in messages must
// pass it as a string.
func TestRenderFalsyValues(t *testing.T) {
	t.Parallel()

	payload := control.Payload{
		"zero":     0,
		"zeroF":    0.0,
		"nan":      math.NaN(),
		"false":    false,
		"empty":    "",
		"nil":      nil,
		"zeroText": "0",
		"true":     true,
	}

	for _, key := range []string{"zero", "zeroF", "nan", "false", "empty", "nil"} {
		assert.Empty(t, dynform.Render("{{ validator."+key+" }}", nil, payload), key)
	}
	assert.Equal(t, "0", dynform.Render("{{ validator.zeroText }}", nil, payload))
	assert.Equal(t, "true", dynform.Render("{{ validator.true }}", nil, payload))
	assert.Equal(t, "Got  items", dynform.Render("Got {{ value }} items", &dynform.Model{Value: 0}, nil))
}
