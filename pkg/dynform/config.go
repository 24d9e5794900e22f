package dynform

import (
	"bytes"
	"encoding/json"
	"errors"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// ConfigKind tells how a validator configuration names its rule.
type ConfigKind int

const (
	// ConfigShorthand configs take the rule name from the map key and use the
	// value as arguments.
	ConfigShorthand ConfigKind = iota
	// ConfigExpanded configs carry an explicit rule name and arguments.
	ConfigExpanded
)

// ValidatorConfig is the configuration of one validator entry.
type ValidatorConfig struct {
	kind ConfigKind
	name string
	args any
}

// Shorthand returns a config whose rule name is the map key.
// A nil args means the rule is used without arguments.
func Shorthand(args any) ValidatorConfig {
	return ValidatorConfig{kind: ConfigShorthand, args: args}
}

// Expanded returns a config with an explicit rule name.
func Expanded(name string, args any) ValidatorConfig {
	return ValidatorConfig{kind: ConfigExpanded, name: name, args: args}
}

// ParseValidatorConfig classifies a decoded value. A map with a string "name"
// field is expanded; anything else is shorthand arguments.
func ParseValidatorConfig(raw any) ValidatorConfig {
	if m, ok := raw.(map[string]any); ok {
		if name, ok := m["name"].(string); ok {
			return Expanded(name, m["args"])
		}
	}
	return Shorthand(raw)
}

// Kind returns the config kind.
func (c ValidatorConfig) Kind() ConfigKind { return c.kind }

// Args returns the configured arguments; nil means none.
func (c ValidatorConfig) Args() any { return c.args }

// Rule returns the rule name and arguments for an entry stored under key.
func (c ValidatorConfig) Rule(key string) (string, any) {
	if c.kind == ConfigExpanded {
		return c.name, c.args
	}
	return key, c.args
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ValidatorConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*c = ParseValidatorConfig(raw)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ValidatorConfig) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = ParseValidatorConfig(raw)
	return nil
}

// ValidatorsMap maps entry keys to validator configs, preserving insertion
// order. The zero value is an empty map ready to use.
type ValidatorsMap struct {
	m *orderedmap.OrderedMap[string, ValidatorConfig]
}

// NewValidatorsMap returns an empty map.
func NewValidatorsMap() ValidatorsMap {
	return ValidatorsMap{m: orderedmap.New[string, ValidatorConfig]()}
}

// Set adds or replaces an entry. Replacing keeps the original position.
func (vm *ValidatorsMap) Set(key string, cfg ValidatorConfig) *ValidatorsMap {
	if vm.m == nil {
		vm.m = orderedmap.New[string, ValidatorConfig]()
	}
	vm.m.Set(key, cfg)
	return vm
}

// Get returns the config stored under key.
func (vm ValidatorsMap) Get(key string) (ValidatorConfig, bool) {
	if vm.m == nil {
		return ValidatorConfig{}, false
	}
	return vm.m.Get(key)
}

// Len returns the number of entries.
func (vm ValidatorsMap) Len() int {
	if vm.m == nil {
		return 0
	}
	return vm.m.Len()
}

// Each calls fn for every entry in order until fn returns false.
func (vm ValidatorsMap) Each(fn func(key string, cfg ValidatorConfig) bool) {
	if vm.m == nil {
		return
	}
	for pair := vm.m.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Keys returns entry keys in order.
func (vm ValidatorsMap) Keys() []string {
	keys := make([]string, 0, vm.Len())
	vm.Each(func(key string, _ ValidatorConfig) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// UnmarshalYAML implements yaml.Unmarshaler. A null or non-mapping node
// yields an empty map.
func (vm *ValidatorsMap) UnmarshalYAML(node *yaml.Node) error {
	fresh := NewValidatorsMap()
	eachYAMLPair(node, func(key string, value *yaml.Node) {
		var cfg ValidatorConfig
		if err := cfg.UnmarshalYAML(value); err == nil {
			fresh.Set(key, cfg)
		}
	})
	*vm = fresh
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Anything but an object yields an
// empty map.
func (vm *ValidatorsMap) UnmarshalJSON(data []byte) error {
	fresh := NewValidatorsMap()
	if isJSONObject(data) {
		if err := fresh.m.UnmarshalJSON(data); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}
	*vm = fresh
	return nil
}

// ErrorMessages maps error codes to message templates, preserving insertion
// order. The zero value is an empty map ready to use.
type ErrorMessages struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewErrorMessages returns a map holding the given code/template pairs.
// A trailing code without a template is ignored.
func NewErrorMessages(pairs ...string) ErrorMessages {
	em := ErrorMessages{m: orderedmap.New[string, string]()}
	for i := 0; i+1 < len(pairs); i += 2 {
		em.m.Set(pairs[i], pairs[i+1])
	}
	return em
}

// Set adds or replaces a template.
func (em *ErrorMessages) Set(code, template string) *ErrorMessages {
	if em.m == nil {
		em.m = orderedmap.New[string, string]()
	}
	em.m.Set(code, template)
	return em
}

// Get returns the template for code.
func (em ErrorMessages) Get(code string) (string, bool) {
	if em.m == nil {
		return "", false
	}
	return em.m.Get(code)
}

// First returns the first code and template in order.
func (em ErrorMessages) First() (string, string, bool) {
	if em.m == nil {
		return "", "", false
	}
	pair := em.m.Oldest()
	if pair == nil {
		return "", "", false
	}
	return pair.Key, pair.Value, true
}

// Len returns the number of templates.
func (em ErrorMessages) Len() int {
	if em.m == nil {
		return 0
	}
	return em.m.Len()
}

// Codes returns the codes in order.
func (em ErrorMessages) Codes() []string {
	if em.m == nil {
		return nil
	}
	codes := make([]string, 0, em.m.Len())
	for pair := em.m.Oldest(); pair != nil; pair = pair.Next() {
		codes = append(codes, pair.Key)
	}
	return codes
}

// UnmarshalYAML implements yaml.Unmarshaler. A null or non-mapping node
// yields an empty map. Entries whose template is not a scalar are skipped.
func (em *ErrorMessages) UnmarshalYAML(node *yaml.Node) error {
	fresh := NewErrorMessages()
	eachYAMLPair(node, func(key string, value *yaml.Node) {
		if value.Kind != yaml.ScalarNode {
			return
		}
		var tmpl string
		if err := value.Decode(&tmpl); err == nil {
			fresh.Set(key, tmpl)
		}
	})
	*em = fresh
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Anything but an object yields an
// empty map. Entries whose template is not a string are skipped.
func (em *ErrorMessages) UnmarshalJSON(data []byte) error {
	fresh := NewErrorMessages()
	if isJSONObject(data) {
		raw := orderedmap.New[string, json.RawMessage]()
		if err := raw.UnmarshalJSON(data); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
		for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
			var tmpl string
			if err := json.Unmarshal(pair.Value, &tmpl); err == nil {
				fresh.Set(pair.Key, tmpl)
			}
		}
	}
	*em = fresh
	return nil
}

// eachYAMLPair walks a mapping node in document order. Other node kinds and
// non-string keys are ignored.
func eachYAMLPair(node *yaml.Node, fn func(key string, value *yaml.Node)) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			continue
		}
		fn(key, node.Content[i+1])
	}
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func isJSONObject(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte("{"))
}
