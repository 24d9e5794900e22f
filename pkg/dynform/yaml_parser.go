package dynform

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements Parser for YAML documents.
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses a YAML form definition.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (*Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyDefinition
	}

	var m Model
	if err := yaml.Unmarshal(content, &m); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return &m, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
