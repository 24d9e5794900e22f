package dynform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser implements Parser for JSON documents.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses a JSON form definition.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (*Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}
	if len(bytes.TrimSpace(content)) == 0 || isJSONNull(content) {
		return nil, ErrEmptyDefinition
	}

	var m Model
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return &m, nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
