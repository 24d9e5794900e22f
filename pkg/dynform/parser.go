package dynform

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes a form definition into a Model tree.
type Parser interface {
	// Parse decodes content. Key order of validators and errorMessages
	// sections is preserved.
	Parse(ctx context.Context, content []byte) (*Model, error)

	// SupportsFileExtension reports whether the parser handles ext, with or
	// without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil when
// the extension is not supported.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}
