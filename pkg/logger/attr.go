package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Validator records a validator rule name under the key "validator".
func Validator(name string) slog.Attr {
	return slog.String("validator", name)
}

// Path records a control path under the key "path".
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Valid records a validation outcome under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// File records a file name under the key "file".
func File(name string) slog.Attr {
	return slog.String("file", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
