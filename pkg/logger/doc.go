// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent across formkit.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("service", "formcheck")),
//	)
//	log.Debug("validator resolution failed", logger.Validator("slug"), logger.Error(err))
//
// Level and format can also be given as strings (for example from
// environment configuration) through ParseLevel and ParseFormat.
//
// Helpers such as Error return an empty slog.Attr for nil input, which slog
// drops, so callers do not need nil checks.
package logger
