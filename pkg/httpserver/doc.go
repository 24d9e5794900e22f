// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown.
//
// Run blocks until the context is cancelled (typically by
// signal.NotifyContext in main) or the listener fails, then shuts the server
// down within the configured shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
