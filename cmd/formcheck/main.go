// Command formcheck validates dynamic form definitions.
//
// Usage:
//
//	formcheck check <form.yaml|form.json>
//	formcheck serve
//
// check resolves the form's validators, validates the values stored in the
// definition and prints one "path: message" line per error message. It exits
// with status 1 when the form is invalid and 2 on configuration errors.
//
// serve exposes the same check over HTTP (see package formapi).
//
// Configuration is read from the environment (and an optional .env file):
//
//	FORMCHECK_LOG_LEVEL         debug, info, warn, error (default info)
//	FORMCHECK_LOG_FORMAT        text or json (default text)
//	FORMCHECK_VALIDATE_TIMEOUT  bound for a single validation run (default 5s)
//	HTTP_ADDR, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitConfig  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitConfig
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	svc := newService(log)

	switch args[0] {
	case "check":
		if len(args) != 2 {
			usage(stderr)
			return exitConfig
		}
		return check(ctx, svc, cfg, log, args[1], stdout, stderr)
	case "serve":
		return serve(ctx, svc, cfg, log, stderr)
	default:
		usage(stderr)
		return exitConfig
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: formcheck check <form.yaml|form.json>")
	fmt.Fprintln(w, "       formcheck serve")
}
