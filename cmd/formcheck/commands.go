package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/formkit/pkg/dynform"
	"github.com/dmitrymomot/formkit/pkg/formapi"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

func check(ctx context.Context, svc *dynform.Service, cfg appConfig, log *slog.Logger, file string, stdout, stderr io.Writer) int {
	parser := dynform.NewParserForFile(file)
	if parser == nil {
		fmt.Fprintf(stderr, "%v: %s\n", dynform.ErrUnsupportedFormat, file)
		return exitConfig
	}

	content, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	model, err := parser.Parse(ctx, content)
	if err != nil {
		log.ErrorContext(ctx, "failed to parse form definition", logger.File(file), logger.Error(err))
		return exitConfig
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ValidateTimeout)
	defer cancel()

	res, err := svc.Check(ctx, model)
	if err != nil {
		if errors.Is(err, dynform.ErrValidatorNotFound) || errors.Is(err, dynform.ErrInvalidValidatorArgs) {
			log.ErrorContext(ctx, "invalid validator configuration", logger.File(file), logger.Error(err))
		} else {
			log.ErrorContext(ctx, "validation did not complete", logger.File(file), logger.Error(err))
		}
		return exitConfig
	}

	for _, field := range res.Errors {
		for _, msg := range field.Messages {
			fmt.Fprintf(stdout, "%s: %s\n", field.Path, msg)
		}
	}
	if !res.Valid {
		return exitInvalid
	}
	fmt.Fprintln(stdout, "ok")
	return exitOK
}

func serve(ctx context.Context, svc *dynform.Service, cfg appConfig, log *slog.Logger, stderr io.Writer) int {
	router := formapi.Router(svc,
		formapi.WithLogger(log),
		formapi.WithTimeout(cfg.ValidateTimeout),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	return exitOK
}
