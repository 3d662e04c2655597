package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrymomot/datetimecheck/pkg/httpapi"
	"github.com/dmitrymomot/datetimecheck/pkg/logger"
)

func runServe(ctx context.Context, cfg appConfig, stderr io.Writer) int {
	log := newLogger(cfg, logger.WithOutput(stderr), logger.WithContextExtractors(httpapi.RequestIDExtractor()))

	srv := httpapi.NewFromConfig(cfg.HTTP, httpapi.WithLogger(log))
	router := httpapi.NewRouter(httpapi.RouterOptions{
		Logger:       log,
		MaxBatchSize: cfg.HTTP.MaxBatchSize,
	})

	if err := srv.Run(ctx, router); err != nil {
		log.ErrorContext(ctx, "server failed", logger.Error(err))
		fmt.Fprintf(stderr, "datetimecheck: %v\n", err)
		return exitInvalid
	}
	return exitOK
}
