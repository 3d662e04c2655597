// Package logger builds *slog.Logger values for the CLI and the HTTP API.
//
// New takes functional options: WithFormat (text or json), WithLevel,
// WithOutput, WithAttr, and WithEnvironment for per-environment defaults.
// WithContextValue and WithContextExtractors register callbacks that copy
// values such as the request ID from the record context into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "datetimecheck"),
//	    logger.WithContextExtractors(httpapi.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "value rejected",
//	    logger.Field("starts_at"),
//	    logger.ViolationCodes(verrs.Codes()),
//	)
//
// Attribute helpers that take an optional value (Error, RequestID,
// ViolationCodes) return an empty slog.Attr when there is nothing to log, so
// callers need no nil checks.
package logger
