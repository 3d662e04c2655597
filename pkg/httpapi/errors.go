package httpapi

import "errors"

var (
	// ErrStart indicates that the server failed to start.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")

	errMalformedBody = errors.New("malformed JSON body")
	errBatchTooLarge = errors.New("too many values in batch")
	errEmptyBatch    = errors.New("batch has no values")
)
