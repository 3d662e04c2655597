// Package httpapi exposes the date-time validator over HTTP.
//
// NewRouter returns a chi router with two JSON endpoints:
//
//	POST /v1/datetime/validate        {"field": "starts_at", "value": "2024-02-29 10:00:00"}
//	POST /v1/datetime/validate/batch  {"field": "starts_at", "values": [...]}
//
// JSON strings, numbers, booleans and null are accepted as values; numbers are
// validated in their original text form. Objects and arrays have no text form
// and are answered with 400 (or an item-level error in a batch). Violations
// are returned with 200 and carry both the kind name and its stable UUID code.
//
// Every request gets an X-Request-ID (reused from the client when well formed)
// which is added to log records through RequestIDExtractor.
//
// Server wraps http.Server with graceful shutdown on context cancellation or
// SIGINT/SIGTERM. Config carries `env` tags for github.com/caarlos0/env.
package httpapi
