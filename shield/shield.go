// Package shield provides reusable HTTP middleware for shopscan: security
// headers, request body limits, and per-request trace IDs with a scoped
// structured logger.
//
// Usage:
//
//	r := chi.NewRouter()
//	r.Use(shield.SecurityHeaders(shield.DefaultHeaders()))
//	r.Use(shield.MaxBody(64 * 1024))
//	r.Use(shield.TraceID)
package shield

type contextKey string

// LoggerKey carries the per-request logger in the context.
const LoggerKey contextKey = "shield.logger"

// TraceIDKey carries the request trace ID in the context.
const TraceIDKey contextKey = "shield.trace_id"
