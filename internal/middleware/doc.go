// Package middleware provides net/http middleware for the service:
// Prometheus request metrics, OpenTelemetry tracing and structured
// request logging. All middleware is chi-compatible.
package middleware
