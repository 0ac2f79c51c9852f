// Package middleware contains the Echo middleware stack shared by every
// route: request ids, request-scoped logging, New Relic tracing, Prometheus
// metrics, rate limiting and the global error handler.
package middleware
