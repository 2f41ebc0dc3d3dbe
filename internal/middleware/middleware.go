// Package middleware holds the Echo middleware shared by every route:
// request ids, request-scoped logging, New Relic tracing, rate limiting,
// panic recovery and the global error handler.
package middleware
