// Package errs defines the error types returned to API clients.
//
// Handlers and services return *HTTPError for every failure they can
// classify (bad input, missing rows, unknown acting user); the global error
// handler renders them as JSON. Anything else becomes a generic 500.
package errs
