// Package errs defines the error types returned to API clients.
//
// Every failure that escapes a handler is eventually shaped into an
// HTTPError so clients receive a consistent JSON error envelope:
// a machine code, a human message, an HTTP status, and optionally
// field-level validation errors.
package errs
