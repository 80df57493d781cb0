// Package middleware holds global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns: CORS, request
// logging, panic recovery, the global error handler, request correlation
// ids, session-token authentication, and New Relic tracing.
package middleware
