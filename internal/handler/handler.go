// Package handler is the entry point for business logic after the router.
//
// Handlers parse and validate requests with the validation package, call
// the appropriate service, and shape the response. The typed pipeline in
// base.go centralizes binding, validation, logging, tracing, and response
// writing so individual endpoints stay small.
package handler
