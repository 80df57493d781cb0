package middleware

import (
	"github.com/lightbnb/lightbnb/internal/server"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups all middleware components so router setup receives a
// single wired object. Shared dependencies (config, logger, New Relic app)
// are injected here once.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers, and
	// the global error handler.
	Global *GlobalMiddlewares

	// Auth enforces session-token authentication and attaches the user id
	// to the request context.
	Auth *AuthMiddleware

	// ContextEnhancer attaches a request-scoped logger with correlation
	// fields (request_id, method, path, ip, trace and user metadata).
	ContextEnhancer *ContextEnhancer

	// Tracing installs the New Relic transaction middleware and enriches
	// transactions with custom attributes.
	Tracing *TracingMiddleware

	// RateLimit records rate-limit telemetry events.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components from the application
// container. When New Relic is not configured, nrApp is nil and tracing
// degrades to a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
