// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lightbnb/lightbnb/internal/handler"
	"github.com/lightbnb/lightbnb/internal/middleware"
)

// New builds the Echo instance with the full middleware chain and all
// application routes registered.
//
// Middleware order matters: the request ID is assigned first so every
// later stage (tracing, logging, error handling) can pick it up.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.CORS())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Tracing.EnhanceTracing())

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h, m)

	return e
}

// registerAPIRoutes defines the business endpoints under /api.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	api := e.Group("/api")

	// Account creation and session management.
	api.POST("/users", handler.Handle(h.Auth.Handler, h.Auth.SignUp, http.StatusCreated,
		func() *handler.SignUpRequest { return &handler.SignUpRequest{} }))
	api.POST("/sessions", handler.Handle(h.Auth.Handler, h.Auth.Login, http.StatusOK,
		func() *handler.LoginRequest { return &handler.LoginRequest{} }))
	api.GET("/users/me", handler.Handle(h.Auth.Handler, h.Auth.Me, http.StatusOK,
		func() *handler.EmptyRequest { return &handler.EmptyRequest{} }), m.Auth.RequireAuth)

	// Property search is public, listing a property is not.
	api.GET("/properties", handler.Handle(h.Properties.Handler, h.Properties.Search, http.StatusOK,
		func() *handler.SearchPropertiesRequest { return &handler.SearchPropertiesRequest{} }))
	api.POST("/properties", handler.Handle(h.Properties.Handler, h.Properties.Create, http.StatusCreated,
		func() *handler.CreatePropertyRequest { return &handler.CreatePropertyRequest{} }), m.Auth.RequireAuth)

	// A guest's own reservation history.
	api.GET("/reservations", handler.Handle(h.Reservations.Handler, h.Reservations.List, http.StatusOK,
		func() *handler.ListReservationsRequest { return &handler.ListReservationsRequest{} }), m.Auth.RequireAuth)
}
