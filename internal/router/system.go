package router

import (
	"github.com/labstack/echo/v4"

	"github.com/lightbnb/lightbnb/internal/handler"
)

// registerSystemRoutes registers "system" endpoints that are not part
// of business logic.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by Kubernetes/monitors).
	e.GET("/status", h.Health.CheckHealth)
}
