package handler

import (
	"github.com/lightbnb/lightbnb/internal/server"
	"github.com/lightbnb/lightbnb/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Properties   *PropertiesHandler
	Reservations *ReservationsHandler
}

// NewHandlers constructs the handler container from the application
// container and the service layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		Auth:         NewAuthHandler(s, services.Auth),
		Properties:   NewPropertiesHandler(s, services.Properties),
		Reservations: NewReservationsHandler(s, services.Reservations),
	}
}
