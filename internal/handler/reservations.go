package handler

import (
	"github.com/lightbnb/lightbnb/internal/middleware"
	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/server"
	"github.com/lightbnb/lightbnb/internal/service"
	"github.com/lightbnb/lightbnb/internal/validation"

	"github.com/labstack/echo/v4"
)

// ReservationsHandler lists the authenticated guest's reservations.
type ReservationsHandler struct {
	Handler
	reservations *service.ReservationService
}

func NewReservationsHandler(s *server.Server, reservations *service.ReservationService) *ReservationsHandler {
	return &ReservationsHandler{
		Handler:      NewHandler(s),
		reservations: reservations,
	}
}

// ListReservationsRequest maps the query parameters of GET /api/reservations.
type ListReservationsRequest struct {
	Limit int `query:"limit" validate:"omitempty,gte=1,max=100"`
}

func (r *ListReservationsRequest) Validate() error {
	return validation.Struct(r)
}

// List returns the guest's reservations ordered by start date.
func (h *ReservationsHandler) List(c echo.Context, req *ListReservationsRequest) ([]repository.GuestReservation, error) {
	guestID := middleware.GetAuthenticatedUserID(c)
	return h.reservations.ListForGuest(c.Request().Context(), guestID, req.Limit)
}
