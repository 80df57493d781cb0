package service

import (
	"context"

	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/server"
)

// ReservationStore is the slice of the reservations repository the
// reservation service needs.
type ReservationStore interface {
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]repository.GuestReservation, error)
}

// ReservationService lists a guest's reservations.
type ReservationService struct {
	server       *server.Server
	reservations ReservationStore
}

func NewReservationService(s *server.Server, reservations ReservationStore) *ReservationService {
	return &ReservationService{
		server:       s,
		reservations: reservations,
	}
}

// ListForGuest lists the guest's reservations ordered by start date,
// applying the default limit when none is given.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]repository.GuestReservation, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.reservations.ListForGuest(ctx, guestID, limit)
}
