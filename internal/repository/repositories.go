package repository

import (
	"github.com/lightbnb/lightbnb/internal/server"
)

// Repositories is the container for all repository instances. Service
// wiring receives this single object instead of individual repos.
type Repositories struct {
	Users        *UsersRepository
	Properties   *PropertiesRepository
	Reservations *ReservationsRepository
}

// NewRepositories constructs the repository container from the application
// container; all repos share the pool on s.DB.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:        NewUsersRepository(s.DB.Pool),
		Properties:   NewPropertiesRepository(s.DB.Pool),
		Reservations: NewReservationsRepository(s.DB.Pool),
	}
}
