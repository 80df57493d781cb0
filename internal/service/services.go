package service

import (
	"github.com/lightbnb/lightbnb/internal/lib/job"
	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/server"
)

// Services is the container for all service instances.
type Services struct {
	Auth         *AuthService
	Properties   *PropertyService
	Reservations *ReservationService
	Job          *job.JobService
}

// NewServices constructs the service container from the application
// container and the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Auth:         NewAuthService(s, repos.Users, s.Job.Client),
		Properties:   NewPropertyService(s, repos.Properties),
		Reservations: NewReservationService(s, repos.Reservations),
		Job:          s.Job,
	}
}
