package service

import (
	"context"
	"time"

	"github.com/lightbnb/lightbnb/internal/errs"
	"github.com/lightbnb/lightbnb/internal/lib/job"
	"github.com/lightbnb/lightbnb/internal/lib/token"
	"github.com/lightbnb/lightbnb/internal/middleware"
	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/server"

	"github.com/hibiken/asynq"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the users repository the auth service needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*repository.User, error)
	GetByID(ctx context.Context, id int64) (*repository.User, error)
	Create(ctx context.Context, params repository.CreateUserParams) (*repository.User, error)
}

// TaskEnqueuer enqueues background tasks. Satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AuthService implements signup, login, and current-user lookup.
type AuthService struct {
	server *server.Server
	users  UserStore
	tasks  TaskEnqueuer
}

func NewAuthService(s *server.Server, users UserStore, tasks TaskEnqueuer) *AuthService {
	return &AuthService{
		server: s,
		users:  users,
		tasks:  tasks,
	}
}

// SignUpParams is the validated signup input.
type SignUpParams struct {
	Name     string
	Email    string
	Password string
}

// SignUp creates a user account and returns the user with a session token.
//
// The password is bcrypt-hashed here; the repository stores the hash as
// given. Email uniqueness is enforced by the database constraint, not
// pre-checked, so a duplicate surfaces as a unique violation. The welcome
// email is enqueued best-effort: a queue failure is logged, not returned,
// so signups succeed even when Redis is down.
func (s *AuthService) SignUp(ctx context.Context, params SignUpParams) (*repository.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.Create(ctx, repository.CreateUserParams{
		Name:     params.Name,
		Email:    params.Email,
		Password: string(hash),
	})
	if err != nil {
		return nil, "", err
	}

	s.enqueueWelcomeEmail(ctx, user)

	sessionToken, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, sessionToken, nil
}

// Login verifies credentials and returns the user with a session token.
// An unknown email and a wrong password produce the same error, so the
// response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*repository.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", errs.NewUnauthorizedError("Invalid email or password", true)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", errs.NewUnauthorizedError("Invalid email or password", true)
	}

	sessionToken, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, sessionToken, nil
}

// CurrentUser fetches the authenticated user's record.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*repository.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError("User not found", true, nil)
	}
	return user, nil
}

func (s *AuthService) issueToken(userID int64) (string, error) {
	ttl := time.Duration(s.server.Config.Auth.TokenTTLHours) * time.Hour
	return token.Generate(s.server.Config.Auth.SecretKey, userID, ttl)
}

func (s *AuthService) enqueueWelcomeEmail(ctx context.Context, user *repository.User) {
	logger := middleware.LoggerFromContext(ctx)

	task, err := job.NewWelcomeEmailTask(user.Email, user.Name)
	if err != nil {
		logger.Error().Err(err).Str("email", user.Email).Msg("failed to build welcome email task")
		return
	}

	if _, err := s.tasks.EnqueueContext(ctx, task); err != nil {
		logger.Error().Err(err).Str("email", user.Email).Msg("failed to enqueue welcome email")
	}
}
