package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lightbnb/lightbnb/internal/config"
	"github.com/lightbnb/lightbnb/internal/errs"
	"github.com/lightbnb/lightbnb/internal/lib/token"
	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/server"
)

type fakeUserStore struct {
	usersByEmail map[string]*repository.User
	usersByID    map[int64]*repository.User
	created      []repository.CreateUserParams
	createErr    error
	nextID       int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		usersByEmail: map[string]*repository.User{},
		usersByID:    map[int64]*repository.User{},
		nextID:       1,
	}
}

func (f *fakeUserStore) add(user *repository.User) {
	f.usersByEmail[user.Email] = user
	f.usersByID[user.ID] = user
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*repository.User, error) {
	return f.usersByEmail[email], nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*repository.User, error) {
	return f.usersByID[id], nil
}

func (f *fakeUserStore) Create(_ context.Context, params repository.CreateUserParams) (*repository.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, params)
	user := &repository.User{
		ID:       f.nextID,
		Name:     params.Name,
		Email:    params.Email,
		Password: params.Password,
	}
	f.nextID++
	f.add(user)
	return user, nil
}

type fakeEnqueuer struct {
	tasks      []*asynq.Task
	enqueueErr error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.enqueueErr != nil {
		return nil, f.enqueueErr
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Auth: config.AuthConfig{
				SecretKey:     "test-secret",
				TokenTTLHours: 24,
			},
		},
		Logger: &logger,
	}
}

func TestSignUpHashesPasswordAndIssuesToken(t *testing.T) {
	store := newFakeUserStore()
	queue := &fakeEnqueuer{}
	svc := NewAuthService(newTestServer(), store, queue)

	user, sessionToken, err := svc.SignUp(context.Background(), SignUpParams{
		Name:     "Eva Stanley",
		Email:    "eva@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	require.Len(t, store.created, 1)
	stored := store.created[0].Password
	assert.NotEqual(t, "password123", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("password123")))

	userID, err := token.Parse("test-secret", sessionToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestSignUpEnqueuesWelcomeEmail(t *testing.T) {
	store := newFakeUserStore()
	queue := &fakeEnqueuer{}
	svc := NewAuthService(newTestServer(), store, queue)

	_, _, err := svc.SignUp(context.Background(), SignUpParams{
		Name:     "Eva Stanley",
		Email:    "eva@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Len(t, queue.tasks, 1)
}

func TestSignUpSucceedsWhenQueueIsDown(t *testing.T) {
	store := newFakeUserStore()
	queue := &fakeEnqueuer{enqueueErr: errors.New("redis: connection refused")}
	svc := NewAuthService(newTestServer(), store, queue)

	user, sessionToken, err := svc.SignUp(context.Background(), SignUpParams{
		Name:     "Eva Stanley",
		Email:    "eva@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.NotEmpty(t, sessionToken)
}

func TestLoginWithValidCredentials(t *testing.T) {
	store := newFakeUserStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	store.add(&repository.User{ID: 5, Name: "Eva Stanley", Email: "eva@example.com", Password: string(hash)})

	svc := NewAuthService(newTestServer(), store, &fakeEnqueuer{})

	user, sessionToken, err := svc.Login(context.Background(), "eva@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)

	userID, err := token.Parse("test-secret", sessionToken)
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)
}

func TestLoginDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	store := newFakeUserStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	store.add(&repository.User{ID: 5, Email: "eva@example.com", Password: string(hash)})

	svc := NewAuthService(newTestServer(), store, &fakeEnqueuer{})

	_, _, unknownEmailErr := svc.Login(context.Background(), "nobody@example.com", "password123")
	_, _, wrongPasswordErr := svc.Login(context.Background(), "eva@example.com", "wrong-password")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, unknownEmailErr, &httpErr)
	assert.Equal(t, 401, httpErr.Status)

	require.ErrorAs(t, wrongPasswordErr, &httpErr)
	assert.Equal(t, 401, httpErr.Status)

	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func TestCurrentUserNotFound(t *testing.T) {
	svc := NewAuthService(newTestServer(), newFakeUserStore(), &fakeEnqueuer{})

	_, err := svc.CurrentUser(context.Background(), 99)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
}

func TestCurrentUserFound(t *testing.T) {
	store := newFakeUserStore()
	store.add(&repository.User{ID: 3, Name: "Eva Stanley", Email: "eva@example.com"})

	svc := NewAuthService(newTestServer(), store, &fakeEnqueuer{})

	user, err := svc.CurrentUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "eva@example.com", user.Email)
}
