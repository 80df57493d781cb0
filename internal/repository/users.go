package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// User is a row in the users table. Password holds the bcrypt hash; hashing
// happens in the service layer, this package stores whatever it is given.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// CreateUserParams holds the fields required to insert a user. Kept separate
// from User so callers cannot smuggle in an ID.
type CreateUserParams struct {
	Name     string
	Email    string
	Password string
}

// UsersRepository runs user queries against the shared pool.
type UsersRepository struct {
	db *pgxpool.Pool
}

func NewUsersRepository(db *pgxpool.Pool) *UsersRepository {
	return &UsersRepository{db: db}
}

// GetByEmail fetches the user with the given email. Returns (nil, nil) when
// no user matches; an absent user is an expected outcome for login flows,
// not an error. Case sensitivity follows the column collation.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
SELECT id, name, email, password
FROM users
WHERE email = $1
LIMIT 1`

	var u User
	err := r.db.QueryRow(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetByID fetches a user by primary key. Returns (nil, nil) when absent.
func (r *UsersRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	const query = `
SELECT id, name, email, password
FROM users
WHERE id = $1
LIMIT 1`

	var u User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a user and returns the inserted row. There is no
// uniqueness pre-check: a duplicate email surfaces as the database's unique
// constraint violation.
func (r *UsersRepository) Create(ctx context.Context, params CreateUserParams) (*User, error) {
	const query = `
INSERT INTO users (name, email, password)
VALUES ($1, $2, $3)
RETURNING id, name, email, password`

	var u User
	err := r.db.QueryRow(ctx, query, params.Name, params.Email, params.Password).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
