package handler

import (
	"github.com/lightbnb/lightbnb/internal/middleware"
	"github.com/lightbnb/lightbnb/internal/repository"
	"github.com/lightbnb/lightbnb/internal/server"
	"github.com/lightbnb/lightbnb/internal/service"
	"github.com/lightbnb/lightbnb/internal/validation"

	"github.com/labstack/echo/v4"
)

// AuthHandler exposes signup, login, and current-user endpoints.
type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

// SignUpRequest is the payload for POST /api/users.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *SignUpRequest) Validate() error {
	return validation.Struct(r)
}

// LoginRequest is the payload for POST /api/sessions.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// SessionResponse carries the authenticated user and their session token.
type SessionResponse struct {
	User  *repository.User `json:"user"`
	Token string           `json:"token"`
}

// EmptyRequest is the payload for endpoints with no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}

// SignUp creates an account and opens a session.
func (h *AuthHandler) SignUp(c echo.Context, req *SignUpRequest) (*SessionResponse, error) {
	user, sessionToken, err := h.auth.SignUp(c.Request().Context(), service.SignUpParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return &SessionResponse{User: user, Token: sessionToken}, nil
}

// Login verifies credentials and opens a session.
func (h *AuthHandler) Login(c echo.Context, req *LoginRequest) (*SessionResponse, error) {
	user, sessionToken, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return &SessionResponse{User: user, Token: sessionToken}, nil
}

// Me returns the authenticated user's record.
func (h *AuthHandler) Me(c echo.Context, _ *EmptyRequest) (*repository.User, error) {
	userID := middleware.GetAuthenticatedUserID(c)
	return h.auth.CurrentUser(c.Request().Context(), userID)
}
