package services

import (
	"context"

	"drivebox/internal/domain/models"
)

// AuthService handles signup, login and credential resolution
type AuthService interface {
	// Signup registers a new user and returns a bearer token for it
	Signup(ctx context.Context, req *SignupRequest) (*AuthResult, error)

	// Login verifies credentials and returns a bearer token
	Login(ctx context.Context, req *LoginRequest) (*AuthResult, error)

	// ResolveToken maps a bearer token to the user it identifies.
	// Returns domain.ErrUnauthorized for invalid tokens or vanished users.
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

// SignupRequest represents a signup request
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult pairs a signed token with the authenticated user
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
