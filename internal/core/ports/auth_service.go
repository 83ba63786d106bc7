package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// TokenResult is returned on successful login.
type TokenResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

// AuthService implements registration, login, and logout.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenResult, error)
	// Logout revokes the session identified by sessionID (the token's jti).
	Logout(ctx context.Context, sessionID string) error
}
