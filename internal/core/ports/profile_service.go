package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// ProfileService operates on exactly one user: the authenticated caller.
// There is no path to act on any other user's profile.
type ProfileService interface {
	Show(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID, name, email string) (*domain.User, error)
	// Destroy deletes the caller's account and cascade-deletes their tasks.
	Destroy(ctx context.Context, userID string) error
}
