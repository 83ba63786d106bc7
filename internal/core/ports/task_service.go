package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// TaskService defines the ownership-scoped task operations. ownerID is the
// authenticated caller resolved by the token validator; it is never taken
// from the request body.
type TaskService interface {
	List(ctx context.Context, ownerID string) ([]*domain.Task, error)
	Get(ctx context.Context, ownerID, taskID string) (*domain.Task, error)
	Create(ctx context.Context, ownerID, title, description string) (*domain.Task, error)
	Update(ctx context.Context, ownerID, taskID, title, description string) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
}
