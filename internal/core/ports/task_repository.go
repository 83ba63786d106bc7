package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
//
// Every lookup takes a mandatory ownerID and filters by it in the query
// itself, so a call site cannot forget ownership scoping. A task that exists
// but belongs to someone else is reported as domain.ErrTaskNotFound.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id, ownerID string) (*domain.Task, error)
	// ListByOwner returns the owner's tasks ordered by creation time ascending.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	// Update replaces title and description on the owner's task and returns
	// the updated record. The owner field is not writable through this path.
	Update(ctx context.Context, id, ownerID, title, description string) (*domain.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
	// DeleteByOwner removes all tasks owned by ownerID and reports how many
	// were deleted. Used by the profile cascade.
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}
