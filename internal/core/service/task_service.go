package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// TaskService implements the ownership-scoped task operations. Scoping lives
// in the repository signatures: every lookup carries the caller id, so a
// task belonging to someone else surfaces as domain.ErrTaskNotFound.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) List(ctx context.Context, ownerID string) ([]*domain.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, ownerID, taskID string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, taskID, ownerID)
}

// Create persists a new task. The owner is taken exclusively from ownerID —
// the authenticated caller — no matter what the request body contained.
func (s *TaskService) Create(ctx context.Context, ownerID, title, description string) (*domain.Task, error) {
	now := time.Now().UTC()
	task := &domain.Task{
		Title:       title,
		Description: description,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", ownerID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", created.ID).Str("user_id", ownerID).Msg("task created")
	return created, nil
}

func (s *TaskService) Update(ctx context.Context, ownerID, taskID, title, description string) (*domain.Task, error) {
	return s.repo.Update(ctx, taskID, ownerID, title, description)
}

func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if err := s.repo.Delete(ctx, taskID, ownerID); err != nil {
		return err
	}
	s.logger.Info().Str("task_id", taskID).Str("user_id", ownerID).Msg("task deleted")
	return nil
}
