package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// ProfileService operates on exactly one user record: the caller resolved by
// the token validator. A stale token (identity deleted after issuance)
// surfaces as domain.ErrUserNotFound from every operation.
type ProfileService struct {
	users  ports.UserRepository
	tasks  ports.TaskRepository
	logger zerolog.Logger
}

func NewProfileService(users ports.UserRepository, tasks ports.TaskRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, tasks: tasks, logger: logger}
}

func (s *ProfileService) Show(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *ProfileService) Update(ctx context.Context, userID, name, email string) (*domain.User, error) {
	updated, err := s.users.Update(ctx, userID, name, email)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}

// Destroy deletes the caller's account. The caller's tasks are
// cascade-deleted first so a failure between the two steps can never leave
// orphaned tasks behind.
func (s *ProfileService) Destroy(ctx context.Context, userID string) error {
	// Confirm the record still exists so a stale token yields not-found
	// before any destructive work happens.
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}

	removed, err := s.tasks.DeleteByOwner(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Int64("tasks_removed", removed).Msg("profile deleted")
	return nil
}
