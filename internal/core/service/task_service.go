package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard/internal/core/domain"
	"github.com/taskboard/taskboard/internal/core/ports"
)

// TaskService gates every task operation behind the caller's owner scope.
// Ownership is enforced by the repository queries themselves, so a task id
// belonging to another user is indistinguishable from a missing one.
type TaskService struct {
	tasks  ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, logger: logger}
}

// Add creates a task owned by userID. Whitespace-only text is a silent no-op
// and returns (nil, nil) rather than an error.
func (s *TaskService) Add(ctx context.Context, userID int64, text string) (*domain.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	task := &domain.Task{
		UserID:    userID,
		Text:      text,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Int64("user_id", userID).Int64("task_id", created.ID).Msg("task created")
	return created, nil
}

func (s *TaskService) Toggle(ctx context.Context, userID, taskID int64) (bool, error) {
	toggled, err := s.tasks.ToggleOwned(ctx, userID, taskID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Int64("task_id", taskID).Msg("failed to toggle task")
		return false, err
	}
	return toggled, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID int64) (bool, error) {
	deleted, err := s.tasks.DeleteOwned(ctx, userID, taskID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Int64("task_id", taskID).Msg("failed to delete task")
		return false, err
	}
	if deleted {
		s.logger.Info().Int64("user_id", userID).Int64("task_id", taskID).Msg("task deleted")
	}
	return deleted, nil
}

func (s *TaskService) List(ctx context.Context, userID int64) ([]domain.Task, error) {
	return s.tasks.ListByOwner(ctx, userID)
}
