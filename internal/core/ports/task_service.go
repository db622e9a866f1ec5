package ports

import (
	"context"

	"github.com/taskboard/taskboard/internal/core/domain"
)

type TaskService interface {
	// Add creates a task owned by userID. Whitespace-only text is a silent
	// no-op and returns (nil, nil).
	Add(ctx context.Context, userID int64, text string) (*domain.Task, error)
	// Toggle flips the completion flag of an owned task. Returns false when
	// the task is missing or not owned by userID.
	Toggle(ctx context.Context, userID, taskID int64) (bool, error)
	// Delete removes an owned task. Returns false when the task is missing
	// or not owned by userID.
	Delete(ctx context.Context, userID, taskID int64) (bool, error)
	// List returns all tasks owned by userID in id order.
	List(ctx context.Context, userID int64) ([]domain.Task, error)
}
