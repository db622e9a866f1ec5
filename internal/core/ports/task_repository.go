package ports

import (
	"context"

	"github.com/taskboard/taskboard/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Every mutating
// query is scoped to the owner so that a task id belonging to another user
// behaves exactly like a missing one.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// ListByOwner returns all tasks owned by userID in stable id order.
	ListByOwner(ctx context.Context, userID int64) ([]domain.Task, error)
	// ToggleOwned flips the completion flag of the task iff it is owned by
	// userID. Returns false when the task is missing or owned by someone else.
	ToggleOwned(ctx context.Context, userID, taskID int64) (bool, error)
	// DeleteOwned removes the task iff it is owned by userID. Returns false
	// when the task is missing or owned by someone else.
	DeleteOwned(ctx context.Context, userID, taskID int64) (bool, error)
}
