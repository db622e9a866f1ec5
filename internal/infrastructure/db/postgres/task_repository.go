package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/taskboard/taskboard/internal/core/domain"
)

// TaskRepository persists tasks. All mutating queries carry the owner id in
// the WHERE clause, so ownership checks and the mutation are one atomic
// statement and a foreign task id behaves like a missing one.
type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	created := *task
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tasks (user_id, text, completed)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		task.UserID, task.Text, task.Completed,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &created, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, userID int64) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, text, completed, created_at
		 FROM tasks WHERE user_id = $1 ORDER BY id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.Completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) ToggleOwned(ctx context.Context, userID, taskID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET completed = NOT completed WHERE id = $1 AND user_id = $2`,
		taskID, userID)
	if err != nil {
		return false, fmt.Errorf("toggle task: %w", err)
	}
	return oneRowAffected(res)
}

func (r *TaskRepository) DeleteOwned(ctx context.Context, userID, taskID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		taskID, userID)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return oneRowAffected(res)
}

func oneRowAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
