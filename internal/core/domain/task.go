package domain

import "time"

// Task is an owned record: it has no existence independent of its user and is
// only visible or mutable through the owner's session.
type Task struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
