package ports

import (
	"context"

	"github.com/taskboard/taskboard/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with its assigned id.
	// Returns domain.ErrUserExists when the username is already taken; the
	// store's uniqueness constraint is the arbiter under concurrent
	// registrations.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
