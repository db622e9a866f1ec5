package ports

import (
	"context"

	"github.com/taskboard/taskboard/internal/core/domain"
)

type AuthService interface {
	// Register creates an account after checking password confirmation,
	// the strength policy, and username availability, in that order.
	Register(ctx context.Context, username, password, confirmPassword string) (*domain.User, error)
	// Login authenticates a username/password pair. The password policy is
	// applied to the candidate password before the store is consulted.
	Login(ctx context.Context, username, password string) (*domain.User, error)
}
