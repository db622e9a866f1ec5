package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard/internal/core/domain"
	"github.com/taskboard/taskboard/internal/core/ports"
)

// AuthService implements registration and login. Passwords are stored only as
// bcrypt hashes; the cleartext never reaches the repository.
type AuthService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, password, confirmPassword string) (*domain.User, error) {
	if username == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if password != confirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login checks the candidate password against the strength policy before any
// store access, then authenticates by username lookup and hash comparison.
// The policy gating login as well as registration mirrors the original
// system; see DESIGN.md for the open question around the seed account.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" {
		return nil, domain.ErrInvalidCredentials
	}
	// The policy sees the password first, even an empty one: a blank
	// candidate fails as too short, not as a bad credential.
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("user logged in")
	return user, nil
}
