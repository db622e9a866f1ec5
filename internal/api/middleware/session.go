package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard/internal/api/metrics"
	"github.com/taskboard/taskboard/internal/api/session"
	"github.com/taskboard/taskboard/internal/core/domain"
	"github.com/taskboard/taskboard/internal/core/ports"
)

// Context keys set by the session middleware.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

// RequireUser resolves the caller's identity from the session and injects it
// into the request context. A request without a session, or with a session
// whose user id no longer exists, is rejected with 401; in the stale case the
// session is cleared as a side effect so the dangling id cannot keep leaking
// requests into the authenticated path.
func RequireUser(sessions session.Manager, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveIdentity(c, sessions, users, log)
			if err != nil {
				return err
			}
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}

			c.Set(CtxUserID, user.ID)
			c.Set(CtxUsername, user.Username)
			return next(c)
		}
	}
}

// OptionalUser resolves the identity like RequireUser but lets anonymous
// requests through; handlers see the context keys only when a valid session
// is present. Used by the landing page.
func OptionalUser(sessions session.Manager, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolveIdentity(c, sessions, users, log)
			if err != nil {
				return err
			}
			if user != nil {
				c.Set(CtxUserID, user.ID)
				c.Set(CtxUsername, user.Username)
			}
			return next(c)
		}
	}
}

func resolveIdentity(c echo.Context, sessions session.Manager, users ports.UserRepository, log zerolog.Logger) (*domain.User, error) {
	userID, ok := sessions.Get(c)
	if !ok {
		return nil, nil
	}

	user, err := users.FindByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Session references a deleted user: collapse to anonymous.
			sessions.Clear(c)
			metrics.StaleSessionsClearedTotal.Inc()
			log.Warn().Int64("user_id", userID).Msg("cleared session for missing user")
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}
