// Package session binds an HTTP client to a user id. Two backends satisfy
// the Manager contract: a signed cookie that carries the user id itself, and
// a Redis store that keeps the binding server-side behind an opaque token.
// Both are tamper-evident; which one runs is deployment configuration.
package session

import "github.com/labstack/echo/v4"

// CookieName is the cookie the session token travels in.
const CookieName = "taskboard_session"

// Manager is the session contract the access-control core depends on.
type Manager interface {
	// Get returns the user id bound to the request's session, or false when
	// the request carries no valid session.
	Get(c echo.Context) (int64, bool)
	// Set binds the response's session to userID.
	Set(c echo.Context, userID int64) error
	// Clear invalidates the request's session.
	Clear(c echo.Context)
}
