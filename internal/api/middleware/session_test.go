package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard/internal/api/session"
	"github.com/taskboard/taskboard/internal/core/domain"
)

type stubUserRepo struct {
	byID map[int64]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func sessionCookie(t *testing.T, mgr session.Manager, userID int64) *http.Cookie {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := mgr.Set(c, userID); err != nil {
		t.Fatalf("set session: %v", err)
	}
	return rec.Result().Cookies()[0]
}

func TestRequireUser_ValidSession(t *testing.T) {
	e := echo.New()
	mgr := session.NewCookieManager("secret", time.Hour, false)
	repo := &stubUserRepo{byID: map[int64]*domain.User{42: {ID: 42, Username: "alice"}}}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.AddCookie(sessionCookie(t, mgr, 42))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID int64
	var gotName string
	handler := RequireUser(mgr, repo, zerolog.Nop())(func(c echo.Context) error {
		gotID, _ = c.Get(CtxUserID).(int64)
		gotName, _ = c.Get(CtxUsername).(string)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotID != 42 || gotName != "alice" {
		t.Fatalf("unexpected identity: id=%d name=%s", gotID, gotName)
	}
}

func TestRequireUser_NoSession(t *testing.T) {
	e := echo.New()
	mgr := session.NewCookieManager("secret", time.Hour, false)
	repo := &stubUserRepo{byID: map[int64]*domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireUser(mgr, repo, zerolog.Nop())(func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireUser_StaleSessionCleared(t *testing.T) {
	e := echo.New()
	mgr := session.NewCookieManager("secret", time.Hour, false)
	// User 42 no longer exists; the session must collapse to anonymous.
	repo := &stubUserRepo{byID: map[int64]*domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.AddCookie(sessionCookie(t, mgr, 42))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireUser(mgr, repo, zerolog.Nop())(func(c echo.Context) error {
		t.Fatal("handler must not run")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "" {
		t.Fatalf("expected cleared session cookie, got %+v", cookies)
	}
}

func TestOptionalUser_AnonymousPassesThrough(t *testing.T) {
	e := echo.New()
	mgr := session.NewCookieManager("secret", time.Hour, false)
	repo := &stubUserRepo{byID: map[int64]*domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ran := false
	handler := OptionalUser(mgr, repo, zerolog.Nop())(func(c echo.Context) error {
		ran = true
		if c.Get(CtxUserID) != nil {
			t.Fatal("anonymous request must not carry an identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !ran {
		t.Fatal("handler did not run")
	}
}
