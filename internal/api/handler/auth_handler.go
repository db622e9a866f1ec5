package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard/internal/api/metrics"
	"github.com/taskboard/taskboard/internal/api/session"
	"github.com/taskboard/taskboard/internal/core/domain"
	"github.com/taskboard/taskboard/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    session.Manager
}

func NewAuthHandler(authService ports.AuthService, sessions session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type registerRequest struct {
	Username        string `json:"username" form:"username" validate:"required,max=50"`
	Password        string `json:"password" form:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required"`
}

type authResponse struct {
	User *domain.User `json:"user"`
}

// Login authenticates a username/password pair and binds the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	if err := h.sessions.Set(c, user.ID); err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{User: user})
}

// LoginPage handles GET /login; the original application sends the visitor
// back to the landing page, which hosts the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}

// Register creates an account and auto-authenticates it.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /registro [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerResult(err)).Inc()
		return err
	}

	// The account exists from here on, so the counter records a success
	// even if binding the session fails below.
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	if err := h.sessions.Set(c, user.ID); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// RegisterPage handles GET /registro.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"title": "Registro",
	})
}

// Logout clears the session and sends the client back to the landing page.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

func loginResult(err error) string {
	var pe *domain.PasswordPolicyError
	switch {
	case errors.As(err, &pe):
		return "weak_password"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}

func registerResult(err error) string {
	var pe *domain.PasswordPolicyError
	switch {
	case errors.As(err, &pe):
		return "weak_password"
	case errors.Is(err, domain.ErrPasswordMismatch):
		return "password_mismatch"
	case errors.Is(err, domain.ErrUserExists):
		return "username_taken"
	default:
		return "error"
	}
}
