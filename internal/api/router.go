package api

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/taskboard/taskboard/internal/api/handler"
	"github.com/taskboard/taskboard/internal/api/middleware"
	"github.com/taskboard/taskboard/internal/api/session"
	"github.com/taskboard/taskboard/internal/core/ports"
	"github.com/taskboard/taskboard/internal/core/service"
	"github.com/taskboard/taskboard/internal/infrastructure/config"
	"github.com/taskboard/taskboard/internal/infrastructure/db/postgres"
)

// serverDeps carries everything newServer wires into the route table.
type serverDeps struct {
	auth     ports.AuthService
	tasks    ports.TaskService
	users    ports.UserRepository
	sessions session.Manager
	db       *sql.DB
	rdb      *redis.Client
	log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// All dependencies are constructed here and injected explicitly; nothing
// hangs off package-level state.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	var sessions session.Manager
	if cfg.Session.Backend == "redis" {
		sessions = session.NewRedisManager(rdb, cfg.Session.TTL, cfg.Production())
	} else {
		sessions = session.NewCookieManager(cfg.Session.Secret, cfg.Session.TTL, cfg.Production())
	}

	return newServer(serverDeps{
		auth:     service.NewAuthService(userRepo, log),
		tasks:    service.NewTaskService(taskRepo, log),
		users:    userRepo,
		sessions: sessions,
		db:       db,
		rdb:      rdb,
		log:      log,
	})
}

func newServer(d serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Secure())
	e.Use(echoprometheus.NewMiddleware("taskboard"))

	authHandler := handler.NewAuthHandler(d.auth, d.sessions)
	taskHandler := handler.NewTaskHandler(d.tasks)
	pageHandler := handler.NewPageHandler()

	requireUser := middleware.RequireUser(d.sessions, d.users, d.log)
	optionalUser := middleware.OptionalUser(d.sessions, d.users, d.log)

	// Mutations moved off GET; the browser-facing forms send the CSRF token
	// issued by this middleware in the _csrf cookie.
	csrf := echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookiePath:     "/",
		CookieSameSite: http.SameSiteLaxMode,
	})

	// --- Public routes ---
	e.GET("/", pageHandler.Home, optionalUser)
	e.GET("/about", pageHandler.About)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/registro", authHandler.RegisterPage)
	e.POST("/registro", authHandler.Register)
	e.POST("/register", authHandler.Register)
	e.GET("/logout", authHandler.Logout)
	e.POST("/logout", authHandler.Logout)

	// --- Task routes (session required) ---
	tasks := e.Group("", requireUser, csrf)
	tasks.GET("/tasks", taskHandler.List)
	tasks.POST("/add_task", taskHandler.Add)
	tasks.POST("/tasks", taskHandler.Add)
	tasks.POST("/toggle_task/:id", taskHandler.Toggle)
	tasks.POST("/tasks/:id/toggle", taskHandler.Toggle)
	tasks.POST("/delete_task/:id", taskHandler.Delete)
	tasks.DELETE("/tasks/:id", taskHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.db, d.rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
