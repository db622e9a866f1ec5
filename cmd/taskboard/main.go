package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taskboard/taskboard/internal/api"
	"github.com/taskboard/taskboard/internal/infrastructure/config"
	"github.com/taskboard/taskboard/internal/infrastructure/db/postgres"
	"github.com/taskboard/taskboard/internal/infrastructure/db/redis"
	"github.com/taskboard/taskboard/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Database.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}
	if err := postgres.SeedAdmin(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	if cfg.Session.Backend != "redis" && cfg.Session.Secret == "" {
		log.Fatal().Msg("SESSION_SECRET is required for the cookie session backend")
	}

	var rdb *goredis.Client
	if cfg.Session.Backend == "redis" {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("session_backend", cfg.Session.Backend).Msg("taskboard starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("taskboard stopped")
}
