package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard/internal/core/domain"
)

// EnsureSchema creates the users and tasks tables when absent. The unique
// username constraint and the owner foreign key live in the store so they
// hold under concurrent requests; application code never re-checks them.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS tasks (
	id         BIGSERIAL PRIMARY KEY,
	user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	text       TEXT NOT NULL,
	completed  BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_tasks_user_id ON tasks (user_id);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SeedAdmin guarantees the seed account exists so a fresh deployment is
// usable without manual provisioning. The seed password bypasses the
// strength policy on purpose; it is stored hashed like any other. Idempotent
// across restarts: ON CONFLICT leaves an existing admin untouched.
func SeedAdmin(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(domain.SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	res, err := db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash) VALUES ($1, $2)
		 ON CONFLICT (username) DO NOTHING`,
		domain.SeedUsername, string(hash),
	)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		log.Info().Str("username", domain.SeedUsername).Msg("seed account created")
	}
	return nil
}
