package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema holds the DDL applied on startup. Every statement is idempotent so
// repeated runs are safe.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS favorites (
		place_id   TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		category   TEXT NOT NULL,
		latitude   DOUBLE PRECISION NOT NULL,
		longitude  DOUBLE PRECISION NOT NULL,
		distance_m DOUBLE PRECISION NOT NULL,
		relevance  DOUBLE PRECISION NOT NULL,
		attributes JSONB NOT NULL DEFAULT '{}'::jsonb,
		saved_at   TIMESTAMPTZ NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS reviews (
		review_id  UUID PRIMARY KEY,
		place_id   TEXT NOT NULL,
		stars      SMALLINT NOT NULL CHECK (stars BETWEEN 1 AND 5),
		comment    TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS reviews_place_created_idx ON reviews (place_id, created_at DESC);`,
}

// NewDatabase creates a pgx connection pool for the given connection
// parameters and verifies it with a ping.
func NewDatabase(ctx context.Context, host, port, user, password, name string) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, name)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// EnsureSchema applies the favorites and reviews DDL.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	r.log.DebugContext(ctx, "Database schema is up to date")

	return nil
}
