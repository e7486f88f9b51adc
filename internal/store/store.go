// Package store provides PostgreSQL persistence for job analyses,
// candidate profiles, and user accounts.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping verifies the database connection is alive
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// schemaStatements creates the jobfit tables. Statements are idempotent so
// InitSchema is safe to run on every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		password_set  BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users (LOWER(email))`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		phone      TEXT NOT NULL DEFAULT '',
		summary    TEXT NOT NULL DEFAULT '',
		skills     TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS experiences (
		id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		profile_id   UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		company      TEXT NOT NULL DEFAULT '',
		start_date   TEXT NOT NULL DEFAULT '',
		end_date     TEXT NOT NULL DEFAULT '',
		description  TEXT NOT NULL DEFAULT '',
		achievements JSONB NOT NULL DEFAULT '[]',
		ordinal      INT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_experiences_profile ON experiences (profile_id, ordinal)`,
	`CREATE TABLE IF NOT EXISTS analyses (
		id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title            TEXT NOT NULL,
		company          TEXT NOT NULL,
		job_url          TEXT NOT NULL DEFAULT '',
		job_text         TEXT NOT NULL DEFAULT '',
		analysis         JSONB NOT NULL,
		tags             JSONB NOT NULL DEFAULT '[]',
		skills_count     INT NOT NULL DEFAULT 0,
		experience_level TEXT NOT NULL DEFAULT 'unknown',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_analyses_company ON analyses (company)`,
	`CREATE INDEX IF NOT EXISTS idx_analyses_level ON analyses (experience_level)`,
}

// InitSchema creates the jobfit tables if they do not exist
func (s *Store) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
