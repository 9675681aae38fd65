package database

import (
	"context"
	"fmt"
)

const createUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
		id              BIGSERIAL PRIMARY KEY,
		name            VARCHAR(100),
		email           VARCHAR(255) UNIQUE NOT NULL,
		password_digest VARCHAR(255) NOT NULL,
		balance         NUMERIC(12, 2) NOT NULL DEFAULT 0.00,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

// tickets has no write path yet; selections go into details as JSON.
const createTicketsTable = `
	CREATE TABLE IF NOT EXISTS tickets (
		id               BIGSERIAL PRIMARY KEY,
		user_id          BIGINT,
		code             VARCHAR(64) UNIQUE NOT NULL,
		stake            NUMERIC(12, 2),
		potential_return NUMERIC(12, 2),
		details          JSONB,
		status           VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

const createTicketsUserIndex = `
	CREATE INDEX IF NOT EXISTS tickets_user_id_idx ON tickets (user_id)`

var schemaStatements = []struct {
	name string
	sql  string
}{
	{"users", createUsersTable},
	{"tickets", createTicketsTable},
	{"tickets_user_id_idx", createTicketsUserIndex},
}

// EnsureSchema creates the users and tickets tables when they are missing.
// It is safe to call any number of times.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt.sql); err != nil {
			return fmt.Errorf("failed to create %s: %w", stmt.name, err)
		}
	}
	return nil
}
