package database

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order at startup. Each statement is idempotent
// so a restart against an existing database is safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS people (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		balance DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS split_bills (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL,
		paid_by_id BIGINT NOT NULL REFERENCES people(id),
		split_type TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		notes TEXT,
		date TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS split_participants (
		id BIGSERIAL PRIMARY KEY,
		split_bill_id BIGINT NOT NULL REFERENCES split_bills(id) ON DELETE CASCADE,
		person_id BIGINT NOT NULL REFERENCES people(id),
		amount DOUBLE PRECISION NOT NULL,
		percentage DOUBLE PRECISION,
		shares DOUBLE PRECISION,
		has_paid BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		subtitle TEXT,
		amount DOUBLE PRECISION NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		date TIMESTAMPTZ NOT NULL,
		split_bill_id BIGINT REFERENCES split_bills(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS subscriptions (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		cycle TEXT NOT NULL,
		start_date TIMESTAMPTZ NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		notes TEXT,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS settlements (
		id BIGSERIAL PRIMARY KEY,
		reference TEXT NOT NULL UNIQUE,
		person_id BIGINT NOT NULL REFERENCES people(id),
		cleared_amount DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions (date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions (category)`,
	`CREATE INDEX IF NOT EXISTS idx_split_participants_bill ON split_participants (split_bill_id)`,
	`CREATE INDEX IF NOT EXISTS idx_settlements_person ON settlements (person_id)`,
}

// Migrate applies the schema migrations in order
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
