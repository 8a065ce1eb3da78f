package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateSchema brings up the tables this server needs. Every statement is
// idempotent so it runs unconditionally at boot.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			settings JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			type TEXT NOT NULL CHECK (type IN ('income', 'expense')),
			color TEXT NOT NULL,
			icon TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			amount DOUBLE PRECISION NOT NULL CHECK (amount >= 0),
			type TEXT NOT NULL CHECK (type IN ('income', 'expense')),
			category_id TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date TIMESTAMPTZ NOT NULL,
			is_recurring BOOLEAN NOT NULL DEFAULT FALSE,
			recurring_frequency TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS budgets (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			category_id TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL CHECK (amount >= 0),
			period TEXT NOT NULL DEFAULT 'monthly',
			start_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS goals (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			target_amount DOUBLE PRECISION NOT NULL CHECK (target_amount >= 0),
			current_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			target_date TIMESTAMPTZ NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions (user_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_categories_user ON categories (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_budgets_user ON budgets (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals (user_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
