package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a fatal
// error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema: transactions, loans, life events",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS transactions (
					id TEXT PRIMARY KEY,
					title TEXT NOT NULL,
					amount INTEGER NOT NULL,
					type TEXT NOT NULL,
					category TEXT NOT NULL,
					date TEXT NOT NULL,
					recurrence TEXT NOT NULL,
					recurrence_end_date TEXT,
					memo TEXT,
					created_at TEXT NOT NULL
				)`,
				`CREATE INDEX idx_transactions_date ON transactions(date)`,
				`CREATE INDEX idx_transactions_type ON transactions(type)`,

				`CREATE TABLE IF NOT EXISTS loans (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					principal INTEGER NOT NULL,
					interest_rate REAL NOT NULL,
					repayment_type TEXT NOT NULL,
					term_months INTEGER NOT NULL,
					start_date TEXT NOT NULL,
					payment_day INTEGER NOT NULL,
					memo TEXT,
					created_at TEXT NOT NULL
				)`,
				`CREATE INDEX idx_loans_start_date ON loans(start_date)`,

				`CREATE TABLE IF NOT EXISTS life_events (
					id TEXT PRIMARY KEY,
					title TEXT NOT NULL,
					category TEXT NOT NULL,
					date TEXT NOT NULL,
					description TEXT,
					is_important INTEGER NOT NULL DEFAULT 0,
					color TEXT NOT NULL,
					created_at TEXT NOT NULL
				)`,
				`CREATE INDEX idx_life_events_date ON life_events(date)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute migration query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Assets for net-worth tracking",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS assets (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					category TEXT NOT NULL,
					purchase_value INTEGER NOT NULL DEFAULT 0,
					current_value INTEGER NOT NULL DEFAULT 0,
					purchase_date TEXT,
					description TEXT,
					memo TEXT,
					created_at TEXT NOT NULL
				)`,
				`CREATE INDEX idx_assets_category ON assets(category)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute migration query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version, applying
// each pending migration in its own transaction.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	if currentVersion > ExpectedSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than expected %d",
			currentVersion, ExpectedSchemaVersion)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		slog.Info("applying migration",
			"version", migration.Version,
			"description", migration.Description)

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		// PRAGMA doesn't support placeholders
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version: %w", err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}
