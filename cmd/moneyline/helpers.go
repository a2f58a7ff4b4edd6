package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/hanishin/moneyline/internal/common"
	"github.com/hanishin/moneyline/internal/config"
	"github.com/hanishin/moneyline/internal/forecast"
	"github.com/hanishin/moneyline/internal/service"
	"github.com/hanishin/moneyline/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/moneyline/moneyline.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("failed to open database at %s", dbPath), err)
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadProjector snapshots the store and builds the forecast projector over
// it. The snapshot lists are plain copies, so later store writes can't tear
// an in-flight computation.
func loadProjector(ctx context.Context, store service.Storage) (*forecast.Projector, error) {
	txns, err := store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	loans, err := store.ListLoans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load loans: %w", err)
	}
	events, err := store.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return forecast.NewProjector(txns, loans, events), nil
}

// parseDateArg parses a YYYY-MM-DD command line argument.
func parseDateArg(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected date as YYYY-MM-DD, got %q", s)
	}
	return t, nil
}

// defaultYearMonth fills unset --year/--month flags with the current month.
func defaultYearMonth(year, month int) (int, int) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return year, month
}
