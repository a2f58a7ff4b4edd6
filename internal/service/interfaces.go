// Package service defines the contracts between the application surfaces
// and their collaborators.
package service

import (
	"context"

	"github.com/hanishin/moneyline/internal/model"
)

// Storage defines the persistence boundary. The forecast core consumes only
// the List side, always against a stable snapshot; the write side exists
// for the entry surfaces (CLI commands, snapshot import).
type Storage interface {
	// Transaction operations
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	// Loan operations
	SaveLoan(ctx context.Context, loan *model.Loan) error
	GetLoan(ctx context.Context, id string) (*model.Loan, error)
	ListLoans(ctx context.Context) ([]model.Loan, error)
	DeleteLoan(ctx context.Context, id string) error

	// Life event operations
	SaveEvent(ctx context.Context, event *model.LifeEvent) error
	ListEvents(ctx context.Context) ([]model.LifeEvent, error)
	DeleteEvent(ctx context.Context, id string) error

	// Asset operations
	SaveAsset(ctx context.Context, asset *model.Asset) error
	ListAssets(ctx context.Context) ([]model.Asset, error)
	DeleteAsset(ctx context.Context, id string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
