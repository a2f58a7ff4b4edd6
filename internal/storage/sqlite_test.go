package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/hanishin/moneyline/internal/common"
	"github.com/hanishin/moneyline/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func testDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestTransactionRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	end := testDate(2026, 3, 15)
	txn := model.Transaction{
		ID:            "txn-1",
		Title:         "Salary",
		Amount:        3_000_000,
		Type:          model.TypeIncome,
		Category:      model.CategorySalary,
		Date:          testDate(2024, 1, 1),
		Recurrence:    model.RecurrenceMonthly,
		RecurrenceEnd: &end,
		Memo:          "main job",
		CreatedAt:     time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
	}

	if err := store.SaveTransaction(ctx, &txn); err != nil {
		t.Fatalf("SaveTransaction: %v", err)
	}

	got, err := store.GetTransaction(ctx, "txn-1")
	if err != nil {
		t.Fatalf("GetTransaction: %v", err)
	}
	if got.Title != txn.Title || got.Amount != txn.Amount || got.Category != txn.Category {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if !got.Date.Equal(txn.Date) {
		t.Errorf("date mismatch: got %v, want %v", got.Date, txn.Date)
	}
	if got.RecurrenceEnd == nil || !got.RecurrenceEnd.Equal(end) {
		t.Errorf("recurrence end mismatch: got %v", got.RecurrenceEnd)
	}
	if !got.CreatedAt.Equal(txn.CreatedAt) {
		t.Errorf("createdAt mismatch: got %v, want %v", got.CreatedAt, txn.CreatedAt)
	}
}

func TestTransactionValidationRejected(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// Income type with an expense category must be rejected at the boundary.
	txn := model.Transaction{
		ID:         "bad-1",
		Title:      "Mismatch",
		Amount:     100,
		Type:       model.TypeIncome,
		Category:   model.CategoryRent,
		Date:       testDate(2024, 1, 1),
		Recurrence: model.RecurrenceOnce,
		CreatedAt:  time.Now(),
	}
	if err := store.SaveTransaction(ctx, &txn); !errors.Is(err, model.ErrInvalidTransaction) {
		t.Fatalf("expected ErrInvalidTransaction, got %v", err)
	}
}

func TestTransactionDelete(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	txn := model.Transaction{
		ID: "txn-1", Title: "Lunch", Amount: 12_000,
		Type: model.TypeExpense, Category: model.CategoryFood,
		Date: testDate(2024, 5, 2), Recurrence: model.RecurrenceOnce,
		CreatedAt: time.Now(),
	}
	if err := store.SaveTransaction(ctx, &txn); err != nil {
		t.Fatalf("SaveTransaction: %v", err)
	}
	if err := store.DeleteTransaction(ctx, "txn-1"); err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if _, err := store.GetTransaction(ctx, "txn-1"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.DeleteTransaction(ctx, "txn-1"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestListTransactionsOrdered(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, day := range []int{20, 5, 11} {
		txn := model.Transaction{
			ID:    fmt.Sprintf("txn-%d", i+1),
			Title: fmt.Sprintf("Entry %d", i+1), Amount: 1000,
			Type: model.TypeExpense, Category: model.CategoryFood,
			Date: testDate(2024, 3, day), Recurrence: model.RecurrenceOnce,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.SaveTransaction(ctx, &txn); err != nil {
			t.Fatalf("SaveTransaction: %v", err)
		}
	}

	txns, err := store.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txns) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txns))
	}
	for i := 1; i < len(txns); i++ {
		if txns[i].Date.Before(txns[i-1].Date) {
			t.Errorf("transactions out of date order at %d", i)
		}
	}
}

func TestLoanRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	loan := model.Loan{
		ID:            "loan-1",
		Name:          "Mortgage",
		Principal:     120_000_000,
		InterestRate:  4.8,
		RepaymentType: model.RepayEqualPrincipalInterest,
		TermMonths:    120,
		StartDate:     testDate(2024, 1, 1),
		PaymentDay:    25,
		Memo:          "fixed rate",
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}

	if err := store.SaveLoan(ctx, &loan); err != nil {
		t.Fatalf("SaveLoan: %v", err)
	}

	got, err := store.GetLoan(ctx, "loan-1")
	if err != nil {
		t.Fatalf("GetLoan: %v", err)
	}
	if got.Principal != loan.Principal || got.InterestRate != loan.InterestRate {
		t.Errorf("loan mismatch: got %+v", got)
	}
	if got.RepaymentType != model.RepayEqualPrincipalInterest {
		t.Errorf("repayment type mismatch: got %q", got.RepaymentType)
	}
	if got.TermMonths != 120 || got.PaymentDay != 25 {
		t.Errorf("term/payment day mismatch: got %+v", got)
	}
	if !got.StartDate.Equal(loan.StartDate) {
		t.Errorf("start date mismatch: got %v", got.StartDate)
	}

	if err := store.DeleteLoan(ctx, "loan-1"); err != nil {
		t.Fatalf("DeleteLoan: %v", err)
	}
	if _, err := store.GetLoan(ctx, "loan-1"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestLoanValidationRejected(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	loan := model.Loan{
		ID: "bad-loan", Name: "Zero term", Principal: 1_000_000,
		InterestRate: 5, RepaymentType: model.RepayBullet,
		TermMonths: 0, StartDate: testDate(2024, 1, 1), PaymentDay: 15,
	}
	if err := store.SaveLoan(ctx, &loan); !errors.Is(err, model.ErrInvalidLoan) {
		t.Fatalf("expected ErrInvalidLoan for zero term, got %v", err)
	}

	loan.TermMonths = 12
	loan.PaymentDay = 31
	if err := store.SaveLoan(ctx, &loan); !errors.Is(err, model.ErrInvalidLoan) {
		t.Fatalf("expected ErrInvalidLoan for payment day 31, got %v", err)
	}
}

func TestEventRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	event := model.LifeEvent{
		ID:          "evt-1",
		Title:       "Lease renewal",
		Category:    model.EventContract,
		Date:        testDate(2025, 8, 20),
		Description: "two-year term",
		IsImportant: true,
		Color:       model.ColorGreen,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	if err := store.SaveEvent(ctx, &event); err != nil {
		t.Fatalf("SaveEvent: %v", err)
	}

	events, err := store.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	got := events[0]
	if got.Title != event.Title || got.Category != event.Category || !got.IsImportant {
		t.Errorf("event mismatch: got %+v", got)
	}

	if err := store.DeleteEvent(ctx, "evt-1"); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if err := store.DeleteEvent(ctx, "evt-1"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestAssetRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	asset := model.Asset{
		ID:            "asset-1",
		Name:          "Apartment",
		Category:      model.AssetRealEstate,
		PurchaseValue: 350_000_000,
		CurrentValue:  400_000_000,
		PurchaseDate:  testDate(2022, 6, 1),
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}

	if err := store.SaveAsset(ctx, &asset); err != nil {
		t.Fatalf("SaveAsset: %v", err)
	}

	assets, err := store.ListAssets(ctx)
	if err != nil {
		t.Fatalf("ListAssets: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(assets))
	}
	got := assets[0]
	if got.CurrentValue != asset.CurrentValue || got.Category != asset.Category {
		t.Errorf("asset mismatch: got %+v", got)
	}
	if !got.PurchaseDate.Equal(asset.PurchaseDate) {
		t.Errorf("purchase date mismatch: got %v", got.PurchaseDate)
	}

	if err := store.DeleteAsset(ctx, "asset-1"); err != nil {
		t.Fatalf("DeleteAsset: %v", err)
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	txn := model.Transaction{
		ID: "txn-1", Title: "Gym", Amount: 50_000,
		Type: model.TypeExpense, Category: model.CategorySubscription,
		Date: testDate(2024, 2, 1), Recurrence: model.RecurrenceMonthly,
		CreatedAt: time.Now(),
	}
	if err := store.SaveTransaction(ctx, &txn); err != nil {
		t.Fatalf("SaveTransaction: %v", err)
	}

	txn.Amount = 55_000
	if err := store.SaveTransaction(ctx, &txn); err != nil {
		t.Fatalf("SaveTransaction update: %v", err)
	}

	got, err := store.GetTransaction(ctx, "txn-1")
	if err != nil {
		t.Fatalf("GetTransaction: %v", err)
	}
	if got.Amount != 55_000 {
		t.Errorf("expected updated amount 55000, got %d", got.Amount)
	}

	txns, err := store.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txns) != 1 {
		t.Errorf("expected a single row after update, got %d", len(txns))
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// createTestStorage already migrated once.
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var version int
	if err := store.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("read user_version: %v", err)
	}
	if version != ExpectedSchemaVersion {
		t.Errorf("expected schema version %d, got %d", ExpectedSchemaVersion, version)
	}
}
