package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hanishin/moneyline/internal/common"
	"github.com/hanishin/moneyline/internal/model"
)

// SaveTransaction inserts a transaction, replacing any existing record with
// the same id.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if err := txn.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO transactions (
			id, title, amount, type, category, date,
			recurrence, recurrence_end_date, memo, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.Title, txn.Amount, string(txn.Type), string(txn.Category),
		formatDate(txn.Date), string(txn.Recurrence),
		formatDatePtr(txn.RecurrenceEnd), txn.Memo, formatTimestamp(txn.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// GetTransaction fetches one transaction by id.
func (s *SQLiteStorage) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, amount, type, category, date,
		       recurrence, recurrence_end_date, memo, created_at
		FROM transactions WHERE id = ?`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions returns all stored transactions ordered by date, then
// creation time, so insertion order breaks date ties deterministically.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, amount, type, category, date,
		       recurrence, recurrence_end_date, memo, created_at
		FROM transactions ORDER BY date, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}

// DeleteTransaction removes a transaction by id.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for the scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var (
		txn        model.Transaction
		txnType    string
		category   string
		dateStr    string
		recurrence string
		endDate    sql.NullString
		memo       sql.NullString
		createdAt  string
	)

	if err := row.Scan(&txn.ID, &txn.Title, &txn.Amount, &txnType, &category,
		&dateStr, &recurrence, &endDate, &memo, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	txn.Type = model.TransactionType(txnType)
	txn.Category = model.Category(category)
	txn.Recurrence = model.Recurrence(recurrence)
	txn.Memo = memo.String

	var err error
	if txn.Date, err = parseDate(dateStr); err != nil {
		return nil, err
	}
	if txn.RecurrenceEnd, err = parseDatePtr(endDate); err != nil {
		return nil, err
	}
	if txn.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	return &txn, nil
}
