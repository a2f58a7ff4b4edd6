package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hanishin/moneyline/internal/common"
	"github.com/hanishin/moneyline/internal/model"
)

// SaveLoan inserts a loan, replacing any existing record with the same id.
func (s *SQLiteStorage) SaveLoan(ctx context.Context, loan *model.Loan) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if loan == nil {
		return fmt.Errorf("%w: loan", ErrNilParameter)
	}
	if err := loan.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO loans (
			id, name, principal, interest_rate, repayment_type,
			term_months, start_date, payment_day, memo, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		loan.ID, loan.Name, loan.Principal, loan.InterestRate,
		string(loan.RepaymentType), loan.TermMonths, formatDate(loan.StartDate),
		loan.PaymentDay, loan.Memo, formatTimestamp(loan.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to save loan: %w", err)
	}
	return nil
}

// GetLoan fetches one loan by id.
func (s *SQLiteStorage) GetLoan(ctx context.Context, id string) (*model.Loan, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, principal, interest_rate, repayment_type,
		       term_months, start_date, payment_day, memo, created_at
		FROM loans WHERE id = ?`, id)

	loan, err := scanLoan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("loan %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// ListLoans returns all stored loans ordered by start date.
func (s *SQLiteStorage) ListLoans(ctx context.Context) ([]model.Loan, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, principal, interest_rate, repayment_type,
		       term_months, start_date, payment_day, memo, created_at
		FROM loans ORDER BY start_date, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, *loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate loans: %w", err)
	}
	return loans, nil
}

// DeleteLoan removes a loan by id.
func (s *SQLiteStorage) DeleteLoan(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM loans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("loan %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func scanLoan(row rowScanner) (*model.Loan, error) {
	var (
		loan          model.Loan
		repaymentType string
		startDate     string
		memo          sql.NullString
		createdAt     string
	)

	if err := row.Scan(&loan.ID, &loan.Name, &loan.Principal, &loan.InterestRate,
		&repaymentType, &loan.TermMonths, &startDate, &loan.PaymentDay,
		&memo, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan loan: %w", err)
	}

	loan.RepaymentType = model.RepaymentType(repaymentType)
	loan.Memo = memo.String

	var err error
	if loan.StartDate, err = parseDate(startDate); err != nil {
		return nil, err
	}
	if loan.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	return &loan, nil
}
