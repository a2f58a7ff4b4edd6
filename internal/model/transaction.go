package model

import (
	"fmt"
	"time"
)

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the transaction type is a known value.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Recurrence describes how often a transaction repeats.
type Recurrence string

const (
	// RecurrenceOnce is a one-time transaction.
	RecurrenceOnce Recurrence = "once"
	// RecurrenceMonthly repeats every month on the anchor's day-of-month.
	RecurrenceMonthly Recurrence = "monthly"
	// RecurrenceYearly repeats every year on the anchor's month and day.
	RecurrenceYearly Recurrence = "yearly"
)

// Valid reports whether the recurrence is a known value.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceOnce, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

// Transaction represents a single income or expense record. For recurring
// transactions Date is the anchor: the first occurrence, from which all
// future occurrences are derived. Amounts are whole currency units.
type Transaction struct {
	Date          time.Time
	RecurrenceEnd *time.Time
	CreatedAt     time.Time
	ID            string
	Title         string
	Memo          string
	Type          TransactionType
	Category      Category
	Recurrence    Recurrence
	Amount        int64
}

// Validate checks the invariants the entry layer must guarantee before a
// transaction reaches the store.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidTransaction)
	}
	if t.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidTransaction)
	}
	if t.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidTransaction, t.Amount)
	}
	if !t.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, t.Type)
	}
	if !t.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidTransaction, t.Category)
	}
	if t.Category.Type() != t.Type {
		return fmt.Errorf("%w: category %q is not a %s category", ErrInvalidTransaction, t.Category, t.Type)
	}
	if !t.Recurrence.Valid() {
		return fmt.Errorf("%w: unknown recurrence %q", ErrInvalidTransaction, t.Recurrence)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if t.RecurrenceEnd != nil {
		if t.Recurrence == RecurrenceOnce {
			return fmt.Errorf("%w: end date on a one-time transaction", ErrInvalidTransaction)
		}
		if t.RecurrenceEnd.Before(t.Date) {
			return fmt.Errorf("%w: end date precedes anchor date", ErrInvalidTransaction)
		}
	}
	return nil
}
