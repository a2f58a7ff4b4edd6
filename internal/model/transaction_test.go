package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransaction() Transaction {
	return Transaction{
		ID:         "tx-1",
		Title:      "Salary",
		Amount:     3_000_000,
		Type:       TypeIncome,
		Category:   CategorySalary,
		Recurrence: RecurrenceMonthly,
		Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransactionValidate(t *testing.T) {
	tx := validTransaction()
	require.NoError(t, tx.Validate())

	end := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		mutate func(*Transaction)
	}{
		{"missing id", func(tx *Transaction) { tx.ID = "" }},
		{"missing title", func(tx *Transaction) { tx.Title = "" }},
		{"zero amount", func(tx *Transaction) { tx.Amount = 0 }},
		{"negative amount", func(tx *Transaction) { tx.Amount = -100 }},
		{"unknown type", func(tx *Transaction) { tx.Type = "transfer" }},
		{"unknown category", func(tx *Transaction) { tx.Category = "groceries" }},
		{"income with expense category", func(tx *Transaction) { tx.Category = CategoryRent }},
		{"expense with income category", func(tx *Transaction) {
			tx.Type = TypeExpense
			tx.Category = CategorySalary
		}},
		{"unknown recurrence", func(tx *Transaction) { tx.Recurrence = "weekly" }},
		{"missing date", func(tx *Transaction) { tx.Date = time.Time{} }},
		{"end date on one-time", func(tx *Transaction) {
			tx.Recurrence = RecurrenceOnce
			tx.RecurrenceEnd = &end
		}},
		{"end date before anchor", func(tx *Transaction) {
			early := tx.Date.AddDate(0, -1, 0)
			tx.RecurrenceEnd = &early
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)
			assert.ErrorIs(t, tx.Validate(), ErrInvalidTransaction)
		})
	}
}

func TestLoanValidate(t *testing.T) {
	valid := Loan{
		ID:            "loan-1",
		Name:          "Mortgage",
		Principal:     120_000_000,
		InterestRate:  0.048,
		RepaymentType: RepayEqualPrincipalInterest,
		TermMonths:    120,
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PaymentDay:    25,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Loan)
	}{
		{"missing id", func(l *Loan) { l.ID = "" }},
		{"missing name", func(l *Loan) { l.Name = "" }},
		{"zero principal", func(l *Loan) { l.Principal = 0 }},
		{"negative rate", func(l *Loan) { l.InterestRate = -0.01 }},
		{"unknown repayment type", func(l *Loan) { l.RepaymentType = "interest_only" }},
		{"zero term", func(l *Loan) { l.TermMonths = 0 }},
		{"missing start date", func(l *Loan) { l.StartDate = time.Time{} }},
		{"payment day zero", func(l *Loan) { l.PaymentDay = 0 }},
		{"payment day past 28", func(l *Loan) { l.PaymentDay = 31 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := valid
			tt.mutate(&loan)
			assert.ErrorIs(t, loan.Validate(), ErrInvalidLoan)
		})
	}

	// Zero interest is a valid loan, not an error.
	free := valid
	free.InterestRate = 0
	assert.NoError(t, free.Validate())
}

func TestCategoryTypeAgreement(t *testing.T) {
	for _, c := range IncomeCategories() {
		assert.True(t, c.Valid(), "category %q", c)
		assert.Equal(t, TypeIncome, c.Type(), "category %q", c)
	}
	for _, c := range ExpenseCategories() {
		assert.True(t, c.Valid(), "category %q", c)
		assert.Equal(t, TypeExpense, c.Type(), "category %q", c)
	}
	assert.False(t, Category("groceries").Valid())
	assert.Equal(t, TransactionType(""), Category("groceries").Type())
}
