package model

import (
	"fmt"
	"time"
)

// RepaymentType selects the amortization scheme for a loan.
type RepaymentType string

const (
	// RepayEqualPrincipalInterest is annuity repayment: a fixed total
	// payment per period, with the interest share shrinking over time.
	RepayEqualPrincipalInterest RepaymentType = "equal_principal_interest"
	// RepayEqualPrincipal repays a fixed principal portion per period, so
	// the total payment shrinks as interest falls off.
	RepayEqualPrincipal RepaymentType = "equal_principal"
	// RepayBullet pays interest only until the final period, when the full
	// principal is due.
	RepayBullet RepaymentType = "bullet"
)

// Valid reports whether the repayment type is a known value.
func (r RepaymentType) Valid() bool {
	switch r {
	case RepayEqualPrincipalInterest, RepayEqualPrincipal, RepayBullet:
		return true
	}
	return false
}

// Loan represents a single amortizing liability. It produces exactly
// TermMonths payments, numbered 1..TermMonths, the first falling in the
// month of StartDate.
type Loan struct {
	StartDate     time.Time
	CreatedAt     time.Time
	ID            string
	Name          string
	Memo          string
	RepaymentType RepaymentType
	Principal     int64
	InterestRate  float64
	TermMonths    int
	PaymentDay    int
}

// Validate checks the invariants the entry layer must guarantee before a
// loan reaches the store.
func (l *Loan) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLoan)
	}
	if l.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidLoan)
	}
	if l.Principal <= 0 {
		return fmt.Errorf("%w: principal must be positive, got %d", ErrInvalidLoan, l.Principal)
	}
	if l.InterestRate < 0 {
		return fmt.Errorf("%w: negative interest rate %g", ErrInvalidLoan, l.InterestRate)
	}
	if !l.RepaymentType.Valid() {
		return fmt.Errorf("%w: unknown repayment type %q", ErrInvalidLoan, l.RepaymentType)
	}
	if l.TermMonths < 1 {
		return fmt.Errorf("%w: term must be at least 1 month, got %d", ErrInvalidLoan, l.TermMonths)
	}
	if l.StartDate.IsZero() {
		return fmt.Errorf("%w: missing start date", ErrInvalidLoan)
	}
	if l.PaymentDay < 1 || l.PaymentDay > 28 {
		return fmt.Errorf("%w: payment day must be 1-28, got %d", ErrInvalidLoan, l.PaymentDay)
	}
	return nil
}

// LoanPayment is one period of a loan's amortization schedule, computed on
// demand and never stored. All amounts are rounded to whole currency units.
type LoanPayment struct {
	Date               time.Time
	LoanID             string
	LoanName           string
	MonthNumber        int
	Principal          int64
	Interest           int64
	TotalPayment       int64
	RemainingPrincipal int64
}
