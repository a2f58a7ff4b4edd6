package forecast

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hanishin/moneyline/internal/model"
)

// Schedule computes a loan's full amortization table in one pass: exactly
// TermMonths entries, numbered 1..TermMonths, with the remaining principal
// falling to exactly zero at the final entry.
//
// Arithmetic runs in decimals at full precision; principal, interest, and
// total are rounded to whole currency units only when each entry is
// emitted, so rounding error never compounds through the simulation. The
// remaining principal is floored at zero.
func Schedule(loan model.Loan) []model.LoanPayment {
	principal := decimal.NewFromInt(loan.Principal)
	rate := decimal.NewFromFloat(loan.InterestRate / 100 / 12)
	n := loan.TermMonths

	schedule := make([]model.LoanPayment, 0, n)

	switch loan.RepaymentType {
	case model.RepayEqualPrincipalInterest:
		payment := annuityPayment(loan)
		remaining := principal
		for k := 1; k <= n; k++ {
			interest := remaining.Mul(rate)
			principalPart := payment.Sub(interest)
			if k == n {
				// Retire whatever is left so the balance lands on zero
				// instead of a rounding residue.
				principalPart = remaining
			}
			remaining = remaining.Sub(principalPart)
			schedule = append(schedule, entry(loan, k, principalPart, interest, remaining))
		}

	case model.RepayEqualPrincipal:
		portion := principal.Div(decimal.NewFromInt(int64(n)))
		for k := 1; k <= n; k++ {
			before := principal.Sub(portion.Mul(decimal.NewFromInt(int64(k - 1))))
			interest := before.Mul(rate)
			schedule = append(schedule, entry(loan, k, portion, interest, before.Sub(portion)))
		}

	case model.RepayBullet:
		interest := principal.Mul(rate)
		for k := 1; k <= n; k++ {
			principalPart := decimal.Zero
			remaining := principal
			if k == n {
				principalPart = principal
				remaining = decimal.Zero
			}
			schedule = append(schedule, entry(loan, k, principalPart, interest, remaining))
		}
	}

	return schedule
}

// PaymentForMonth returns the payment a loan posts in (year, month). The
// second return value is false when no payment is due that month: the month
// precedes the loan's start, or lies past its term. That is the normal
// inactive outcome, not an error.
//
// Each call recomputes the schedule; callers projecting many months should
// go through Projector, which caches one schedule per loan.
func PaymentForMonth(loan model.Loan, year, month int) (model.LoanPayment, bool) {
	idx := monthIndex(loan, year, month)
	if idx < 1 || idx > loan.TermMonths {
		return model.LoanPayment{}, false
	}
	return Schedule(loan)[idx-1], true
}

// RemainingBalance returns the principal still owed after the payment that
// posts in (year, month): the full principal before the loan starts, zero
// once the term has run out.
func RemainingBalance(loan model.Loan, year, month int) int64 {
	idx := monthIndex(loan, year, month)
	switch {
	case idx < 1:
		return loan.Principal
	case idx > loan.TermMonths:
		return 0
	}
	return Schedule(loan)[idx-1].RemainingPrincipal
}

// annuityPayment computes the constant payment of the standard annuity
// formula A = P*i*(1+i)^n / ((1+i)^n - 1), or P/n when the rate is zero.
// The power term is evaluated in float64 and the result carried as a
// decimal at full precision.
func annuityPayment(loan model.Loan) decimal.Decimal {
	r := loan.InterestRate / 100 / 12
	if r == 0 {
		return decimal.NewFromInt(loan.Principal).Div(decimal.NewFromInt(int64(loan.TermMonths)))
	}
	factor := math.Pow(1+r, float64(loan.TermMonths))
	return decimal.NewFromFloat(float64(loan.Principal) * r * factor / (factor - 1))
}

// monthIndex converts a target month into the loan's 1-indexed payment
// number; the month of StartDate is payment 1.
func monthIndex(loan model.Loan, year, month int) int {
	return (year-loan.StartDate.Year())*12 + month - int(loan.StartDate.Month()) + 1
}

// entry rounds one simulated period into an emitted LoanPayment.
func entry(loan model.Loan, monthNumber int, principal, interest, remaining decimal.Decimal) model.LoanPayment {
	rem := roundUnit(remaining)
	if rem < 0 {
		rem = 0
	}
	return model.LoanPayment{
		LoanID:             loan.ID,
		LoanName:           loan.Name,
		Date:               paymentDate(loan, monthNumber),
		MonthNumber:        monthNumber,
		Principal:          roundUnit(principal),
		Interest:           roundUnit(interest),
		TotalPayment:       roundUnit(principal.Add(interest)),
		RemainingPrincipal: rem,
	}
}

// paymentDate synthesizes the posting date of payment monthNumber:
// PaymentDay of the month monthNumber-1 months after the start month.
// PaymentDay is capped at 28, so no day normalization can occur here.
func paymentDate(loan model.Loan, monthNumber int) time.Time {
	return time.Date(loan.StartDate.Year(),
		loan.StartDate.Month()+time.Month(monthNumber-1),
		loan.PaymentDay, 0, 0, 0, 0, time.UTC)
}

// roundUnit rounds to the nearest whole currency unit, halves away from
// zero.
func roundUnit(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
