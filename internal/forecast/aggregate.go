package forecast

import (
	"sort"
	"sync"

	"github.com/hanishin/moneyline/internal/model"
)

// Projector computes timeline views over one immutable snapshot of the
// store. It holds no mutable entity state; the only thing it accumulates is
// a per-loan schedule cache, so projecting a 30-year horizon costs one
// schedule construction per loan instead of one per loan per month.
//
// The caller owns snapshot consistency: hand the Projector a stable copy of
// the entities for the duration of an aggregate computation. A Projector is
// safe for concurrent use.
type Projector struct {
	schedules    map[string][]model.LoanPayment
	transactions []model.Transaction
	loans        []model.Loan
	events       []model.LifeEvent
	mu           sync.Mutex
}

// MonthDetail is everything one month block on the timeline shows: the
// realized transactions, the loan payments due, the life events, and the
// month's summary line.
type MonthDetail struct {
	Summary      model.MonthSummary
	Transactions []model.Transaction
	Payments     []model.LoanPayment
	Events       []model.LifeEvent
}

// NewProjector builds a projector over a snapshot of transactions, loans,
// and life events.
func NewProjector(transactions []model.Transaction, loans []model.Loan, events []model.LifeEvent) *Projector {
	return &Projector{
		transactions: transactions,
		loans:        loans,
		events:       events,
		schedules:    make(map[string][]model.LoanPayment, len(loans)),
	}
}

// scheduleFor returns the cached amortization table for a loan, building it
// on first use.
func (p *Projector) scheduleFor(loan model.Loan) []model.LoanPayment {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.schedules[loan.ID]; ok {
		return s
	}
	s := Schedule(loan)
	p.schedules[loan.ID] = s
	return s
}

// OccurrencesInMonth expands the snapshot's transactions into the target
// month. See the package-level OccurrencesInMonth for the expansion rules.
func (p *Projector) OccurrencesInMonth(year, month int) []model.Transaction {
	return OccurrencesInMonth(p.transactions, year, month)
}

// PaymentsForMonth returns the payments every active loan posts in
// (year, month). Loans with no payment due that month are skipped.
func (p *Projector) PaymentsForMonth(year, month int) []model.LoanPayment {
	var out []model.LoanPayment
	for _, loan := range p.loans {
		idx := monthIndex(loan, year, month)
		if idx < 1 || idx > loan.TermMonths {
			continue
		}
		out = append(out, p.scheduleFor(loan)[idx-1])
	}
	return out
}

// MonthSummary aggregates one month: transaction amounts summed by type,
// loan interest added to the expense side. Loan principal never counts as
// an expense; repaying it is a balance-sheet transfer.
func (p *Projector) MonthSummary(year, month int) model.MonthSummary {
	var income, expense int64
	for _, t := range p.OccurrencesInMonth(year, month) {
		switch t.Type {
		case model.TypeIncome:
			income += t.Amount
		case model.TypeExpense:
			expense += t.Amount
		}
	}
	for _, pay := range p.PaymentsForMonth(year, month) {
		expense += pay.Interest
	}
	return model.MonthSummary{
		Year:         year,
		Month:        month,
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income - expense,
	}
}

// MultiMonthSummaries produces count consecutive month summaries starting
// at (startYear, startMonth), rolling month overflow into year increments.
// There is no upper bound on count; 60, 120, and 360 months are the usual
// 5/10/30-year horizons.
func (p *Projector) MultiMonthSummaries(startYear, startMonth, count int) []model.MonthSummary {
	summaries := make([]model.MonthSummary, 0, count)
	year, month := startYear, startMonth
	for i := 0; i < count; i++ {
		summaries = append(summaries, p.MonthSummary(year, month))
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return summaries
}

// CumulativeBalance sums month balances over the closed range from
// (fromYear, fromMonth) through (toYear, toMonth).
func (p *Projector) CumulativeBalance(fromYear, fromMonth, toYear, toMonth int) int64 {
	months := (toYear-fromYear)*12 + toMonth - fromMonth + 1
	if months <= 0 {
		return 0
	}
	var balance int64
	for _, s := range p.MultiMonthSummaries(fromYear, fromMonth, months) {
		balance += s.Balance
	}
	return balance
}

// MonthDetail assembles the full timeline block for one month.
func (p *Projector) MonthDetail(year, month int) MonthDetail {
	return MonthDetail{
		Summary:      p.MonthSummary(year, month),
		Transactions: p.OccurrencesInMonth(year, month),
		Payments:     p.PaymentsForMonth(year, month),
		Events:       EventsInMonth(p.events, year, month),
	}
}

// TotalLoanBalance sums the principal still owed across all loans after the
// payments of (year, month) have posted.
func (p *Projector) TotalLoanBalance(year, month int) int64 {
	var total int64
	for _, loan := range p.loans {
		idx := monthIndex(loan, year, month)
		switch {
		case idx < 1:
			total += loan.Principal
		case idx > loan.TermMonths:
			// Paid off.
		default:
			total += p.scheduleFor(loan)[idx-1].RemainingPrincipal
		}
	}
	return total
}

// NetWorth is total asset value minus total outstanding loan principal as
// of (year, month).
func (p *Projector) NetWorth(assets []model.Asset, year, month int) int64 {
	return TotalAssetValue(assets) - p.TotalLoanBalance(year, month)
}

// EventsInMonth filters life events down to those dated in (year, month),
// sorted by date ascending, stable on ties.
func EventsInMonth(events []model.LifeEvent, year, month int) []model.LifeEvent {
	var out []model.LifeEvent
	for _, e := range events {
		if e.Date.Year() == year && int(e.Date.Month()) == month {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// TotalAssetValue sums the current value of all assets.
func TotalAssetValue(assets []model.Asset) int64 {
	var total int64
	for _, a := range assets {
		total += a.CurrentValue
	}
	return total
}
