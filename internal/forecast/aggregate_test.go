package forecast

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanishin/moneyline/internal/model"
)

func testSnapshot() ([]model.Transaction, []model.Loan, []model.LifeEvent) {
	txns := []model.Transaction{
		monthlyIncome("salary", 3_000_000, date(2024, 1, 1)),
		{
			ID: "rent", Title: "Rent", Amount: 1_000_000,
			Type: model.TypeExpense, Category: model.CategoryRent,
			Date: date(2024, 1, 5), Recurrence: model.RecurrenceMonthly,
		},
	}
	loans := []model.Loan{
		{
			ID: "bridge", Name: "Bridge", Principal: 50_000_000, InterestRate: 6.0,
			RepaymentType: model.RepayBullet, TermMonths: 12,
			StartDate: date(2024, 1, 1), PaymentDay: 25,
		},
	}
	events := []model.LifeEvent{
		{
			ID: "move", Title: "Move in", Category: model.EventHousing,
			Color: model.ColorBlue, Date: date(2024, 3, 2), IsImportant: true,
		},
	}
	return txns, loans, events
}

// The expense side of a month with an active loan is the expense
// transactions plus the loan interest; principal is never counted, and
// balance = income - expense always holds.
func TestProjector_MonthSummary(t *testing.T) {
	txns, loans, events := testSnapshot()
	p := NewProjector(txns, loans, events)

	got := p.MonthSummary(2024, 2)
	assert.Equal(t, int64(3_000_000), got.TotalIncome)
	assert.Equal(t, int64(1_000_000+250_000), got.TotalExpense,
		"rent plus bullet-loan interest, no principal")
	assert.Equal(t, got.TotalIncome-got.TotalExpense, got.Balance)

	// December is the bullet's final payment: 50M principal comes due but
	// the expense side still only carries the 250,000 interest.
	got = p.MonthSummary(2024, 12)
	assert.Equal(t, int64(1_250_000), got.TotalExpense)
	assert.Equal(t, int64(1_750_000), got.Balance)

	// After the loan's term, only the transactions remain.
	got = p.MonthSummary(2025, 1)
	assert.Equal(t, int64(1_000_000), got.TotalExpense)
	assert.Equal(t, int64(2_000_000), got.Balance)
}

func TestProjector_MultiMonthSummaries(t *testing.T) {
	txns, loans, events := testSnapshot()
	p := NewProjector(txns, loans, events)

	got := p.MultiMonthSummaries(2024, 11, 4)
	require.Len(t, got, 4)

	wantMonths := [][2]int{{2024, 11}, {2024, 12}, {2025, 1}, {2025, 2}}
	for i, s := range got {
		assert.Equal(t, wantMonths[i][0], s.Year)
		assert.Equal(t, wantMonths[i][1], s.Month)
		assert.Equal(t, s.TotalIncome-s.TotalExpense, s.Balance)
	}
}

// A 30-year projection over several loans stays cheap because each loan's
// schedule is built once and indexed thereafter.
func TestProjector_LongHorizon(t *testing.T) {
	txns, loans, events := testSnapshot()
	loans = append(loans, model.Loan{
		ID: "mortgage", Name: "Mortgage", Principal: 120_000_000, InterestRate: 4.8,
		RepaymentType: model.RepayEqualPrincipalInterest, TermMonths: 360,
		StartDate: date(2024, 1, 1), PaymentDay: 25,
	})
	p := NewProjector(txns, loans, events)

	got := p.MultiMonthSummaries(2024, 1, 360)
	require.Len(t, got, 360)
	assert.Equal(t, 2053, got[359].Year)
	assert.Equal(t, 12, got[359].Month)

	for _, s := range got {
		assert.Equal(t, s.TotalIncome-s.TotalExpense, s.Balance,
			"%d-%02d: balance identity", s.Year, s.Month)
	}
}

func TestProjector_CumulativeBalance(t *testing.T) {
	txns := []model.Transaction{monthlyIncome("salary", 3_000_000, date(2024, 1, 1))}
	p := NewProjector(txns, nil, nil)

	assert.Equal(t, int64(9_000_000), p.CumulativeBalance(2024, 1, 2024, 3))
	assert.Equal(t, int64(36_000_000), p.CumulativeBalance(2024, 1, 2024, 12))
	assert.Zero(t, p.CumulativeBalance(2024, 6, 2024, 5), "empty range")
}

func TestProjector_MonthDetail(t *testing.T) {
	txns, loans, events := testSnapshot()
	p := NewProjector(txns, loans, events)

	got := p.MonthDetail(2024, 3)
	assert.Len(t, got.Transactions, 2)
	require.Len(t, got.Payments, 1)
	assert.Equal(t, 3, got.Payments[0].MonthNumber)
	require.Len(t, got.Events, 1)
	assert.Equal(t, "move", got.Events[0].ID)
	assert.Equal(t, got.Summary, p.MonthSummary(2024, 3))
}

func TestEventsInMonth(t *testing.T) {
	events := []model.LifeEvent{
		{ID: "b", Title: "Renewal", Category: model.EventContract, Color: model.ColorGreen, Date: date(2025, 8, 20)},
		{ID: "a", Title: "New job", Category: model.EventCareer, Color: model.ColorPurple, Date: date(2025, 8, 1)},
		{ID: "c", Title: "Graduation", Category: model.EventEducation, Color: model.ColorPink, Date: date(2026, 2, 25)},
	}

	got := EventsInMonth(events, 2025, 8)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID, "sorted by date")
	assert.Equal(t, "b", got[1].ID)

	assert.Empty(t, EventsInMonth(events, 2025, 9))
}

func TestProjector_NetWorth(t *testing.T) {
	_, loans, _ := testSnapshot()
	p := NewProjector(nil, loans, nil)

	assets := []model.Asset{
		{ID: "apt", Name: "Apartment", Category: model.AssetRealEstate, CurrentValue: 400_000_000},
		{ID: "dep", Name: "Deposit", Category: model.AssetSavings, CurrentValue: 20_000_000},
	}

	assert.Equal(t, int64(420_000_000), TotalAssetValue(assets))
	assert.Equal(t, int64(50_000_000), p.TotalLoanBalance(2024, 6), "bullet stays at full principal")
	assert.Equal(t, int64(370_000_000), p.NetWorth(assets, 2024, 6))
	assert.Equal(t, int64(420_000_000), p.NetWorth(assets, 2025, 6), "loan paid off after term")
}

// Summaries may be computed from many goroutines at once over one snapshot.
func TestProjector_ConcurrentUse(t *testing.T) {
	txns, loans, events := testSnapshot()
	p := NewProjector(txns, loans, events)
	want := p.MonthSummary(2024, 6)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, p.MonthSummary(2024, 6))
		}()
	}
	wg.Wait()
}
