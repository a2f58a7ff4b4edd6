package model

// MonthSummary is the aggregate money movement of one calendar month,
// computed on demand and never stored. TotalExpense includes loan interest
// but never loan principal; principal repayment is a balance-sheet
// transfer, not an expense.
type MonthSummary struct {
	Year         int
	Month        int
	TotalIncome  int64
	TotalExpense int64
	Balance      int64
}
