package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hanishin/moneyline/internal/cli"
	"github.com/hanishin/moneyline/internal/forecast"
	"github.com/hanishin/moneyline/internal/model"
)

func summaryCmd() *cobra.Command {
	var (
		year   int
		month  int
		months int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Month, year, and long-horizon projections",
		Long: `Project the timeline forward. With no flags, show the current month in
detail. --months produces an N-month outlook (12 for a year view, 60/120/360
for 5/10/30-year horizons).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			proj, err := loadProjector(ctx, store)
			if err != nil {
				return err
			}

			year, month = defaultYearMonth(year, month)

			if months > 1 {
				renderOutlook(proj, year, month, months)
				return nil
			}
			renderMonthDetail(proj.MonthDetail(year, month))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "start year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "start month 1-12 (default: current)")
	cmd.Flags().IntVar(&months, "months", 1, "number of months to project")

	return cmd
}

func renderMonthDetail(detail forecast.MonthDetail) {
	s := detail.Summary
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%d-%02d", s.Year, s.Month)))

	for _, e := range detail.Events {
		marker := "•"
		if e.IsImportant {
			marker = cli.ImportantStyle.Render("★")
		}
		fmt.Printf("%s %s (%s)\n", marker, e.Title, e.Date.Format("2006-01-02"))
	}
	if len(detail.Events) > 0 {
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, t := range detail.Transactions {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			t.Date.Format("2006-01-02"), t.Title,
			cli.Amount(t.Amount, t.Type == model.TypeIncome))
	}
	for _, p := range detail.Payments {
		fmt.Fprintf(w, "%s\t%s #%d\t%s\n",
			p.Date.Format("2006-01-02"),
			p.LoanName, p.MonthNumber,
			cli.ExpenseStyle.Render("-"+cli.FormatAmount(p.TotalPayment)))
		fmt.Fprintf(w, "\t%s\t\n",
			cli.SubtleStyle.Render(fmt.Sprintf("principal %s, interest %s, %s left",
				cli.FormatAmount(p.Principal),
				cli.FormatAmount(p.Interest),
				cli.FormatAmount(p.RemainingPrincipal))))
	}
	_ = w.Flush()

	fmt.Println()
	fmt.Printf("Income:  %s\n", cli.IncomeStyle.Render(cli.FormatAmount(s.TotalIncome)))
	fmt.Printf("Expense: %s %s\n",
		cli.ExpenseStyle.Render(cli.FormatAmount(s.TotalExpense)),
		cli.SubtleStyle.Render("(loan interest included, principal excluded)"))
	fmt.Printf("Balance: %s\n", cli.BoldStyle.Render(cli.FormatAmount(s.Balance)))
}

func renderOutlook(proj *forecast.Projector, year, month, months int) {
	summaries := proj.MultiMonthSummaries(year, month, months)

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%d-month outlook from %d-%02d", months, year, month)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "Month\tIncome\tExpense\tBalance\tCumulative\t\n")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
		strings.Repeat("-", 7), strings.Repeat("-", 12), strings.Repeat("-", 12),
		strings.Repeat("-", 12), strings.Repeat("-", 14))

	var cumulative int64
	var totalIncome, totalExpense int64
	for _, s := range summaries {
		cumulative += s.Balance
		totalIncome += s.TotalIncome
		totalExpense += s.TotalExpense
		fmt.Fprintf(w, "%d-%02d\t%s\t%s\t%s\t%s\t\n",
			s.Year, s.Month,
			cli.FormatAmount(s.TotalIncome),
			cli.FormatAmount(s.TotalExpense),
			cli.FormatAmount(s.Balance),
			cli.FormatAmount(cumulative))
	}

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n",
		cli.BoldStyle.Render("Total"),
		cli.FormatAmount(totalIncome),
		cli.FormatAmount(totalExpense),
		cli.FormatAmount(totalIncome-totalExpense),
		cli.FormatAmount(cumulative))
}
