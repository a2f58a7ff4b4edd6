package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hanishin/moneyline/internal/cli"
	"github.com/hanishin/moneyline/internal/forecast"
	"github.com/hanishin/moneyline/internal/model"
)

func loanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Manage loans",
		Long:  `Add, list, and delete loans, and print amortization schedules.`,
	}

	cmd.AddCommand(addLoanCmd())
	cmd.AddCommand(listLoansCmd())
	cmd.AddCommand(deleteLoanCmd())
	cmd.AddCommand(loanScheduleCmd())

	return cmd
}

func addLoanCmd() *cobra.Command {
	var (
		principal     int64
		rate          float64
		repaymentType string
		termMonths    int
		startStr      string
		paymentDay    int
		memo          string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			start, err := parseDateArg(startStr)
			if err != nil {
				return err
			}

			loan := model.Loan{
				ID:            uuid.NewString(),
				Name:          args[0],
				Principal:     principal,
				InterestRate:  rate,
				RepaymentType: model.RepaymentType(repaymentType),
				TermMonths:    termMonths,
				StartDate:     start,
				PaymentDay:    paymentDay,
				Memo:          memo,
				CreatedAt:     time.Now().UTC(),
			}
			if err := loan.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveLoan(ctx, &loan); err != nil {
				return fmt.Errorf("failed to save loan: %w", err)
			}

			fmt.Printf("Added loan %s, principal %s over %d months (%s)\n",
				cli.BoldStyle.Render(loan.Name),
				cli.FormatAmount(loan.Principal),
				loan.TermMonths,
				loan.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&principal, "principal", 0, "amount borrowed (required)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate in percent, e.g. 4.5")
	cmd.Flags().StringVar(&repaymentType, "type", "equal_principal_interest",
		"equal_principal_interest, equal_principal, or bullet")
	cmd.Flags().IntVar(&termMonths, "term", 0, "term in months (required)")
	cmd.Flags().StringVar(&startStr, "start", "", "first payment month YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&paymentDay, "payment-day", 25, "day of month payments post (1-28)")
	cmd.Flags().StringVar(&memo, "memo", "", "free-text memo")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("term")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func listLoansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all loans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			loans, err := store.ListLoans(ctx)
			if err != nil {
				return fmt.Errorf("failed to list loans: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("Loans"))
			if len(loans) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No loans. Use 'moneyline loan add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Principal"),
				cli.BoldStyle.Render("Rate"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Term"),
				cli.BoldStyle.Render("Start"))
			for _, l := range loans {
				fmt.Fprintf(w, "%s\t%s\t%.2f%%\t%s\t%d mo\t%s\n",
					l.Name,
					cli.FormatAmount(l.Principal),
					l.InterestRate,
					l.RepaymentType,
					l.TermMonths,
					l.StartDate.Format("2006-01"))
			}
			return nil
		},
	}
}

func deleteLoanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteLoan(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted", args[0])
			return nil
		},
	}
}

func loanScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <id>",
		Short: "Print a loan's full amortization schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			loan, err := store.GetLoan(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Schedule: %s", loan.Name)))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "#\tDate\tPrincipal\tInterest\tTotal\tRemaining\t\n")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
				strings.Repeat("-", 4), strings.Repeat("-", 10),
				strings.Repeat("-", 12), strings.Repeat("-", 12),
				strings.Repeat("-", 12), strings.Repeat("-", 14))

			for _, p := range forecast.Schedule(*loan) {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
					p.MonthNumber,
					p.Date.Format("2006-01-02"),
					cli.FormatAmount(p.Principal),
					cli.FormatAmount(p.Interest),
					cli.FormatAmount(p.TotalPayment),
					cli.FormatAmount(p.RemainingPrincipal))
			}
			return nil
		},
	}
}
