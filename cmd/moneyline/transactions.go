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
	"github.com/hanishin/moneyline/internal/model"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage income and expense transactions",
		Long:  `Add, list, and delete transactions. Recurring transactions are stored once and expanded on demand.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(deleteTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		amount     int64
		txType     string
		category   string
		dateStr    string
		recurrence string
		endStr     string
		memo       string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date, err := parseDateArg(dateStr)
			if err != nil {
				return err
			}

			txn := model.Transaction{
				ID:         uuid.NewString(),
				Title:      args[0],
				Amount:     amount,
				Type:       model.TransactionType(txType),
				Category:   model.Category(category),
				Date:       date,
				Recurrence: model.Recurrence(recurrence),
				Memo:       memo,
				CreatedAt:  time.Now().UTC(),
			}
			if endStr != "" {
				end, err := parseDateArg(endStr)
				if err != nil {
					return err
				}
				txn.RecurrenceEnd = &end
			}
			if err := txn.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveTransaction(ctx, &txn); err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			fmt.Printf("Added %s %s (%s)\n",
				cli.Amount(txn.Amount, txn.Type == model.TypeIncome),
				cli.BoldStyle.Render(txn.Title),
				txn.ID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "amount in whole currency units (required)")
	cmd.Flags().StringVar(&txType, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&category, "category", "", "category (required)")
	cmd.Flags().StringVar(&dateStr, "date", "", "date YYYY-MM-DD (required; anchor for recurring)")
	cmd.Flags().StringVar(&recurrence, "recurrence", "once", "once, monthly, or yearly")
	cmd.Flags().StringVar(&endStr, "end", "", "recurrence end date YYYY-MM-DD")
	cmd.Flags().StringVar(&memo, "memo", "", "free-text memo")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		year  int
		month int
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a month's transactions, recurring occurrences included",
		Long: `Show the transactions that materialize in a month: one-time entries dated
in it plus resolved occurrences of recurring entries. --all lists the stored
records instead of expanding them.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if all {
				txns, err := store.ListTransactions(ctx)
				if err != nil {
					return fmt.Errorf("failed to list transactions: %w", err)
				}
				renderTransactions(txns, "Stored transactions")
				return nil
			}

			year, month = defaultYearMonth(year, month)
			proj, err := loadProjector(ctx, store)
			if err != nil {
				return err
			}
			renderTransactions(proj.OccurrencesInMonth(year, month),
				fmt.Sprintf("Transactions for %d-%02d", year, month))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "target year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "target month 1-12 (default: current)")
	cmd.Flags().BoolVar(&all, "all", false, "list stored records without expansion")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransaction(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted", args[0])
			return nil
		},
	}
}

func renderTransactions(txns []model.Transaction, title string) {
	fmt.Println(cli.TitleStyle.Render(title))
	if len(txns) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.BoldStyle.Render("Date"),
		cli.BoldStyle.Render("Title"),
		cli.BoldStyle.Render("Category"),
		cli.BoldStyle.Render("Amount"),
		cli.BoldStyle.Render("Recurrence"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 10), strings.Repeat("-", 20),
		strings.Repeat("-", 12), strings.Repeat("-", 12), strings.Repeat("-", 10))

	for _, t := range txns {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.Date.Format("2006-01-02"),
			t.Title,
			t.Category,
			cli.Amount(t.Amount, t.Type == model.TypeIncome),
			t.Recurrence)
	}
}
