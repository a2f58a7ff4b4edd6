package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/hanishin/moneyline/internal/cli"
	"github.com/hanishin/moneyline/internal/snapshot"
)

func importCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a snapshot JSON file into the store",
		Long: `Load transactions, loans, events, and assets from a snapshot JSON file.
Records with ids already in the store are replaced.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open snapshot: %w", err)
			}
			defer func() { _ = f.Close() }()

			doc, err := snapshot.Decode(f)
			if err != nil {
				return err
			}

			txns, err := doc.TransactionModels()
			if err != nil {
				return err
			}
			loans, err := doc.LoanModels()
			if err != nil {
				return err
			}
			events, err := doc.EventModels()
			if err != nil {
				return err
			}
			assets, err := doc.AssetModels()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			total := len(txns) + len(loans) + len(events) + len(assets)
			bar := progressbar.Default(int64(total), "importing")

			for i := range txns {
				if err := store.SaveTransaction(ctx, &txns[i]); err != nil {
					return fmt.Errorf("failed to import transaction %s: %w", txns[i].ID, err)
				}
				_ = bar.Add(1)
			}
			for i := range loans {
				if err := store.SaveLoan(ctx, &loans[i]); err != nil {
					return fmt.Errorf("failed to import loan %s: %w", loans[i].ID, err)
				}
				_ = bar.Add(1)
			}
			for i := range events {
				if err := store.SaveEvent(ctx, &events[i]); err != nil {
					return fmt.Errorf("failed to import event %s: %w", events[i].ID, err)
				}
				_ = bar.Add(1)
			}
			for i := range assets {
				if err := store.SaveAsset(ctx, &assets[i]); err != nil {
					return fmt.Errorf("failed to import asset %s: %w", assets[i].ID, err)
				}
				_ = bar.Add(1)
			}

			fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Imported %d records from %s", total, file)))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "snapshot JSON file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func exportCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the store to a snapshot JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.ListTransactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}
			loans, err := store.ListLoans(ctx)
			if err != nil {
				return fmt.Errorf("failed to load loans: %w", err)
			}
			events, err := store.ListEvents(ctx)
			if err != nil {
				return fmt.Errorf("failed to load events: %w", err)
			}
			assets, err := store.ListAssets(ctx)
			if err != nil {
				return fmt.Errorf("failed to load assets: %w", err)
			}

			out := os.Stdout
			if file != "" {
				f, err := os.Create(file)
				if err != nil {
					return fmt.Errorf("failed to create export file: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			if err := snapshot.Encode(out, snapshot.FromModels(txns, loans, events, assets)); err != nil {
				return err
			}
			if file != "" {
				total := len(txns) + len(loans) + len(events) + len(assets)
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Exported %d records to %s", total, file)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "output file (default: stdout)")

	return cmd
}
