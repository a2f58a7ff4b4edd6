package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hanishin/moneyline/internal/cli"
	"github.com/hanishin/moneyline/internal/forecast"
	"github.com/hanishin/moneyline/internal/model"
)

func assetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Manage assets and view net worth",
	}

	cmd.AddCommand(addAssetCmd())
	cmd.AddCommand(listAssetsCmd())
	cmd.AddCommand(deleteAssetCmd())

	return cmd
}

func addAssetCmd() *cobra.Command {
	var (
		category      string
		purchaseValue int64
		currentValue  int64
		purchasedStr  string
		description   string
		memo          string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			asset := model.Asset{
				ID:            uuid.NewString(),
				Name:          args[0],
				Category:      model.AssetCategory(category),
				PurchaseValue: purchaseValue,
				CurrentValue:  currentValue,
				Description:   description,
				Memo:          memo,
				CreatedAt:     time.Now().UTC(),
			}
			if purchasedStr != "" {
				purchased, err := parseDateArg(purchasedStr)
				if err != nil {
					return err
				}
				asset.PurchaseDate = purchased
			}
			if err := asset.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveAsset(ctx, &asset); err != nil {
				return fmt.Errorf("failed to save asset: %w", err)
			}

			fmt.Printf("Added asset %s valued at %s (%s)\n",
				cli.BoldStyle.Render(asset.Name),
				cli.FormatAmount(asset.CurrentValue),
				asset.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "other_asset",
		"real_estate, vehicle, savings, investment, or other_asset")
	cmd.Flags().Int64Var(&currentValue, "value", 0, "current value (required)")
	cmd.Flags().Int64Var(&purchaseValue, "purchase-value", 0, "value at purchase")
	cmd.Flags().StringVar(&purchasedStr, "purchased", "", "purchase date YYYY-MM-DD")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringVar(&memo, "memo", "", "free-text memo")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func listAssetsCmd() *cobra.Command {
	var (
		year  int
		month int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets with net worth",
		Long: `List assets and the net-worth line: total asset value minus the principal
still owed across all loans as of the target month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			assets, err := store.ListAssets(ctx)
			if err != nil {
				return fmt.Errorf("failed to list assets: %w", err)
			}
			proj, err := loadProjector(ctx, store)
			if err != nil {
				return err
			}

			year, month = defaultYearMonth(year, month)

			fmt.Println(cli.TitleStyle.Render("Assets"))
			if len(assets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No assets."))
			} else {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, a := range assets {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						a.Name, a.Category, cli.FormatAmount(a.CurrentValue), a.ID)
				}
				_ = w.Flush()
			}

			assetTotal := forecast.TotalAssetValue(assets)
			loanBalance := proj.TotalLoanBalance(year, month)
			fmt.Println()
			fmt.Printf("Total assets:   %s\n", cli.IncomeStyle.Render(cli.FormatAmount(assetTotal)))
			fmt.Printf("Loan balance:   %s\n", cli.ExpenseStyle.Render(cli.FormatAmount(loanBalance)))
			fmt.Printf("Net worth:      %s\n", cli.BoldStyle.Render(cli.FormatAmount(assetTotal-loanBalance)))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "net worth as of year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "net worth as of month (default: current)")

	return cmd
}

func deleteAssetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteAsset(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted", args[0])
			return nil
		},
	}
}
