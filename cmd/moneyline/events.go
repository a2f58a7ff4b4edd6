package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hanishin/moneyline/internal/cli"
	"github.com/hanishin/moneyline/internal/model"
)

func eventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage life events",
		Long:  `Add, list, and delete dated milestones shown alongside money on the timeline.`,
	}

	cmd.AddCommand(addEventCmd())
	cmd.AddCommand(listEventsCmd())
	cmd.AddCommand(deleteEventCmd())

	return cmd
}

func addEventCmd() *cobra.Command {
	var (
		category    string
		dateStr     string
		description string
		color       string
		important   bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a life event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date, err := parseDateArg(dateStr)
			if err != nil {
				return err
			}

			event := model.LifeEvent{
				ID:          uuid.NewString(),
				Title:       args[0],
				Category:    model.EventCategory(category),
				Date:        date,
				Description: description,
				IsImportant: important,
				Color:       model.EventColor(color),
				CreatedAt:   time.Now().UTC(),
			}
			if err := event.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SaveEvent(ctx, &event); err != nil {
				return fmt.Errorf("failed to save event: %w", err)
			}

			fmt.Printf("Added event %s on %s (%s)\n",
				cli.BoldStyle.Render(event.Title),
				event.Date.Format("2006-01-02"),
				event.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "other",
		"housing, contract, career, family, education, or other")
	cmd.Flags().StringVar(&dateStr, "date", "", "date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringVar(&color, "color", "blue",
		"red, orange, yellow, green, blue, purple, or pink")
	cmd.Flags().BoolVar(&important, "important", false, "flag as important")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func listEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all life events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			events, err := store.ListEvents(ctx)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("Life events"))
			if len(events) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No events."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			for _, e := range events {
				title := e.Title
				if e.IsImportant {
					title = cli.ImportantStyle.Render("★ " + title)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					e.Date.Format("2006-01-02"), title, e.Category, e.ID)
			}
			return nil
		},
	}
}

func deleteEventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a life event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteEvent(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted", args[0])
			return nil
		},
	}
}
