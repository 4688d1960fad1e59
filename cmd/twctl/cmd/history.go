package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func checksCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "checks <restaurant_id>",
		Short: "Show recorded slot checks for a restaurant",
		Long: "Show the check records for a restaurant, newest first. A check is\n" +
			"recorded whenever a sweep finds slots not seen within the dedup window.",
		Example: `  twctl checks 0b6c...
  twctl checks 0b6c... --limit 5 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checks, err := newClient().ListChecks(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, checks)
			}
			if len(checks) == 0 {
				fmt.Fprintln(out, "No checks recorded.")
				return nil
			}
			return printChecksTable(out, checks)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum results")

	return cmd
}

func notificationsCmd() *cobra.Command {
	var (
		restaurantID string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Show notification delivery history",
		Example: `  twctl notifications
  twctl notifications --restaurant 0b6c... --limit 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notes, err := newClient().ListNotifications(context.Background(), restaurantID, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, notes)
			}
			if len(notes) == 0 {
				fmt.Fprintln(out, "No notifications sent.")
				return nil
			}
			return printNotificationsTable(out, notes)
		},
	}
	cmd.Flags().StringVar(&restaurantID, "restaurant", "", "only this restaurant")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum results")

	return cmd
}
