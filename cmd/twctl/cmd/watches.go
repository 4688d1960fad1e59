package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

func watchCmd() *cobra.Command {
	watchRoot := &cobra.Command{
		Use:     "watches",
		Aliases: []string{"watch", "w"},
		Short:   "Manage watches",
		Long: "Manage watch targets: a restaurant, a party size, an optional date window\n" +
			"and preferred times. Active watches are checked on every sweep.",
	}

	watchRoot.AddCommand(
		watchListCmd(),
		watchGetCmd(),
		watchCreateCmd(),
		watchUpdateCmd(),
		watchActivateCmd(),
		watchDeactivateCmd(),
		watchDeleteCmd(),
	)

	return watchRoot
}

func watchListCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List watches",
		Example: `  twctl watches list
  twctl watches list --active --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watches, err := newClient().ListWatches(context.Background(), activeOnly)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, watches)
			}
			if len(watches) == 0 {
				fmt.Fprintln(out, "No watches found.")
				return nil
			}
			return printWatchTable(out, watches)
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only active watches")

	return cmd
}

func watchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show watch details",
		Example: `  twctl watches get abc123
  twctl watches get abc123 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newClient().GetWatch(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), w)
			}
			return printWatchDetail(cmd.OutOrStdout(), w)
		},
	}
}

// watchFlags binds the editable watch fields to a command.
type watchFlags struct {
	w        domain.WatchTarget
	inactive bool
}

func (f *watchFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.w.RestaurantID, "restaurant", "", "restaurant ID")
	fs.IntVar(&f.w.PartySize, "party", 2, "party size")
	fs.StringVar(&f.w.DateRangeStart, "start", "", "first date to check (YYYY-MM-DD)")
	fs.StringVar(&f.w.DateRangeEnd, "end", "", "last date to check (YYYY-MM-DD)")
	fs.StringSliceVar(&f.w.PreferredTimes, "time", nil, "preferred times, e.g. 19:00 or \"7:30 PM\" (repeatable)")
	fs.StringVar(&f.w.NotifyEmail, "email", "", "alert email address")
	fs.StringVar(&f.w.NotifySMS, "sms", "", "alert phone number (E.164)")
	fs.BoolVar(&f.inactive, "inactive", false, "create or leave the watch inactive")
}

// apply copies the flags the user set onto w.
func (f *watchFlags) apply(cmd *cobra.Command, w *domain.WatchTarget) {
	fs := cmd.Flags()
	if fs.Changed("restaurant") {
		w.RestaurantID = f.w.RestaurantID
	}
	if fs.Changed("party") {
		w.PartySize = f.w.PartySize
	}
	if fs.Changed("start") {
		w.DateRangeStart = f.w.DateRangeStart
	}
	if fs.Changed("end") {
		w.DateRangeEnd = f.w.DateRangeEnd
	}
	if fs.Changed("time") {
		w.PreferredTimes = f.w.PreferredTimes
	}
	if fs.Changed("email") {
		w.NotifyEmail = f.w.NotifyEmail
	}
	if fs.Changed("sms") {
		w.NotifySMS = f.w.NotifySMS
	}
	if fs.Changed("inactive") {
		w.Active = !f.inactive
	}
}

func watchCreateCmd() *cobra.Command {
	var flags watchFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a watch",
		Long: "Create a watch target. Without --start and --end the watch checks a\n" +
			"rolling window starting today. Without --time every time is accepted.",
		Example: `  # Any time in the next week for two
  twctl watches create --restaurant 0b6c... --email me@example.com

  # Specific evening slots on a fixed range
  twctl watches create --restaurant 0b6c... --party 4 \
    --start 2026-02-01 --end 2026-02-07 --time 19:00 --time "7:30 PM" \
    --sms +12125550100`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.w.RestaurantID == "" {
				return errors.New("--restaurant is required")
			}
			w := domain.WatchTarget{PartySize: flags.w.PartySize, Active: !flags.inactive}
			flags.apply(cmd, &w)

			created, err := newClient().CreateWatch(context.Background(), &w)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Watch created: %s\n", created.ID)
			return nil
		},
	}
	flags.bind(cmd)

	return cmd
}

func watchUpdateCmd() *cobra.Command {
	var flags watchFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a watch",
		Long: "Update a watch. Only the flags given are changed. Pass --start \"\" --end \"\"\n" +
			"to switch back to a rolling window.",
		Example: `  twctl watches update abc123 --party 3 --time 20:00`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			w, err := c.GetWatch(context.Background(), args[0])
			if err != nil {
				return err
			}
			flags.apply(cmd, w)

			updated, err := c.UpdateWatch(context.Background(), w)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), updated)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Watch updated: %s\n", updated.ID)
			return nil
		},
	}
	flags.bind(cmd)

	return cmd
}

func watchActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "activate <id>",
		Aliases: []string{"enable"},
		Short:   "Include a watch in sweeps",
		Example: `  twctl watches activate abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatchSetActive(cmd, args[0], true)
		},
	}
}

func watchDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "deactivate <id>",
		Aliases: []string{"disable"},
		Short:   "Exclude a watch from sweeps",
		Example: `  twctl watches deactivate abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatchSetActive(cmd, args[0], false)
		},
	}
}

func watchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a watch",
		Example: `  twctl watches delete abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteWatch(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Watch %s deleted.\n", args[0])
			return nil
		},
	}
}

func runWatchSetActive(cmd *cobra.Command, id string, active bool) error {
	if err := newClient().SetWatchActive(context.Background(), id, active); err != nil {
		return err
	}

	action := "activated"
	if !active {
		action = "deactivated"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Watch %s %s.\n", id, action)
	return nil
}
