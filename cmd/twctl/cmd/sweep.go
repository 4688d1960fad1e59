package cmd

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/tablewatch/internal/api/client"
)

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run a sweep now",
		Long: "Ask the server to check every active watch immediately and wait for\n" +
			"the sweep to finish. Fails if a sweep is already running.",
		Example: `  twctl sweep
  twctl sweep --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().TriggerSweep(context.Background())
			if apiclient.IsStatus(err, http.StatusConflict) {
				return errors.New("a sweep is already running, try again when it finishes")
			}
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printSweepResult(cmd.OutOrStdout(), res)
		},
	}
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "state",
		Aliases: []string{"stats"},
		Short:   "Show system counts",
		Example: `  twctl state`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := newClient().SystemState(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), state)
			}
			return printSystemState(cmd.OutOrStdout(), state)
		},
	}
}
