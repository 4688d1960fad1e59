package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/tablewatch/internal/engine"
	"github.com/donaldgifford/tablewatch/internal/store"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a single sweep and exit",
	Long: "Runs one sweep over every active watch target without starting the API\n" +
		"server or the scheduler. The cross-replica lock is not taken, so avoid\n" +
		"running this next to a live server.",
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	session := newSession(&cfg.Browser, log)
	if err := session.Open(ctx); err != nil {
		return fmt.Errorf("opening browser session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warn("closing browser session", "error", err)
		}
	}()

	res, err := newEngine(cfg, st, session, log).RunSweep(ctx)
	if err != nil {
		return fmt.Errorf("running sweep: %w", err)
	}

	printSweepResult(cmd, res)
	return nil
}

func printSweepResult(cmd *cobra.Command, res engine.SweepResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "targets=%d new_slots=%d errors=%d\n", res.Targets, res.NewSlots, res.Errors)

	outcomes := make([]engine.TargetOutcome, 0, len(res.Outcomes))
	for o := range res.Outcomes {
		outcomes = append(outcomes, o)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i] < outcomes[j] })
	for _, o := range outcomes {
		fmt.Fprintf(out, "  %s: %d\n", o, res.Outcomes[o])
	}
}
