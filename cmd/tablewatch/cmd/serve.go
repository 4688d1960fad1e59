package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/tablewatch/internal/engine"
	"github.com/donaldgifford/tablewatch/internal/store"
	"github.com/donaldgifford/tablewatch/internal/telemetry"
	"github.com/donaldgifford/tablewatch/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and sweep scheduler",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply migrations on startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Setup(ctx, &cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	if providers.Enabled() {
		log.Info("telemetry export enabled", "endpoint", cfg.Telemetry.OTLPEndpoint)
	}

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if !skipMigrate {
		if err := st.Migrate(ctx); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
	}

	session := newSession(&cfg.Browser, log)
	eng := newEngine(cfg, st, session, log)

	sched, err := engine.NewScheduler(
		eng,
		st,
		cfg.Schedule.SweepInterval,
		logger.Component(log, "scheduler"),
		engine.WithSession(session),
		engine.WithLockTTL(cfg.Schedule.LockTTL),
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}

	e := newServer(cfg, st, sched, log)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server",
		"addr", addr,
		"browser", cfg.Browser.Mode,
		"sweep_interval", cfg.Schedule.SweepInterval,
	)

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-serveErr:
		runErr = fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutting down server", "error", err)
	}

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("scheduler did not stop before the shutdown deadline")
	}

	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Error("flushing telemetry", "error", err)
	}

	log.Info("server stopped")
	return runErr
}
