package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"timesheet/internal/api"
	"timesheet/internal/config"
	"timesheet/internal/logging"
	"timesheet/internal/repository/sqlite"
	"timesheet/internal/services"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand builds the timesheetd command. Flags override environment
// configuration, which overrides defaults.
func newRootCommand() *cobra.Command {
	var (
		addr    string
		dbPath  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "timesheetd",
		Short: "Timesheet API server",
		Long: `timesheetd serves the timesheet REST API: employees, projects and
validated time entries backed by an embedded SQLite database.

CONFIGURATION:
  TSD_ADDR                Listen address (default :8080)
  TSD_DB_PATH             SQLite database path (default timesheet.db)
  TSD_DB_QUERY_TIMEOUT    Query timeout (default 10s)
  TSD_READ_TIMEOUT        HTTP read timeout (default 10s)
  TSD_WRITE_TIMEOUT       HTTP write timeout (default 10s)
  TSD_SHUTDOWN_TIMEOUT    Graceful shutdown timeout (default 15s)
  TSD_VERBOSE             Enable debug logging (default false)`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("db") {
				cfg.Database.Path = dbPath
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Logging.Verbose = verbose
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dbPath, "db", "timesheet.db", "SQLite database path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logging.New(cfg.Logging.Verbose)

	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer repo.Close()

	container := services.NewServiceContainer(repo)
	server := api.NewServer(cfg, container, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
