package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/aceup/plansync/internal/config"
	"github.com/aceup/plansync/internal/server"
	"github.com/aceup/plansync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var configFile string

func main() {
	if err := buildCLI().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "plansync-server",
		Short:   "Reference remote persistence service for plansync clients",
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit),
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(buildServeCommand())

	return rootCmd
}

func buildServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the sync API until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.Server.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("failed to close storage", "error", closeErr)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := server.New(cfg.Server, store, registry, logger, Version)

	logger.Info("starting server",
		"version", Version,
		"addr", cfg.Server.Addr,
		"db_path", cfg.Server.DBPath)

	return srv.Run(ctx)
}
