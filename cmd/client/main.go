package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aceup/plansync/internal/client/engine"
	"github.com/aceup/plansync/internal/config"
	"github.com/aceup/plansync/internal/models"
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
		Use:     "plansync",
		Short:   "Offline-first sync client for academic planning data",
		Long:    "plansync queues local edits durably while offline and replays them against the remote store once connectivity returns.",
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit),
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(buildStatusCommand())
	rootCmd.AddCommand(buildPendingCommand())
	rootCmd.AddCommand(buildSyncCommand())
	rootCmd.AddCommand(buildEnqueueCommand())
	rootCmd.AddCommand(buildClearCacheCommand())
	rootCmd.AddCommand(buildRunCommand())

	return rootCmd
}

// withEngine loads the config, opens the local store and hands a ready
// engine to fn. The engine is closed on return; the background loop is
// not started, commands that need it call Start themselves.
func withEngine(ctx context.Context, fn func(context.Context, *engine.Engine) error) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	eng, err := engine.New(ctx, cfg.Client, prometheus.NewRegistry(), logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = eng.Close()
	}()

	return fn(ctx, eng)
}

func buildStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status and cache freshness",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, eng *engine.Engine) error {
				snap, err := eng.Snapshot(ctx)
				if err != nil {
					return err
				}

				fmt.Printf("Status:           %s\n", snap.Status)
				fmt.Printf("Connection:       %s\n", describeConnection(snap.Connection))
				fmt.Printf("Pending:          %d\n", snap.PendingCount)
				fmt.Printf("Last sync:        %s\n", snap.LastSyncAgo)
				if snap.EverSynced {
					fmt.Printf("Offline use:      %s\n", describeOfflineUse(snap.CanWorkOffline, snap.DaysRemaining))
				} else {
					fmt.Println("Offline use:      unavailable (never synced)")
				}
				if snap.RetryScheduled {
					fmt.Printf("Next retry:       %s\n", snap.NextRetryAt.Format(time.RFC3339))
				}
				for _, rej := range snap.Rejections {
					fmt.Printf("Rejected:         %s %s %s: %s\n", rej.Kind, rej.DataType, rej.OperationID, rej.Reason)
				}
				return nil
			})
		},
	}
}

func describeConnection(state models.ConnectionState) string {
	if !state.Online {
		return "offline"
	}
	return fmt.Sprintf("online (%s)", state.Type)
}

func describeOfflineUse(ok bool, daysRemaining int) string {
	if !ok {
		return "expired (cached data is stale, sync required)"
	}
	return fmt.Sprintf("ok (%d days remaining)", daysRemaining)
}

func buildPendingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "Show queued operations by data category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, eng *engine.Engine) error {
				snap, err := eng.Snapshot(ctx)
				if err != nil {
					return err
				}

				if snap.PendingCount == 0 {
					fmt.Println("No pending operations")
					return nil
				}

				fmt.Printf("%d pending operation(s):\n", snap.PendingCount)
				for _, dataType := range models.AllDataTypes() {
					if n := snap.PendingByType[dataType]; n > 0 {
						fmt.Printf("  %-20s %d\n", dataType, n)
					}
				}
				return nil
			})
		},
	}
}

func buildSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run a sync pass now",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, eng *engine.Engine) error {
				// The CLI has no OS reachability feed; assume the link is
				// up and let the request fail if it is not.
				eng.ReportConnectivity(models.ConnectionState{Online: true, Type: models.ConnectionWifi})

				summary, err := eng.ForceSyncNow(ctx)
				if err != nil {
					return err
				}

				fmt.Printf("Pushed %d operation(s): %d acked, %d rejected, %d requeued\n",
					summary.Pushed, summary.Acked, len(summary.Rejections), summary.Requeued)
				fmt.Printf("Pulled %d record(s) in %s\n",
					summary.Pulled, summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond))
				for _, rej := range summary.Rejections {
					fmt.Printf("Rejected %s %s %s: %s\n", rej.Kind, rej.DataType, rej.OperationID, rej.Reason)
				}
				return nil
			})
		},
	}
}

func buildEnqueueCommand() *cobra.Command {
	var payloadFile string

	cmd := &cobra.Command{
		Use:   "enqueue <data-type> <create|update|delete> [json-payload]",
		Short: "Queue a local mutation for replay",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataType := models.DataType(args[0])
			kind := models.OperationKind(args[1])

			var payload []byte
			switch {
			case payloadFile != "":
				data, err := os.ReadFile(payloadFile)
				if err != nil {
					return fmt.Errorf("failed to read payload file: %w", err)
				}
				payload = data
			case len(args) == 3:
				payload = []byte(args[2])
			default:
				return fmt.Errorf("payload is required (inline argument or --file)")
			}

			if !json.Valid(payload) {
				return fmt.Errorf("payload is not valid JSON")
			}

			return withEngine(cmd.Context(), func(ctx context.Context, eng *engine.Engine) error {
				op, err := eng.SubmitOperation(ctx, dataType, kind, payload)
				if err != nil {
					return err
				}
				fmt.Printf("Queued %s %s as operation %s\n", op.Kind, op.DataType, op.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&payloadFile, "file", "f", "", "JSON file containing the payload")

	return cmd
}

func buildClearCacheCommand() *cobra.Command {
	var includeQueue bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear-cache",
		Short: "Wipe cached records and freshness tracking",
		Long:  "Wipe the local record cache and the last-sync timestamp. With --include-queue, unsynced pending operations are discarded as well.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("destructive operation, re-run with --yes to confirm")
			}

			return withEngine(cmd.Context(), func(ctx context.Context, eng *engine.Engine) error {
				if err := eng.ClearCachedData(ctx, includeQueue, true); err != nil {
					return err
				}
				fmt.Println("Cached data cleared")
				if includeQueue {
					fmt.Println("Pending operations discarded")
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&includeQueue, "include-queue", false, "also discard unsynced pending operations")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the destructive operation")

	return cmd
}

func buildRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the engine in the foreground with periodic sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return withEngine(ctx, func(ctx context.Context, eng *engine.Engine) error {
				eng.ReportConnectivity(models.ConnectionState{Online: true, Type: models.ConnectionWifi})

				unsubscribe := eng.SubscribeStatus(func(status models.SyncStatus) {
					fmt.Printf("status: %s\n", status)
				})
				defer unsubscribe()

				eng.Start()
				fmt.Println("Engine running, Ctrl+C to stop")

				<-ctx.Done()
				return nil
			})
		},
	}
}
