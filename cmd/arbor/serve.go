package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/adapters/httpapi"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	redisStore "github.com/aretw0/arbor/pkg/adapters/redis"
	"github.com/aretw0/arbor/pkg/dialog"
	"github.com/aretw0/arbor/pkg/metrics"
	"github.com/aretw0/arbor/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dialog router over HTTP",
	Long:  `Starts the webhook ingress and session introspection API for the demo dialog tree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
			cfg.Listen = listen
		}

		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		var snapshots ports.SnapshotStore
		if cfg.Redis.Addr != "" {
			store := redisStore.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
				redisStore.WithTTL(cfg.Redis.TTL.Std()),
			)
			defer store.Close()
			snapshots = store
			logger.Info("using redis snapshot store", "addr", cfg.Redis.Addr)
		} else {
			snapshots = memory.NewStore()
		}

		collector := metrics.NewCollector(prometheus.DefaultRegisterer)

		replies := httpapi.NewReplyBuffer()
		r := arbor.New(buildTree(), replies,
			arbor.WithEntry(dialog.OnText("/start", nil)),
			arbor.WithExit(dialog.OnText("/stop", nil)),
			arbor.WithBackTrigger(cfg.BackTrigger),
			arbor.WithFallbacks(dialog.OnAny(nil)),
			arbor.WithLifecycleHooks(collector.Hooks()),
			arbor.WithSnapshotStore(snapshots),
			arbor.WithLogger(logger),
		)

		server := httpapi.NewServer(r, replies,
			httpapi.WithSnapshots(snapshots),
			httpapi.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: server.Handler(),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting arbor server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("failed to stop server: %w", err)
				}
			}
			logger.Info("arbor server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", "", "Listen address (overrides config)")
}
