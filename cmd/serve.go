package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"gateway/internal/api"
	"gateway/internal/config"
	"gateway/pkg/crafter"
	"gateway/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupServer starts the debug HTTP server in a background goroutine and
// returns a function for gracefully shutting it down.
func setupServer(ctx context.Context, client crafter.Client, cfg *config.Config) func(ctx context.Context) {
	server := api.NewServer(client, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting HTTP server", zap.String("addr", cfg.HTTP.Addr))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "could not start HTTP server", zap.Error(err))
		}
	}()

	return func(shutdownCtx context.Context) {
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "could not gracefully shutdown HTTP server", zap.Error(err))
		}
	}
}

// serveCommand activates the configured license and then serves the status
// and metrics endpoints until interrupted.
func serveCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Activate the license and serve status endpoints",
		Run: func(_ *cobra.Command, _ []string) {
			ctx, stopNotify := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stopNotify()

			client := newClient(ctx, cfg)
			if err := client.Activate(ctx); err != nil {
				logger.Fatal(ctx, "could not activate license", zap.Error(err))
			}

			website := client.Website()
			logger.Info(ctx, "license activated",
				zap.String("websiteId", website.ID),
				zap.String("websiteName", website.Name))

			stopWebserver := setupServer(ctx, client, cfg)

			<-ctx.Done()
			logger.Info(ctx, "shutting down gracefully...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}
}
