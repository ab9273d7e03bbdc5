// Package main provides the CLI entrypoint for the Crafter auth gateway.
// It wires subcommands (serve, verify), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"gateway/internal/config"
	"gateway/pkg/crafter/crafterapi"
	"gateway/pkg/logger"
	"gateway/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newClient creates the gateway client from configuration values, with its
// instruments registered on the default Prometheus registry.
func newClient(ctx context.Context, cfg *config.Config) *crafterapi.Client {
	gm, err := metrics.NewGateway(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create gateway metrics", zap.Error(err))
	}

	return crafterapi.New(&http.Client{Timeout: cfg.Crafter.RequestTimeout}, crafterapi.Options{
		APIURL:     cfg.Crafter.APIURL,
		LicenseKey: cfg.Crafter.LicenseKey,
		SecretKey:  cfg.Crafter.APISecret,
		Metrics:    gm,
	})
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "gateway",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		verifyCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
