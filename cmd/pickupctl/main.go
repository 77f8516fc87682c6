package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/bootstrap"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/config"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/logger"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "pickupctl",
	Short:        "Flight board and pickup timing tool",
	Long:         "Prints airport boards and runs a live pickup session for a driver",
	SilenceUsage: true,
}

var envFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&envFile, "env", "", ".env", "Config file with environment overrides")
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(sessionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadApp reads the config and wires the services against the real clock.
func loadApp(ctx context.Context) (*bootstrap.App, config.Config, error) {
	cfg := config.MustInitConfig(envFile)
	logger.InitStructuredLogger(os.Stderr, cfg.LogLevel)

	app, err := bootstrap.NewApp(ctx, &cfg, clockwork.NewRealClock())
	if err != nil {
		return nil, cfg, fmt.Errorf("init app: %w", err)
	}

	return app, cfg, nil
}
