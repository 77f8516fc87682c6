package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ijalalfrz/flight-pickup-service/internal/app/bootstrap"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/config"
	"github.com/ijalalfrz/flight-pickup-service/internal/app/transport"
	"github.com/ijalalfrz/flight-pickup-service/internal/pkg/logger"
	"github.com/jonboulle/clockwork"
)

// @title           Flight Pickup Service API
// @version         0.0.1
// @description     flight-pickup-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(os.Stdout, cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	clock := clockwork.NewRealClock()

	app, err := bootstrap.NewApp(ctx, &cfg, clock)
	if err != nil {
		slog.ErrorContext(ctx, "failed to init app", slog.String("error", err.Error()))
		panic(err)
	}
	defer app.Close()

	router := transport.MakeHTTPRouter(app.Endpoints(), clock, cfg.HTTP.AllowedOrigins)
	server := &http.Server{
		Handler:     router,
		Addr:        fmt.Sprintf(":%d", cfg.HTTP.Port),
		ReadTimeout: cfg.HTTP.Timeout,
		// countdown streams outlive any write timeout
		WriteTimeout: 0,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}
