package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"marketdash/internal/config"
	"marketdash/internal/gateway"
	"marketdash/internal/upstream"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if !cfg.Configured() {
		logger.Warn("yahoo finance API key not set, market routes will answer 500")
	}

	client := upstream.NewClient(cfg.YahooAPIKey, cfg.YahooHost, cfg.YahooBaseURL)
	server := gateway.NewServer(cfg, client, logger)

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gateway listening", "addr", cfg.ListenAddr)
		errChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		logger.Info("received signal, shutting down", "signal", sig.String())
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown failed: %v", err)
	}
	logger.Info("shutdown complete")
}
