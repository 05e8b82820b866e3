// Package main runs the trading-simulator HTTP server: validate and simulate
// endpoints, a WebSocket stream for live recalculation, health and metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nirre55/trading-simulator/internal/config"
	"github.com/nirre55/trading-simulator/internal/observability"
	"github.com/nirre55/trading-simulator/internal/server"
)

func main() {
	// Parse flags (env vars as defaults)
	configPath := flag.String("config", os.Getenv("TRADSIM_CONFIG"), "Path to YAML config file")
	listen := flag.String("listen", "", "Listen address (overrides config)")
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("Load config: %v", err)
	}
	if *listen != "" {
		cfg.Server.Listen = *listen
	}

	metrics := observability.NewMetrics(cfg.Server.MetricsNamespace)
	srv := server.New(cfg, logger, metrics)

	httpServer := &http.Server{
		Addr:        cfg.Server.Listen,
		Handler:     srv.Routes(),
		ReadTimeout: cfg.Server.ReadTimeout.Std(),
		// WriteTimeout is not set: the stream endpoint holds its connection
		// open for the lifetime of the client.
	}

	go func() {
		logger.Printf("Listening on %s", cfg.Server.Listen)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Printf("Shutdown: %v", err)
	}
	logger.Println("Shutdown complete")
}
