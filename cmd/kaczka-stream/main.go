// Package main runs the pond headless and streams snapshots over websocket.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/kaczka/internal/config"
	"github.com/Faultbox/kaczka/internal/logger"
	"github.com/Faultbox/kaczka/internal/sim"
	"github.com/Faultbox/kaczka/internal/stream"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("stream error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("stream stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	rng, seed := sim.NewRNG(cfg.Simulation.Seed)
	s, err := sim.New(cfg, rng)
	if err != nil {
		return fmt.Errorf("creating simulation: %w", err)
	}

	hub := stream.NewHub()
	defer hub.Close()

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{
		Addr:              cfg.Stream.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Stream.Addr), zap.Uint64("seed", seed))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	pubCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	pubErr := make(chan error, 1)
	go func() {
		pubErr <- stream.Publish(pubCtx, s, hub, cfg.Stream, cfg.Simulation.TimeStep)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		runErr = fmt.Errorf("serving: %w", err)
	case err := <-pubErr:
		if !errors.Is(err, context.Canceled) {
			runErr = fmt.Errorf("publishing: %w", err)
		}
	}
	cancel()

	shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
	defer done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
	return runErr
}
