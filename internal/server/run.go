package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
)

// Run listens on cfg.Address and serves until ctx is cancelled, then shuts
// down gracefully within cfg.ShutdownTimeout.
func Run(ctx context.Context, logger *zap.Logger, cfg *Config, version string) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	ln, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Address, err)
	}
	return Serve(ctx, ln, logger, cfg, version)
}

// Serve is Run on an existing listener.
func Serve(ctx context.Context, ln net.Listener, logger *zap.Logger, cfg *Config, version string) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	srv := &http.Server{
		Handler:      NewHandler(logger, cfg, version),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  4 * cfg.ReadTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("serving living cost calculator",
			zap.String("op", "server.Serve"),
			zap.String("address", ln.Addr().String()),
			zap.String("version", version),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	srv.SetKeepAlivesEnabled(false)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server stopped", zap.String("op", "server.Serve"))
	return nil
}
