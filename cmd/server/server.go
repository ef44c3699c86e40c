package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Run starts the HTTP server and blocks until SIGINT or SIGTERM, then shuts
// down gracefully and releases every backend connection.
func (app *application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.serve(ctx)
}

// serve runs the server until ctx is done.
func (app *application) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		app.logger.Info("server listening", slog.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	timeout := time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second

	select {
	case err := <-serverErrors:
		app.cleanup(context.Background())
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)

	case <-ctx.Done():
		app.logger.Info("shutting down server", slog.Duration("timeout", timeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var shutdownErr error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			shutdownErr = fmt.Errorf("graceful shutdown failed: %w", err)
			_ = srv.Close()
		}

		app.cleanup(shutdownCtx)
		app.logger.Info("server stopped")
		return shutdownErr
	}
}
