package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	fb "firebase.google.com/go/v4"
	"github.com/phrazzld/foodshare-api/internal/config"
	"github.com/phrazzld/foodshare-api/internal/platform/firebase"
	"github.com/phrazzld/foodshare-api/internal/service"
	"github.com/phrazzld/foodshare-api/internal/service/auth"
	"github.com/phrazzld/foodshare-api/internal/store"
)

// application holds the wired dependencies of a running server.
type application struct {
	config *config.Config
	logger *slog.Logger

	foodStore          store.FoodStore
	requestedFoodStore store.RequestedFoodStore
	verifier           auth.Verifier

	foodService          service.FoodService
	requestedFoodService service.RequestedFoodService

	// firebaseApp is created on first use and shared by Firestore and the
	// Firebase verifier.
	firebaseApp *fb.App

	// closers run in reverse order during cleanup.
	closers []func(context.Context) error
}

// newApplication connects the configured store backend, builds the identity
// verifier and wires the services on top. Anything opened before a failure is
// released before returning.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	if err := app.init(ctx); err != nil {
		app.cleanup(context.Background())
		return nil, err
	}

	logger.Info("application initialized",
		slog.String("database_driver", cfg.Database.Driver),
		slog.String("auth_provider", cfg.Auth.Provider))

	return app, nil
}

func (app *application) init(ctx context.Context) error {
	if err := app.openStores(ctx); err != nil {
		return err
	}

	if err := app.openVerifier(ctx); err != nil {
		return err
	}

	foodService, err := service.NewFoodService(app.foodStore, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create food service: %w", err)
	}
	app.foodService = foodService

	requestedFoodService, err := service.NewRequestedFoodService(app.requestedFoodStore, app.logger)
	if err != nil {
		return fmt.Errorf("failed to create requested food service: %w", err)
	}
	app.requestedFoodService = requestedFoodService

	return nil
}

// sharedFirebaseApp returns the shared Firebase app, creating it on first call.
func (app *application) sharedFirebaseApp(ctx context.Context) (*fb.App, error) {
	if app.firebaseApp != nil {
		return app.firebaseApp, nil
	}

	fbApp, err := firebase.NewApp(ctx, app.config.Auth.FirebaseServiceKey)
	if err != nil {
		return nil, err
	}
	app.firebaseApp = fbApp
	return fbApp, nil
}

func (app *application) onCleanup(fn func(context.Context) error) {
	app.closers = append(app.closers, fn)
}

// cleanup releases connections in the reverse order they were opened.
func (app *application) cleanup(ctx context.Context) {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i](ctx); err != nil {
			app.logger.Error("error during cleanup", slog.String("error", err.Error()))
		}
	}
	app.closers = nil
}
