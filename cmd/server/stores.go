package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/foodshare-api/internal/config"
	"github.com/phrazzld/foodshare-api/internal/platform/firebase"
	"github.com/phrazzld/foodshare-api/internal/platform/firestoredb"
	"github.com/phrazzld/foodshare-api/internal/platform/memstore"
	"github.com/phrazzld/foodshare-api/internal/platform/mongodb"
)

// openStores connects the backend named by database.driver.
func (app *application) openStores(ctx context.Context) error {
	switch driver := app.config.Database.Driver; driver {
	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, app.config.Database, app.logger)
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		app.onCleanup(client.Disconnect)

		app.foodStore = mongodb.NewMongoFoodStore(db, app.logger)
		app.requestedFoodStore = mongodb.NewMongoRequestedFoodStore(db, app.logger)

	case config.DriverFirestore:
		fbApp, err := app.sharedFirebaseApp(ctx)
		if err != nil {
			return err
		}
		client, err := firebase.NewFirestore(ctx, fbApp)
		if err != nil {
			return err
		}
		app.onCleanup(func(context.Context) error { return client.Close() })

		app.foodStore = firestoredb.NewFirestoreFoodStore(client, app.logger)
		app.requestedFoodStore = firestoredb.NewFirestoreRequestedFoodStore(client, app.logger)

	case config.DriverMemory:
		app.logger.Warn("using in-memory store, data will not survive a restart")
		app.foodStore = memstore.NewFoodStore()
		app.requestedFoodStore = memstore.NewRequestedFoodStore()

	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	app.logger.Debug("store backend ready", slog.String("driver", app.config.Database.Driver))
	return nil
}
