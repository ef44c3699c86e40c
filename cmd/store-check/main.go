// Command store-check connects to the configured store backend, runs a
// read against each collection and reports the outcome. Connection errors
// are logged in redacted form.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/phrazzld/foodshare-api/internal/config"
	"github.com/phrazzld/foodshare-api/internal/platform/firebase"
	"github.com/phrazzld/foodshare-api/internal/platform/firestoredb"
	"github.com/phrazzld/foodshare-api/internal/platform/logger"
	"github.com/phrazzld/foodshare-api/internal/platform/mongodb"
	"github.com/phrazzld/foodshare-api/internal/redact"
	"github.com/phrazzld/foodshare-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cfg.Server.LogLevel = "debug"
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	foods, requests, closeFn, err := open(ctx, cfg, l)
	if err != nil {
		l.Error("failed to open store", slog.String("driver", cfg.Database.Driver), slog.String("error", redact.Error(err)))
		os.Exit(1)
	}
	defer closeFn()

	probe := "store-check@example.invalid"

	found, err := foods.Find(ctx, store.FoodQuery{Email: &probe, Limit: 1})
	if err != nil {
		l.Error("food query failed", slog.String("error", redact.Error(err)))
		os.Exit(1)
	}
	l.Info("food query succeeded", slog.Int("results", len(found)))

	claims, err := requests.FindByRequester(ctx, probe)
	if err != nil {
		l.Error("requested food query failed", slog.String("error", redact.Error(err)))
		os.Exit(1)
	}
	l.Info("requested food query succeeded", slog.Int("results", len(claims)))

	l.Info("store check passed", slog.String("driver", cfg.Database.Driver))
}

func open(
	ctx context.Context,
	cfg *config.Config,
	l *slog.Logger,
) (store.FoodStore, store.RequestedFoodStore, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverFirestore:
		app, err := firebase.NewApp(ctx, cfg.Auth.FirebaseServiceKey)
		if err != nil {
			return nil, nil, nil, err
		}
		client, err := firebase.NewFirestore(ctx, app)
		if err != nil {
			return nil, nil, nil, err
		}
		return firestoredb.NewFirestoreFoodStore(client, l),
			firestoredb.NewFirestoreRequestedFoodStore(client, l),
			func() { _ = client.Close() },
			nil

	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Database, l)
		if err != nil {
			return nil, nil, nil, err
		}
		return mongodb.NewMongoFoodStore(db, l),
			mongodb.NewMongoRequestedFoodStore(db, l),
			func() { _ = client.Disconnect(context.Background()) },
			nil

	default:
		l.Warn("nothing to check for driver", slog.String("driver", cfg.Database.Driver))
		os.Exit(0)
		return nil, nil, nil, nil
	}
}
