package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/foodshare-api/internal/config"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Connect opens a client using Stable API v1 in strict mode, pings the
// deployment, and returns the configured database. The caller owns the
// client and must Disconnect it.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(clientOptions(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := Ping(ctx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	logger.Info("connected to MongoDB", slog.String("database", cfg.Name))
	return client, client.Database(cfg.Name), nil
}

// clientOptions builds the client configuration for cfg. User and Password
// are applied only when the URI names no user of its own.
func clientOptions(cfg config.DatabaseConfig) *options.ClientOptions {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	if cfg.User != "" && (opts.Auth == nil || opts.Auth.Username == "") {
		opts.SetAuth(options.Credential{
			Username: cfg.User,
			Password: cfg.Password,
		})
	}

	return opts
}

// Ping runs the ping command against the admin database.
func Ping(ctx context.Context, client *mongo.Client) error {
	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return fmt.Errorf("failed to ping mongo deployment: %w", err)
	}
	return nil
}
