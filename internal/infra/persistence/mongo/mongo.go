// Package mongo contains the document store side of the persistence layer.
// Per-user game settings live here as free-form documents.
package mongo

import (
	"context"
	"log/slog"

	"gamevault/config"
	"gamevault/internal/domain/lifecycle"
	"gamevault/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates a MongoDB database handle with managed connect/disconnect.
func New(params Params) (*mongo.Database, error) {
	if params.Config.Mongo == nil || params.Config.Mongo.URI == "" {
		return nil, errors.New("mongo connection is not configured")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			params.Logger.Info("MongoDB connected",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}
