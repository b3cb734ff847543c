package mongo

import (
	"context"
	"fmt"
	"sportshub/config"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// New connects and pings the configured server, retrying like the Postgres pools do.
func New(cfg *config.Config) *Connection {
	timeout := time.Duration(cfg.DB.Mongo.TimeoutSeconds) * time.Second
	maxRetry := max(cfg.DB.Postgres.MaxRetry, 1)

	for retry := range maxRetry {
		conn, err := connect(cfg.DB.Mongo.URI, cfg.DB.Mongo.Name, timeout)
		if err == nil {
			log.Info().Str("dbName", cfg.DB.Mongo.Name).Msg("Connected to MongoDB")

			return conn
		}

		log.Error().
			Err(err).
			Str("dbName", cfg.DB.Mongo.Name).
			Int("attempt", retry+1).
			Msg("Failed connecting to MongoDB, retrying")

		time.Sleep(time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second)
	}

	log.Fatal().Str("dbName", cfg.DB.Mongo.Name).Msg("Giving up connecting to MongoDB")

	return nil
}

func connect(uri, name string, timeout time.Duration) (*Connection, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return &Connection{
		Client:   client,
		Database: client.Database(name),
	}, nil
}

func (c *Connection) Close(ctx context.Context) error {
	if err := c.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo: %w", err)
	}

	return nil
}
