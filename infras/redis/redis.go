package redis

import (
	"context"
	"net"
	"sportshub/config"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	pingTimeout = 3 * time.Second
	pingRetries = 3
	retryWait   = time.Second
)

// New connects the primary cache node. The API cannot serve cached lists or rate limits
// without it, so a node that never answers PING is fatal.
func New(cfg *config.Config) *goRedis.Client {
	primary := cfg.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	var err error

	for attempt := 1; attempt <= pingRetries; attempt++ {
		if err = ping(client); err == nil {
			log.Info().
				Int("db", primary.DB).
				Str("host", primary.Host).
				Str("port", primary.Port).
				Msg("Connected to Redis")

			return client
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("Redis not reachable, retrying")
		time.Sleep(retryWait)
	}

	log.Fatal().Err(err).Str("host", primary.Host).Msg("Failed to connect to Redis")

	return nil
}

func ping(client *goRedis.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	return client.Ping(ctx).Err() //nolint:wrapcheck
}
