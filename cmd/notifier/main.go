package main

import (
	"context"
	"os"
	"os/signal"
	"sportshub/config"
	"sportshub/di"
	"sportshub/shared/logger"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	shutdownTimeout = 5 * time.Second
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	notifier := di.InitializeNotifier()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("topic", cfg.Mail.Topic).
		Str("group", cfg.Kafka.ConsumerGroup).
		Msg("Starting mail notifier.")

	if err := notifier.Client.Consume(ctx, cfg.Kafka.ConsumerGroup, cfg.Mail.Topic, notifier.Relay()); err != nil {
		log.Error().Err(err).Msg("Mail notifier stopped with error")
	}

	if err := notifier.Client.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := notifier.Otel.Shutdown(flushCtx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Mail notifier stopped.")
}
