package mail

import (
	"context"
	"fmt"
	"sportshub/infras/kafka"
	"sportshub/infras/otel"
	"sportshub/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// kafkaSender hands envelopes to the notifier worker through a topic.
type kafkaSender struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

func NewKafkaSender(client kafka.Client, topic string, otl otel.Otel) Sender {
	return &kafkaSender{
		client: client,
		topic:  topic,
		otel:   otl,
	}
}

func (s *kafkaSender) Send(ctx context.Context, to, subject, body string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".kafka.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	if to == "" {
		return ErrMissingRecipient
	}

	err = s.client.SendMessages(ctx, s.topic, kafka.Message{
		Key:   to,
		Value: Envelope{To: to, Subject: subject, Body: body},
	})
	if err != nil {
		log.Error().Err(err).Str("to", to).Str("topic", s.topic).Msg("failed to enqueue email")

		return fmt.Errorf("failed to enqueue email: %w", err)
	}

	return nil
}

// Relay returns a consumer handler delivering queued envelopes through sender.
func Relay(sender Sender) kafka.Handler {
	return func(ctx context.Context, message kafkaGo.Message) error {
		envelope, err := kafka.Decode[Envelope](message)
		if err != nil {
			// Undecodable payloads are dropped so they do not block the partition.
			log.Error().Err(err).Msg("dropping malformed mail envelope")

			return nil
		}

		return sender.Send(ctx, envelope.To, envelope.Subject, envelope.Body) //nolint:wrapcheck
	}
}
