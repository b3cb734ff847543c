package mail

import (
	"context"
	"errors"
	"fmt"
	"sportshub/infras/otel"
	"sportshub/shared/constant"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

var ErrMissingRecipient = errors.New("mail recipient is required")

type resendSender struct {
	client *resend.Client
	from   string
	otel   otel.Otel
}

func NewResendSender(apiKey, from string, otl otel.Otel) Sender {
	return &resendSender{
		client: resend.NewClient(apiKey),
		from:   from,
		otel:   otl,
	}
}

func (s *resendSender) Send(ctx context.Context, to, subject, body string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".resend.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	if to == "" {
		return ErrMissingRecipient
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	})
	if err != nil {
		log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("failed to send email via resend")

		return fmt.Errorf("failed to send email via resend: %w", err)
	}

	scope.SetAttribute("message_id", sent.Id)
	log.Info().Str("message_id", sent.Id).Str("to", to).Str("subject", subject).Msg("email sent")

	return nil
}
