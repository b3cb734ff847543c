package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"sportshub/config"
	"sportshub/infras/kafka"
	"sportshub/infras/otel"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	DriverResend = "resend"
	DriverKafka  = "kafka"
	DriverNoop   = "noop"
)

// Envelope is one outgoing message. Body holds HTML.
type Envelope struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Sender delivers a single email.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New picks the Sender named by MAIL_DRIVER. Unknown drivers fall back to noop.
func New(cfg *config.Config, client kafka.Client, otl otel.Otel) Sender {
	driver := strings.ToLower(cfg.Mail.Driver)

	log.Info().Str("driver", driver).Msg("Mail sender initialized")

	switch driver {
	case DriverResend:
		return NewResendSender(cfg.Mail.Resend.APIKey, cfg.Mail.From, otl)
	case DriverKafka:
		return NewKafkaSender(client, cfg.Mail.Topic, otl)
	case DriverNoop, "":
		return NewNoopSender()
	default:
		log.Warn().Str("driver", driver).Msg("Unknown mail driver, emails will only be logged")

		return NewNoopSender()
	}
}

type noopSender struct{}

func NewNoopSender() Sender {
	return noopSender{}
}

func (noopSender) Send(_ context.Context, to, subject, _ string) error {
	log.Info().Str("to", to).Str("subject", subject).Msg("mail delivery disabled, message dropped")

	return nil
}
