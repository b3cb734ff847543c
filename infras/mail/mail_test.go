package mail_test

import (
	"context"
	"errors"
	"sportshub/config"
	"sportshub/infras/kafka"
	kafkaMocks "sportshub/infras/kafka/mocks"
	"sportshub/infras/mail"
	mailMocks "sportshub/infras/mail/mocks"
	otelMocks "sportshub/infras/otel/mocks"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestKafkaSender_Send(t *testing.T) {
	tests := []struct {
		name      string
		to        string
		setupMock func(client *kafkaMocks.MockClient)
		wantErr   bool
	}{
		{
			name: "publishes envelope",
			to:   "student@campus.lk",
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().SendMessages(gomock.Any(), "sportshub.mail", kafka.Message{
					Key:   "student@campus.lk",
					Value: mail.Envelope{To: "student@campus.lk", Subject: "Sports Hub Booking Approved", Body: "<p>ok</p>"},
				}).Return(nil)
			},
		},
		{
			name: "broker failure",
			to:   "student@campus.lk",
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().SendMessages(gomock.Any(), "sportshub.mail", gomock.Any()).Return(errors.New("broker down"))
			},
			wantErr: true,
		},
		{
			name:      "missing recipient",
			setupMock: func(_ *kafkaMocks.MockClient) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := kafkaMocks.NewMockClient(ctrl)
			tt.setupMock(client)

			sender := mail.NewKafkaSender(client, "sportshub.mail", otelMocks.NewOtel())
			err := sender.Send(context.Background(), tt.to, "Sports Hub Booking Approved", "<p>ok</p>")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRelay(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mailMocks.NewMockSender(ctrl)

	sender.EXPECT().Send(gomock.Any(), "coach@campus.lk", "subject", "<p>body</p>").Return(nil)

	handler := mail.Relay(sender)

	msg, err := (&kafka.Message{Key: "coach@campus.lk", Value: mail.Envelope{To: "coach@campus.lk", Subject: "subject", Body: "<p>body</p>"}}).ToKafkaMessage()
	require.NoError(t, err)

	assert.NoError(t, handler(context.Background(), msg))
	assert.NoError(t, handler(context.Background(), kafkaGo.Message{Value: []byte("not json")}))
}

func TestNew_Driver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Mail.Driver = "carrier-pigeon"

	sender := mail.New(cfg, nil, otelMocks.NewOtel())
	assert.NoError(t, sender.Send(context.Background(), "a@b.c", "s", "b"))
}

func TestRenderMarkdown(t *testing.T) {
	html, err := mail.RenderMarkdown("Your booking for **Inter-faculty Final** has been approved.\n\n<script>x</script>")
	require.NoError(t, err)

	assert.Contains(t, html, "<strong>Inter-faculty Final</strong>")
	assert.NotContains(t, html, "<script>")
}
