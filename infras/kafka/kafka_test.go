package kafka_test

import (
	"sportshub/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "booking-1", Value: envelope{To: "a@campus.lk", Subject: "Sports Hub Booking Approved"}}

	raw, err := msg.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("booking-1"), raw.Key)

	decoded, err := kafka.Decode[envelope](raw)
	require.NoError(t, err)
	assert.Equal(t, "a@campus.lk", decoded.To)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := kafka.Decode[envelope](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)

	_, err = (&kafka.Message{Value: make(chan int)}).ToKafkaMessage()
	assert.Error(t, err)
}
