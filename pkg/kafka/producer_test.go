package kafka

import (
	"context"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducerDropsEmptyBrokers(t *testing.T) {
	p := NewProducer(Config{
		Brokers:  []string{"localhost:9092", "", "localhost:9093"},
		ClientID: "fraudguard",
	})

	require.NotNil(t, p)
	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, p.brokers)
	assert.NotNil(t, p.writers)
	assert.Empty(t, p.writers)
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.False(t, Config{Brokers: []string{""}}.Enabled())
	assert.True(t, Config{Brokers: []string{"kafka:9092"}}.Enabled())
}

func TestToKafkaMessages(t *testing.T) {
	msgs := toKafkaMessages([]Message{
		{
			Key:   []byte("advisor_verification"),
			Value: []byte(`{"tier":"high"}`),
			Headers: map[string]string{
				"event_type": "fraudguard.alert.raised",
			},
		},
		{Value: []byte(`{}`)},
	})

	require.Len(t, msgs, 2)
	assert.Equal(t, "advisor_verification", string(msgs[0].Key))
	assert.Equal(t, `{"tier":"high"}`, string(msgs[0].Value))
	require.Len(t, msgs[0].Headers, 1)
	assert.Equal(t, kafkago.Header{Key: "event_type", Value: []byte("fraudguard.alert.raised")}, msgs[0].Headers[0])
	assert.Empty(t, msgs[1].Headers)
}

func TestGetOrCreateWriter(t *testing.T) {
	p := NewProducer(Config{
		Brokers:      []string{"localhost:9092"},
		ClientID:     "fraudguard",
		WriteTimeout: 2 * time.Second,
	})

	w1 := p.getOrCreateWriter("fraudguard.alerts")
	require.NotNil(t, w1)
	assert.Equal(t, "fraudguard.alerts", w1.Topic)
	assert.Equal(t, 2*time.Second, w1.WriteTimeout)

	w2 := p.getOrCreateWriter("fraudguard.alerts")
	assert.Same(t, w1, w2, "same topic should reuse the writer")

	w3 := p.getOrCreateWriter("fraudguard.assessments")
	assert.NotSame(t, w1, w3)
	assert.Len(t, p.writers, 2)
}

func TestPublishNoMessagesIsNoop(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	require.NoError(t, p.Publish(context.Background(), "fraudguard.alerts"))
	assert.Empty(t, p.writers, "no writer should be created for an empty publish")
}

func TestProducerClose(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})
	_ = p.getOrCreateWriter("topic-a")
	_ = p.getOrCreateWriter("topic-b")

	require.NoError(t, p.Close())
	assert.Empty(t, p.writers)
}
