// Package kafka wraps franz-go for producing domain events.
package kafka

import (
	"context"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaClient defines the interface for Kafka operations
type KafkaClient interface {
	Produce(ctx context.Context, topic string, key, value []byte) error
	ProduceAsync(ctx context.Context, topic string, key, value []byte)
	Ping(ctx context.Context) error
	Close() error
	GetClient() *kgo.Client
}

// Client represents a Kafka client wrapper
type Client struct {
	opts   []kgo.Opt
	client *kgo.Client
	logger *slog.Logger
}

// New creates a new Kafka client with the provided options
func New(opts ...kgo.Opt) (KafkaClient, error) {
	kafkaClient, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		opts:   opts,
		client: kafkaClient,
		logger: slog.Default(),
	}, nil
}

// SetLogger sets the logger used to report failed asynchronous produces
func (k *Client) SetLogger(logger *slog.Logger) {
	if logger != nil {
		k.logger = logger
	}
}

func newRecord(topic string, key, value []byte) *kgo.Record {
	return &kgo.Record{
		Topic: topic,
		Key:   key,
		Value: value,
	}
}

// Produce sends a message to a Kafka topic and waits for the broker ack
func (k *Client) Produce(ctx context.Context, topic string, key, value []byte) error {
	return k.client.ProduceSync(ctx, newRecord(topic, key, value)).FirstErr()
}

// ProduceAsync sends a message to a Kafka topic without waiting
func (k *Client) ProduceAsync(ctx context.Context, topic string, key, value []byte) {
	k.client.Produce(ctx, newRecord(topic, key, value), func(record *kgo.Record, err error) {
		if err != nil {
			k.logger.Warn("Failed to produce kafka record", "topic", record.Topic, "key", string(record.Key), "error", err)
		}
	})
}

// Ping checks that at least one broker is reachable
func (k *Client) Ping(ctx context.Context) error {
	return k.client.Ping(ctx)
}

// Close flushes buffered records and closes the Kafka client
func (k *Client) Close() error {
	if k.client != nil {
		k.client.Close()
	}
	return nil
}

// GetClient returns the underlying Kafka client for advanced operations
func (k *Client) GetClient() *kgo.Client {
	return k.client
}
