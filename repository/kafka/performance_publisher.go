// Package kafka publishes domain events through franz-go
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shivam970806/VMS/domain/event"
	"github.com/shivam970806/VMS/pkg/kafka"
	"github.com/shivam970806/VMS/pkg/logger"
)

// defaultPublishTimeout bounds how long a request waits for the broker ack
const defaultPublishTimeout = 5 * time.Second

type performancePublisher struct {
	client  kafka.KafkaClient
	topic   string
	timeout time.Duration
	logger  logger.LoggerInterface
}

// NewPerformancePublisher creates a publisher writing to topic, keyed by vendor code
func NewPerformancePublisher(client kafka.KafkaClient, topic string, timeout time.Duration, logger logger.LoggerInterface) event.PerformancePublisher {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &performancePublisher{
		client:  client,
		topic:   topic,
		timeout: timeout,
		logger:  logger,
	}
}

// PublishPerformanceUpdated produces evt synchronously
func (p *performancePublisher) PublishPerformanceUpdated(ctx context.Context, evt event.PerformanceUpdated) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to encode performance event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.client.Produce(ctx, p.topic, []byte(evt.VendorCode), payload); err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish performance event", "topic", p.topic, "vendorCode", evt.VendorCode, "eventID", evt.EventID, "error", err)
		return fmt.Errorf("failed to publish performance event: %w", err)
	}

	p.logger.DebugContext(ctx, "Performance event published", "topic", p.topic, "vendorCode", evt.VendorCode, "eventID", evt.EventID)
	return nil
}
