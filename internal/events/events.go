// Package events publishes client lifecycle events after successful
// writes. Publishing is best-effort: failures are logged and never reach
// the request path.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"client-hub/internal/domain/client"

	"github.com/segmentio/kafka-go"
)

const (
	topicClientEvents = "client_events"

	eventClientCreated = "client_created"
	eventClientUpdated = "client_updated"
	eventClientDeleted = "client_deleted"

	publishTimeout = 5 * time.Second
	batchTimeout   = 50 * time.Millisecond

	logMarshalFailedFmt = "Failed to marshal %s event: %v"
	logPublishFailedFmt = "Failed to publish %s event: %v"
)

// Publisher is the post-commit hook fired after each successful write.
type Publisher interface {
	ClientCreated(ctx context.Context, c *client.Client)
	ClientUpdated(ctx context.Context, c *client.Client)
	ClientDeleted(ctx context.Context, id string)
}

type clientEvent struct {
	Event string         `json:"event"`
	Data  *client.Client `json:"data,omitempty"`
	ID    string         `json:"id,omitempty"`
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(broker string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(broker),
			Topic:                  topicClientEvents,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           batchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPublisher) ClientCreated(ctx context.Context, c *client.Client) {
	p.publish(ctx, clientEvent{Event: eventClientCreated, Data: c})
}

func (p *KafkaPublisher) ClientUpdated(ctx context.Context, c *client.Client) {
	p.publish(ctx, clientEvent{Event: eventClientUpdated, Data: c})
}

func (p *KafkaPublisher) ClientDeleted(ctx context.Context, id string) {
	p.publish(ctx, clientEvent{Event: eventClientDeleted, ID: id})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func (p *KafkaPublisher) publish(ctx context.Context, event clientEvent) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	value, err := json.Marshal(event)
	if err != nil {
		log.Printf(logMarshalFailedFmt, event.Event, err)
		return
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: value}); err != nil {
		log.Printf(logPublishFailedFmt, event.Event, err)
	}
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) ClientCreated(context.Context, *client.Client) {}
func (NoopPublisher) ClientUpdated(context.Context, *client.Client) {}
func (NoopPublisher) ClientDeleted(context.Context, string)         {}
