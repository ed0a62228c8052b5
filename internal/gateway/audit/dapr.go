package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"click-gateway/internal/gateway/domain"

	dapr "github.com/dapr/go-sdk/client"
)

// DaprPublisher is the subset of the Dapr client used for audit publishing.
type DaprPublisher interface {
	PublishEvent(ctx context.Context, pubsubName, topicName string, data interface{}, opts ...dapr.PublishEventOption) error
}

// Compile-time interface check
var _ Sink = (*DaprSink)(nil)

// DaprSink publishes events to a Dapr pub/sub topic.
type DaprSink struct {
	client DaprPublisher
	pubsub string
	topic  string
}

// NewDaprSink creates a sink publishing to pubsub/topic.
func NewDaprSink(client DaprPublisher, pubsub, topic string) *DaprSink {
	return &DaprSink{client: client, pubsub: pubsub, topic: topic}
}

func (s *DaprSink) Name() string { return "dapr" }

func (s *DaprSink) Write(ctx context.Context, event domain.AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	return s.client.PublishEvent(ctx, s.pubsub, s.topic, data, dapr.PublishEventWithContentType("application/json"))
}
