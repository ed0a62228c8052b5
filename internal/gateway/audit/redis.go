package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"click-gateway/internal/gateway/domain"

	"github.com/redis/go-redis/v9"
)

// Compile-time interface check
var _ Sink = (*RedisSink)(nil)

// RedisSink appends events to a capped Redis stream.
type RedisSink struct {
	rdb    redis.Cmdable
	stream string
	maxLen int64
}

// NewRedisSink creates a sink writing to stream; maxLen caps the stream approximately.
func NewRedisSink(rdb redis.Cmdable, stream string, maxLen int64) *RedisSink {
	return &RedisSink{rdb: rdb, stream: stream, maxLen: maxLen}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Write(ctx context.Context, event domain.AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"id":       event.ID,
			"decision": event.Decision,
			"event":    data,
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}
	return s.rdb.XAdd(ctx, args).Err()
}
