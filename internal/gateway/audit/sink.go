// Package audit ships decision records to external sinks without ever
// holding up the redirect.
package audit

import (
	"context"

	"click-gateway/internal/gateway/domain"
)

// Sink delivers one event. Implementations may block up to the context deadline.
type Sink interface {
	Name() string
	Write(ctx context.Context, event domain.AuditEvent) error
}
