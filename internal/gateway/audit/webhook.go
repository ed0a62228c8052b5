package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"click-gateway/internal/gateway/domain"
)

// Compile-time interface check
var _ Sink = (*WebhookSink)(nil)

// WebhookSink POSTs each event as a JSON object. The response body is ignored.
type WebhookSink struct {
	url    string
	client *http.Client
}

// NewWebhookSink creates a sink posting to url.
func NewWebhookSink(url string, client *http.Client) *WebhookSink {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &WebhookSink{url: url, client: client}
}

func (s *WebhookSink) Name() string { return "webhook" }

func (s *WebhookSink) Write(ctx context.Context, event domain.AuditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook status %d", resp.StatusCode)
	}
	return nil
}
