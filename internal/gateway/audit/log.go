package audit

import (
	"context"

	"click-gateway/internal/gateway/domain"

	"go.uber.org/zap"
)

// Compile-time interface check
var _ Sink = (*LogSink)(nil)

// LogSink writes events as structured log lines.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Named("audit")}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Write(_ context.Context, e domain.AuditEvent) error {
	s.logger.Info("gateway decision",
		zap.String("event_id", e.ID),
		zap.String("request_id", e.RequestID),
		zap.Time("timestamp", e.Timestamp),
		zap.String("decision", e.Decision),
		zap.String("reason", e.Reason),
		zap.String("ip", e.IP),
		zap.String("user_agent", e.UserAgent),
		zap.String("device", e.Device),
		zap.Bool("referer_present", e.RefererPresent),
		zap.String("referer_source", e.RefererSource),
		zap.Bool("is_bot", e.IsBot),
		zap.Bool("is_datacenter", e.IsDatacenter),
		zap.String("country", e.Country),
		zap.String("click_id", e.ClickID),
		zap.String("zoneid", e.ZoneID),
		zap.String("cid", e.CampaignID),
		zap.String("nonce", e.Nonce),
		zap.Int64("ts", e.SignedAt),
	)
	return nil
}
