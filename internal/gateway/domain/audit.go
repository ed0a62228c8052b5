package domain

import "time"

// AuditEvent is a point-in-time record of one gateway decision.
type AuditEvent struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	RequestID      string    `json:"request_id,omitempty"`
	IP             string    `json:"ip"`
	UserAgent      string    `json:"user_agent"`
	RefererPresent bool      `json:"referer_present"`
	RefererSource  string    `json:"referer_source,omitempty"`
	Device         string    `json:"device,omitempty"`
	Decision       string    `json:"decision"`
	Reason         string    `json:"reason,omitempty"`
	IsBot          bool      `json:"is_bot"`
	IsDatacenter   bool      `json:"is_datacenter"`
	Country        string    `json:"country,omitempty"`
	ClickID        string    `json:"click_id,omitempty"`
	ZoneID         string    `json:"zoneid,omitempty"`
	CampaignID     string    `json:"cid,omitempty"`
	Nonce          string    `json:"nonce,omitempty"`
	SignedAt       int64     `json:"ts,omitempty"`

	// Referer is only used for enrichment and never serialized.
	Referer string `json:"-"`
}
