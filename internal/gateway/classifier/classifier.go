package classifier

import (
	"fmt"
	"strings"

	"click-gateway/internal/gateway/domain"
)

// Strategy produces classification signals for a fingerprint. Implementations
// must not block: they run synchronously on the redirect path.
type Strategy interface {
	Classify(fp domain.ClientFingerprint) domain.Signals
}

// CombineRule turns signals into an admit/deny decision.
type CombineRule string

const (
	// CombineAnd denies only when the client is both a bot and in a datacenter.
	CombineAnd CombineRule = "and"
	// CombineOr denies when either signal is set.
	CombineOr CombineRule = "or"
)

// ParseCombineRule maps a config value to a CombineRule. Empty means "and".
func ParseCombineRule(s string) (CombineRule, error) {
	switch CombineRule(strings.ToLower(strings.TrimSpace(s))) {
	case "", CombineAnd:
		return CombineAnd, nil
	case CombineOr:
		return CombineOr, nil
	}
	return "", fmt.Errorf("unknown combine rule %q", s)
}

// Evaluate returns ReasonNone when the client is admitted.
func (r CombineRule) Evaluate(s domain.Signals) domain.DenyReason {
	switch {
	case s.IsBot && s.IsDatacenter:
		return domain.ReasonBotDatacenter
	case s.MissingUserAgent:
		return domain.ReasonBot
	case r == CombineOr && s.IsBot:
		return domain.ReasonBot
	case r == CombineOr && s.IsDatacenter:
		return domain.ReasonDatacenter
	}
	return domain.ReasonNone
}

// Compile-time interface check
var _ Strategy = (*HeuristicClassifier)(nil)

// HeuristicClassifier combines User-Agent signatures with address ranges.
type HeuristicClassifier struct {
	bots        *BotDetector
	datacenters *DatacenterMatcher
}

// NewHeuristicClassifier creates the static-rule classifier.
func NewHeuristicClassifier(bots *BotDetector, datacenters *DatacenterMatcher) *HeuristicClassifier {
	return &HeuristicClassifier{bots: bots, datacenters: datacenters}
}

// Classify implements Strategy.
func (c *HeuristicClassifier) Classify(fp domain.ClientFingerprint) domain.Signals {
	return domain.Signals{
		IsBot:            c.bots.IsBot(fp.UserAgent),
		IsDatacenter:     c.datacenters.IsDatacenter(fp.IP),
		MissingUserAgent: c.bots.Strict() && strings.TrimSpace(fp.UserAgent) == "",
	}
}
