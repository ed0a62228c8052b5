package classifier

import (
	"fmt"
	"strings"
)

// UAPolicy decides how an empty User-Agent is treated.
type UAPolicy string

const (
	// UAPolicyPermissive treats an empty User-Agent as human.
	UAPolicyPermissive UAPolicy = "permissive"
	// UAPolicyStrict treats an empty User-Agent as a bot.
	UAPolicyStrict UAPolicy = "strict"
)

// ParseUAPolicy maps a config value to a UAPolicy. Empty means permissive.
func ParseUAPolicy(s string) (UAPolicy, error) {
	switch UAPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", UAPolicyPermissive:
		return UAPolicyPermissive, nil
	case UAPolicyStrict:
		return UAPolicyStrict, nil
	}
	return "", fmt.Errorf("unknown user-agent policy %q", s)
}

// botSignatures are matched as lower-case substrings of the User-Agent.
var botSignatures = []string{
	// crawlers and link unfurlers
	"bot",
	"spider",
	"crawl",
	"bingpreview",
	"facebookexternalhit",
	"twitterbot",
	"slurp",
	"mediapartners",
	// browser automation
	"phantomjs",
	"headless",
	"selenium",
	"webdriver",
	"puppeteer",
	"playwright",
	"electron",
	// http tooling and client libraries
	"wget",
	"curl",
	"httpie",
	"postman",
	"python-requests",
	"python-urllib",
	"aiohttp",
	"scrapy",
	"go-http-client",
	"okhttp",
	"java/",
	"apache-httpclient",
	"libwww-perl",
	"axios",
	"node-fetch",
	"guzzlehttp",
}

// BotSignatures returns a copy of the built-in signature list.
func BotSignatures() []string {
	out := make([]string, len(botSignatures))
	copy(out, botSignatures)
	return out
}

// BotDetector flags automation by User-Agent substring matching.
type BotDetector struct {
	policy UAPolicy
}

// NewBotDetector creates a detector using the built-in signatures.
func NewBotDetector(policy UAPolicy) *BotDetector {
	return &BotDetector{policy: policy}
}

// Strict reports whether an empty User-Agent is treated as a bot.
func (d *BotDetector) Strict() bool {
	return d.policy == UAPolicyStrict
}

// IsBot reports whether userAgent looks automated.
func (d *BotDetector) IsBot(userAgent string) bool {
	ua := strings.ToLower(strings.TrimSpace(userAgent))
	if ua == "" {
		return d.policy == UAPolicyStrict
	}
	for _, sig := range botSignatures {
		if strings.Contains(ua, sig) {
			return true
		}
	}
	return false
}
