package audit

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"click-gateway/internal/gateway/domain"

	ua "github.com/mileusna/useragent"
)

// MaxUserAgentLength caps the User-Agent stored in an event.
const MaxUserAgentLength = 256

// Enricher fills the derived fields of an event off the request path.
type Enricher struct {
	searchEngines []string
	socialMedia   []string
	aiPlatforms   []string
}

// NewEnricher creates an Enricher with predefined referer domain lists.
func NewEnricher() *Enricher {
	return &Enricher{
		searchEngines: []string{
			"google.",
			"bing.com",
			"yahoo.com",
			"duckduckgo.com",
			"baidu.com",
			"yandex.",
			"ecosia.org",
		},
		socialMedia: []string{
			"facebook.com",
			"twitter.com",
			"x.com",
			"t.co",
			"instagram.com",
			"linkedin.com",
			"pinterest.com",
			"reddit.com",
			"tiktok.com",
			"youtube.com",
			"telegram.org",
			"t.me",
		},
		aiPlatforms: []string{
			"chatgpt.com",
			"claude.ai",
			"gemini.google.com",
			"perplexity.ai",
			"copilot.microsoft.com",
		},
	}
}

// Enrich truncates the User-Agent and sets device and referer source.
func (e *Enricher) Enrich(event domain.AuditEvent) domain.AuditEvent {
	event.Device = DetectDevice(event.UserAgent)
	event.UserAgent = truncateUTF8(event.UserAgent, MaxUserAgentLength)
	event.RefererPresent = event.Referer != ""
	event.RefererSource = e.ClassifySource(event.Referer)
	event.Referer = ""
	return event
}

// DetectDevice returns "Desktop", "Mobile", "Tablet", "Bot", or "Unknown".
func DetectDevice(uaString string) string {
	if uaString == "" {
		return "Unknown"
	}

	parsed := ua.Parse(uaString)

	// Check bot first
	if parsed.Bot {
		return "Bot"
	}

	if parsed.Tablet {
		return "Tablet"
	}

	if parsed.Mobile {
		return "Mobile"
	}

	if parsed.Desktop {
		return "Desktop"
	}

	return "Unknown"
}

// ClassifySource returns "Search", "Social", "AI", "Direct", or "Referral".
func (e *Enricher) ClassifySource(refererStr string) string {
	if refererStr == "" {
		return "Direct"
	}

	parsed, err := url.Parse(refererStr)
	if err != nil || parsed.Hostname() == "" {
		return "Direct"
	}

	hostname := strings.ToLower(parsed.Hostname())
	hostname = strings.TrimPrefix(hostname, "www.")

	// AI platforms first: gemini.google.com would otherwise match search.
	if matchesDomain(hostname, e.aiPlatforms) {
		return "AI"
	}
	if matchesDomain(hostname, e.searchEngines) {
		return "Search"
	}
	if matchesDomain(hostname, e.socialMedia) {
		return "Social"
	}
	return "Referral"
}

func matchesDomain(hostname string, domains []string) bool {
	for _, d := range domains {
		if strings.HasSuffix(d, ".") {
			if strings.HasPrefix(hostname, d) || strings.Contains(hostname, "."+d) {
				return true
			}
			continue
		}
		if hostname == d || strings.HasSuffix(hostname, "."+d) {
			return true
		}
	}
	return false
}

func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	s = s[:max]
	// Drop a rune cut in half by the byte limit.
	for i := 0; i < utf8.UTFMax && len(s) > 0; i++ {
		r, size := utf8.DecodeLastRuneInString(s)
		if r != utf8.RuneError || size != 1 {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}
