package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestBotDetector_KnownSignatures(t *testing.T) {
	d := NewBotDetector(UAPolicyPermissive)

	bots := []string{
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"curl/8.4.0",
		"Wget/1.21",
		"python-requests/2.31.0",
		"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) HeadlessChrome/120.0.0.0 Safari/537.36",
		"facebookexternalhit/1.1",
		"Go-http-client/1.1",
		"Scrapy/2.11 (+https://scrapy.org)",
	}
	for _, ua := range bots {
		assert.True(t, d.IsBot(ua), ua)
	}
}

func TestBotDetector_Browsers(t *testing.T) {
	d := NewBotDetector(UAPolicyStrict)

	assert.False(t, d.IsBot(chromeUA))
	assert.False(t, d.IsBot("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"))
}

func TestBotDetector_EmptyUserAgentPolicy(t *testing.T) {
	assert.False(t, NewBotDetector(UAPolicyPermissive).IsBot(""))
	assert.False(t, NewBotDetector(UAPolicyPermissive).IsBot("   "))
	assert.True(t, NewBotDetector(UAPolicyStrict).IsBot(""))
}

func TestBotDetector_CaseInsensitive(t *testing.T) {
	d := NewBotDetector(UAPolicyPermissive)
	assert.True(t, d.IsBot("SOME-SPIDER/1.0"))
}

func TestParseUAPolicy(t *testing.T) {
	p, err := ParseUAPolicy("")
	require.NoError(t, err)
	assert.Equal(t, UAPolicyPermissive, p)

	p, err = ParseUAPolicy("STRICT")
	require.NoError(t, err)
	assert.Equal(t, UAPolicyStrict, p)

	_, err = ParseUAPolicy("paranoid")
	assert.Error(t, err)
}

func TestBotSignatures_ReturnsCopy(t *testing.T) {
	sigs := BotSignatures()
	require.NotEmpty(t, sigs)
	sigs[0] = "mutated"
	assert.NotEqual(t, "mutated", BotSignatures()[0])
}
