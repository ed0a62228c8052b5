package http_test

import (
	"net/http/httptest"
	"testing"

	httpdelivery "click-gateway/internal/gateway/delivery/http"

	"github.com/stretchr/testify/assert"
)

// TestClientIP verifies header precedence and the peer address fallback
func TestClientIP(t *testing.T) {
	x := httpdelivery.NewFingerprintExtractor([]string{"cf-connecting-ip", " X-Real-IP ", "", "X-Forwarded-For"})

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"cloudflare wins", map[string]string{"CF-Connecting-IP": "1.1.1.1", "X-Real-IP": "2.2.2.2"}, "9.9.9.9:1", "1.1.1.1"},
		{"real ip before forwarded", map[string]string{"X-Real-IP": "2.2.2.2", "X-Forwarded-For": "3.3.3.3"}, "9.9.9.9:1", "2.2.2.2"},
		{"first forwarded entry", map[string]string{"X-Forwarded-For": " 3.3.3.3 , 4.4.4.4"}, "9.9.9.9:1", "3.3.3.3"},
		{"empty forwarded entry falls through", map[string]string{"X-Forwarded-For": " , 4.4.4.4"}, "9.9.9.9:1", "9.9.9.9"},
		{"peer address", nil, "9.9.9.9:1", "9.9.9.9"},
		{"ipv6 peer", nil, "[2001:db8::1]:443", "2001:db8::1"},
		{"peer without port", nil, "9.9.9.9", "9.9.9.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, x.ClientIP(req))
		})
	}
}

// TestExtract verifies the fingerprint carries the raw query and request headers
func TestExtract(t *testing.T) {
	x := httpdelivery.NewFingerprintExtractor(nil)
	req := httptest.NewRequest("GET", "/?a=1&b=%20", nil)
	req.RemoteAddr = "198.51.100.7:555"
	req.Header.Set("User-Agent", "ua")
	req.Header.Set("Referer", "https://ref.example/")

	fp := x.Extract(req)

	assert.Equal(t, "198.51.100.7", fp.IP)
	assert.Equal(t, "ua", fp.UserAgent)
	assert.Equal(t, "https://ref.example/", fp.Referer)
	assert.True(t, fp.HasReferer())
	assert.Equal(t, "a=1&b=%20", fp.RawQuery)
}
