package http

import (
	"net"
	"net/http"
	"strings"

	"click-gateway/internal/gateway/domain"
)

// FingerprintExtractor derives a ClientFingerprint from request headers.
type FingerprintExtractor struct {
	ipHeaders []string
}

// NewFingerprintExtractor creates an extractor that looks for the client
// address in ipHeaders, in order, before falling back to the peer address.
func NewFingerprintExtractor(ipHeaders []string) *FingerprintExtractor {
	headers := make([]string, 0, len(ipHeaders))
	for _, h := range ipHeaders {
		if h = strings.TrimSpace(h); h != "" {
			headers = append(headers, http.CanonicalHeaderKey(h))
		}
	}
	return &FingerprintExtractor{ipHeaders: headers}
}

// Extract builds the fingerprint for r.
func (x *FingerprintExtractor) Extract(r *http.Request) domain.ClientFingerprint {
	return domain.ClientFingerprint{
		IP:        x.ClientIP(r),
		UserAgent: r.Header.Get("User-Agent"),
		Referer:   r.Header.Get("Referer"),
		RawQuery:  r.URL.RawQuery,
	}
}

// ClientIP returns the first present header value (first entry of a comma
// separated list) or the peer address without its port.
func (x *FingerprintExtractor) ClientIP(r *http.Request) string {
	for _, h := range x.ipHeaders {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		first, _, _ := strings.Cut(v, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	// extract the IP address from what is potentially a host:port format
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}
