package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"click-gateway/internal/gateway/domain"
)

// DefaultGeoAPIEndpoint is an ip-api.com compatible lookup URL; "{ip}" is
// replaced by the client address.
const DefaultGeoAPIEndpoint = "http://ip-api.com/json/{ip}?fields=status,countryCode"

// Compile-time interface check
var _ GeoResolver = (*HTTPResolver)(nil)

// HTTPResolver asks a JSON geo API for the client's country.
type HTTPResolver struct {
	endpoint string
	client   *http.Client
}

// NewHTTPResolver creates a resolver. The caller's context bounds each call.
func NewHTTPResolver(endpoint string, client *http.Client) *HTTPResolver {
	if endpoint == "" {
		endpoint = DefaultGeoAPIEndpoint
	}
	if client == nil {
		client = &http.Client{Timeout: MaxGeoTimeout}
	}
	return &HTTPResolver{endpoint: endpoint, client: client}
}

type geoAPIResponse struct {
	Status      string `json:"status"`
	CountryCode string `json:"countryCode"`
}

// ResolveCountry implements GeoResolver.
func (r *HTTPResolver) ResolveCountry(ctx context.Context, ip string) (string, error) {
	target := strings.ReplaceAll(r.endpoint, "{ip}", url.PathEscape(ip))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("create geo request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("geo api status %d", resp.StatusCode)
	}

	var body geoAPIResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err != nil {
		return "", fmt.Errorf("decode geo response: %w", err)
	}
	if body.Status != "" && body.Status != "success" {
		return "", domain.ErrGeoUnknown
	}
	if body.CountryCode == "" {
		return "", domain.ErrGeoUnknown
	}
	return body.CountryCode, nil
}
