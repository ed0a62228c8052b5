package classifier

import (
	"context"
	"net"

	"click-gateway/internal/gateway/domain"

	geoip2 "github.com/oschwald/geoip2-golang"
)

// Compile-time interface check
var _ GeoResolver = (*MaxMindResolver)(nil)

// MaxMindResolver resolves IP addresses using a local GeoIP2/GeoLite2 database.
type MaxMindResolver struct {
	db *geoip2.Reader
}

// NewMaxMindResolver opens the database at dbPath.
// Returns error if the database file cannot be opened or is corrupt.
func NewMaxMindResolver(dbPath string) (*MaxMindResolver, error) {
	db, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return &MaxMindResolver{db: db}, nil
}

// Close closes the database reader.
func (m *MaxMindResolver) Close() error {
	return m.db.Close()
}

// ResolveCountry returns the ISO country code for ip.
func (m *MaxMindResolver) ResolveCountry(_ context.Context, ipStr string) (string, error) {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return "", domain.ErrGeoUnknown
	}

	record, err := m.db.Country(ip)
	if err != nil {
		return "", err
	}

	if record.Country.IsoCode == "" {
		return "", domain.ErrGeoUnknown
	}

	return record.Country.IsoCode, nil
}
