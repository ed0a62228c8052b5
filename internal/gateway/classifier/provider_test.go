package classifier

import (
	"testing"

	"click-gateway/internal/conf"
	"click-gateway/internal/gateway/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fingerprint(ip, ua string) domain.ClientFingerprint {
	return domain.ClientFingerprint{IP: ip, UserAgent: ua}
}

func TestProvideStrategy_DefaultPrefixes(t *testing.T) {
	s, err := ProvideStrategy(conf.Default())
	require.NoError(t, err)

	sig := s.Classify(fingerprint("34.64.1.1", chromeUA))
	assert.True(t, sig.IsDatacenter)
}

func TestProvideStrategy_ExplicitEmptyPrefixes(t *testing.T) {
	c := conf.Default()
	c.Gateway.DatacenterPrefixes = []string{}

	s, err := ProvideStrategy(c)
	require.NoError(t, err)

	assert.False(t, s.Classify(fingerprint("34.64.1.1", chromeUA)).IsDatacenter)
	assert.True(t, s.Classify(fingerprint("127.0.0.1", chromeUA)).IsDatacenter)
}

func TestProvideStrategy_InvalidConfig(t *testing.T) {
	c := conf.Default()
	c.Gateway.UAPolicy = "paranoid"
	_, err := ProvideStrategy(c)
	assert.Error(t, err)

	c = conf.Default()
	c.Gateway.DatacenterPrefixes = []string{"10.0.0.0/40"}
	_, err = ProvideStrategy(c)
	assert.Error(t, err)
}

func TestProvideGeoGate(t *testing.T) {
	c := conf.Default()
	g, cleanup, err := ProvideGeoGate(c, zap.NewNop())
	require.NoError(t, err)
	cleanup()
	assert.False(t, g.Enabled())

	c.Geo.Enabled = true
	c.Geo.Provider = "http"
	g, cleanup, err = ProvideGeoGate(c, zap.NewNop())
	require.NoError(t, err)
	cleanup()
	assert.True(t, g.Enabled())

	c.Geo.Provider = "maxmind"
	c.Geo.DatabasePath = t.TempDir() + "/missing.mmdb"
	_, _, err = ProvideGeoGate(c, zap.NewNop())
	assert.Error(t, err)

	c.Geo.Provider = "carrier-pigeon"
	_, _, err = ProvideGeoGate(c, zap.NewNop())
	assert.Error(t, err)
}
