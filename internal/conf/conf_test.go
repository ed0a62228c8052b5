package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func mapEnv(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	c, err := LoadWithEnv("", noEnv)
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, DefaultAllowedParams, c.Gateway.AllowedParams)
	assert.Equal(t, DefaultIPHeaders, c.Gateway.IPHeaders)
	assert.Nil(t, c.Gateway.DatacenterPrefixes)
	assert.Equal(t, "and", c.Gateway.CombineRule)
	assert.Equal(t, 307, c.Gateway.RedirectStatus)
	assert.Equal(t, 300*time.Millisecond, c.Geo.Timeout)
	assert.Empty(t, c.Gateway.Secret)
	assert.Empty(t, c.Gateway.BaseURL)
}

func TestDefault_IsolatedSlices(t *testing.T) {
	c := Default()
	c.Gateway.AllowedParams[0] = "changed"
	assert.Equal(t, "cost", DefaultAllowedParams[0])
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
  read_timeout: 2s
gateway:
  base_url: https://track.example/go
  secret: file-secret-0123456789
  allowed_params: [click_id, zoneid]
  datacenter_prefixes: []
  combine_rule: or
geo:
  enabled: true
  provider: http
  timeout: 150ms
audit:
  enabled: true
  redis_addr: localhost:6379
`), 0o600))

	c, err := LoadWithEnv(path, noEnv)
	require.NoError(t, err)

	assert.Equal(t, ":9090", c.Server.Addr)
	assert.Equal(t, 2*time.Second, c.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, c.Server.WriteTimeout, "unset values keep defaults")
	assert.Equal(t, "https://track.example/go", c.Gateway.BaseURL)
	assert.Equal(t, []string{"click_id", "zoneid"}, c.Gateway.AllowedParams)
	assert.NotNil(t, c.Gateway.DatacenterPrefixes)
	assert.Empty(t, c.Gateway.DatacenterPrefixes)
	assert.Equal(t, "or", c.Gateway.CombineRule)
	assert.True(t, c.Geo.Enabled)
	assert.Equal(t, 150*time.Millisecond, c.Geo.Timeout)
	assert.Equal(t, "localhost:6379", c.Audit.RedisAddr)
	assert.Equal(t, "gateway:audit", c.Audit.RedisStream)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gateway:\n  secret: from-file-0123456789\n"), 0o600))

	c, err := LoadWithEnv(path, mapEnv(map[string]string{
		"GATEWAY_SECRET":              "from-env-0123456789",
		"GATEWAY_ALLOWED_PARAMS":      " click_id, ,cost ",
		"GATEWAY_DATACENTER_PREFIXES": "10.0.0.0/8,192.168.",
		"GATEWAY_SIGNATURE_LENGTH":    "32",
		"GATEWAY_GEO_TIMEOUT":         "100ms",
		"GATEWAY_AUDIT_LOG":           "true",
		"GATEWAY_RATE_LIMIT":          "600",
	}))
	require.NoError(t, err)

	assert.Equal(t, "from-env-0123456789", c.Gateway.Secret)
	assert.Equal(t, []string{"click_id", "cost"}, c.Gateway.AllowedParams)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168."}, c.Gateway.DatacenterPrefixes)
	assert.Equal(t, 32, c.Gateway.SignatureLength)
	assert.Equal(t, 100*time.Millisecond, c.Geo.Timeout)
	assert.True(t, c.Audit.Log)
	assert.Equal(t, 600, c.RateLimit.PerMinute)
}

func TestLoad_Errors(t *testing.T) {
	_, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"), noEnv)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("server: [unclosed"), 0o600))
	_, err = LoadWithEnv(bad, noEnv)
	assert.Error(t, err)

	_, err = LoadWithEnv("", mapEnv(map[string]string{"GATEWAY_RATE_LIMIT": "lots"}))
	assert.ErrorContains(t, err, "GATEWAY_RATE_LIMIT")

	_, err = LoadWithEnv("", mapEnv(map[string]string{"GATEWAY_AUDIT_ENABLED": "maybe"}))
	assert.ErrorContains(t, err, "GATEWAY_AUDIT_ENABLED")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a ,, b,"))
}
