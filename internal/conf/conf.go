// Package conf loads the gateway process configuration. Values come from an
// optional YAML file and are then overridden by GATEWAY_* environment variables.
// The result is built once at startup and treated as read-only afterwards.
package conf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultAllowedParams is the tracking parameter allow-list used when none is configured.
var DefaultAllowedParams = []string{
	"cost",
	"click_id",
	"zoneid",
	"geo",
	"cid",
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"utm_content",
	"utm_term",
	"subid",
}

// DefaultIPHeaders is the client address preference chain. The peer address
// is always the final fallback.
var DefaultIPHeaders = []string{
	"CF-Connecting-IP",
	"X-Real-IP",
	"X-Forwarded-For",
}

type Config struct {
	Server    Server    `yaml:"server"`
	Gateway   Gateway   `yaml:"gateway"`
	Geo       Geo       `yaml:"geo"`
	Audit     Audit     `yaml:"audit"`
	RateLimit RateLimit `yaml:"rate_limit"`
	Log       Log       `yaml:"log"`
}

type Server struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Gateway struct {
	BaseURL       string   `yaml:"base_url"`
	Secret        string   `yaml:"secret"`
	AllowedParams []string `yaml:"allowed_params"`
	// DatacenterPrefixes left nil selects the built-in cloud ranges; an
	// explicit empty list disables range matching (loopback still applies).
	DatacenterPrefixes []string `yaml:"datacenter_prefixes"`
	IPHeaders          []string `yaml:"ip_headers"`
	UAPolicy           string   `yaml:"ua_policy"`
	CombineRule        string   `yaml:"combine_rule"`
	// SignatureLength truncates the hex signature; 0 keeps all 64 characters.
	SignatureLength int `yaml:"signature_length"`
	RedirectStatus  int `yaml:"redirect_status"`
}

type Geo struct {
	Enabled      bool          `yaml:"enabled"`
	Provider     string        `yaml:"provider"`
	DatabasePath string        `yaml:"database_path"`
	Endpoint     string        `yaml:"endpoint"`
	Timeout      time.Duration `yaml:"timeout"`
}

type Audit struct {
	Enabled     bool          `yaml:"enabled"`
	WebhookURL  string        `yaml:"webhook_url"`
	RedisAddr   string        `yaml:"redis_addr"`
	RedisStream string        `yaml:"redis_stream"`
	RedisMaxLen int64         `yaml:"redis_max_len"`
	Dapr        bool          `yaml:"dapr"`
	DaprPubsub  string        `yaml:"dapr_pubsub"`
	DaprTopic   string        `yaml:"dapr_topic"`
	Log         bool          `yaml:"log"`
	MaxInFlight int           `yaml:"max_in_flight"`
	Timeout     time.Duration `yaml:"timeout"`
}

type RateLimit struct {
	// PerMinute is the per-IP request budget; 0 disables limiting.
	PerMinute int `yaml:"per_minute"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns a configuration with every optional value filled in.
// BaseURL and Secret are left empty.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Gateway: Gateway{
			AllowedParams:  append([]string(nil), DefaultAllowedParams...),
			IPHeaders:      append([]string(nil), DefaultIPHeaders...),
			UAPolicy:       "permissive",
			CombineRule:    "and",
			RedirectStatus: 307,
		},
		Geo: Geo{
			Provider: "maxmind",
			Timeout:  300 * time.Millisecond,
		},
		Audit: Audit{
			RedisStream: "gateway:audit",
			RedisMaxLen: 100000,
			DaprPubsub:  "pubsub",
			DaprTopic:   "clicks",
			MaxInFlight: 256,
			Timeout:     2 * time.Second,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path (when non-empty) over the defaults and applies environment overrides.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an injectable environment lookup.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(c, lookup); err != nil {
		return nil, err
	}
	return c, nil
}

type envBinding struct {
	key   string
	apply func(string) error
}

func applyEnv(c *Config, lookup func(string) (string, bool)) error {
	bindings := []envBinding{
		{"GATEWAY_ADDR", setString(&c.Server.Addr)},
		{"GATEWAY_BASE_URL", setString(&c.Gateway.BaseURL)},
		{"GATEWAY_SECRET", setString(&c.Gateway.Secret)},
		{"GATEWAY_ALLOWED_PARAMS", setList(&c.Gateway.AllowedParams)},
		{"GATEWAY_DATACENTER_PREFIXES", setList(&c.Gateway.DatacenterPrefixes)},
		{"GATEWAY_IP_HEADERS", setList(&c.Gateway.IPHeaders)},
		{"GATEWAY_UA_POLICY", setString(&c.Gateway.UAPolicy)},
		{"GATEWAY_COMBINE_RULE", setString(&c.Gateway.CombineRule)},
		{"GATEWAY_SIGNATURE_LENGTH", setInt(&c.Gateway.SignatureLength)},
		{"GATEWAY_REDIRECT_STATUS", setInt(&c.Gateway.RedirectStatus)},
		{"GATEWAY_GEO_ENABLED", setBool(&c.Geo.Enabled)},
		{"GATEWAY_GEO_PROVIDER", setString(&c.Geo.Provider)},
		{"GATEWAY_GEO_DATABASE", setString(&c.Geo.DatabasePath)},
		{"GATEWAY_GEO_ENDPOINT", setString(&c.Geo.Endpoint)},
		{"GATEWAY_GEO_TIMEOUT", setDuration(&c.Geo.Timeout)},
		{"GATEWAY_AUDIT_ENABLED", setBool(&c.Audit.Enabled)},
		{"GATEWAY_AUDIT_WEBHOOK_URL", setString(&c.Audit.WebhookURL)},
		{"GATEWAY_AUDIT_REDIS_ADDR", setString(&c.Audit.RedisAddr)},
		{"GATEWAY_AUDIT_REDIS_STREAM", setString(&c.Audit.RedisStream)},
		{"GATEWAY_AUDIT_DAPR", setBool(&c.Audit.Dapr)},
		{"GATEWAY_AUDIT_DAPR_PUBSUB", setString(&c.Audit.DaprPubsub)},
		{"GATEWAY_AUDIT_DAPR_TOPIC", setString(&c.Audit.DaprTopic)},
		{"GATEWAY_AUDIT_LOG", setBool(&c.Audit.Log)},
		{"GATEWAY_RATE_LIMIT", setInt(&c.RateLimit.PerMinute)},
		{"GATEWAY_LOG_LEVEL", setString(&c.Log.Level)},
		{"GATEWAY_LOG_DEVELOPMENT", setBool(&c.Log.Development)},
	}
	for _, b := range bindings {
		v, ok := lookup(b.key)
		if !ok {
			continue
		}
		if err := b.apply(strings.TrimSpace(v)); err != nil {
			return fmt.Errorf("env %s: %w", b.key, err)
		}
	}
	return nil
}

func setString(dst *string) func(string) error {
	return func(v string) error {
		*dst = v
		return nil
	}
}

func setList(dst *[]string) func(string) error {
	return func(v string) error {
		*dst = SplitList(v)
		return nil
	}
}

func setInt(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func setBool(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func setDuration(dst *time.Duration) func(string) error {
	return func(v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}
}

// SplitList splits a comma separated value, dropping blanks.
func SplitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
