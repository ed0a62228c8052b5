package classifier

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultDatacenterPrefixes covers large cloud and hosting ranges.
var DefaultDatacenterPrefixes = []string{
	// Amazon Web Services
	"3.0.0.0/9",
	"13.32.0.0/12",
	"18.128.0.0/9",
	"52.0.0.0/10",
	"54.64.0.0/11",
	// Google Cloud
	"34.64.0.0/10",
	"35.184.0.0/13",
	// Microsoft Azure
	"20.0.0.0/11",
	"40.74.0.0/15",
	// DigitalOcean
	"104.131.0.0/16",
	"159.65.0.0/16",
	"167.99.0.0/16",
	// Hetzner
	"88.198.0.0/16",
	"95.216.0.0/15",
	// OVH
	"51.68.0.0/16",
	"145.239.0.0/16",
	// Linode
	"45.33.0.0/17",
	"139.162.0.0/16",
}

type cidrBlock struct {
	base uint32
	mask uint32
}

func (b cidrBlock) contains(ip uint32) bool {
	return ip&b.mask == b.base
}

// DatacenterMatcher tests client addresses against literal prefixes and
// IPv4 CIDR blocks. It is read-only after construction.
type DatacenterMatcher struct {
	literals []string
	blocks   []cidrBlock
}

// NewDatacenterMatcher parses entries. An entry containing '/' must be an
// IPv4 CIDR; anything else is matched as a plain string prefix.
func NewDatacenterMatcher(entries []string) (*DatacenterMatcher, error) {
	m := &DatacenterMatcher{}
	for _, raw := range entries {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			m.literals = append(m.literals, entry)
			continue
		}
		block, err := parseCIDR(entry)
		if err != nil {
			return nil, err
		}
		m.blocks = append(m.blocks, block)
	}
	return m, nil
}

// IsDatacenter reports whether ip is loopback or inside a configured range.
func (m *DatacenterMatcher) IsDatacenter(ip string) bool {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return false
	}
	if isLoopback(ip) {
		return true
	}
	for _, prefix := range m.literals {
		if strings.HasPrefix(ip, prefix) {
			return true
		}
	}
	if len(m.blocks) == 0 {
		return false
	}
	addr, ok := ipv4ToUint32(ip)
	if !ok {
		return false
	}
	for _, b := range m.blocks {
		if b.contains(addr) {
			return true
		}
	}
	return false
}

func isLoopback(ip string) bool {
	if ip == "::1" || ip == "localhost" {
		return true
	}
	return strings.HasPrefix(ip, "127.") || strings.HasPrefix(ip, "::ffff:127.")
}

func parseCIDR(s string) (cidrBlock, error) {
	addr, bits, _ := strings.Cut(s, "/")
	base, ok := ipv4ToUint32(addr)
	if !ok {
		return cidrBlock{}, fmt.Errorf("datacenter prefix %q: not an ipv4 address", s)
	}
	n, err := strconv.Atoi(bits)
	if err != nil || n < 0 || n > 32 {
		return cidrBlock{}, fmt.Errorf("datacenter prefix %q: invalid mask", s)
	}
	var mask uint32
	if n > 0 {
		mask = ^uint32(0) << (32 - n)
	}
	return cidrBlock{base: base & mask, mask: mask}, nil
}

// ipv4ToUint32 converts a dotted quad to its big-endian integer form.
// IPv4-mapped IPv6 ("::ffff:a.b.c.d") is accepted.
func ipv4ToUint32(s string) (uint32, bool) {
	s = strings.TrimPrefix(s, "::ffff:")
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, false
	}
	var out uint32
	for _, p := range parts {
		if p == "" || len(p) > 3 {
			return 0, false
		}
		n := 0
		for i := 0; i < len(p); i++ {
			if p[i] < '0' || p[i] > '9' {
				return 0, false
			}
			n = n*10 + int(p[i]-'0')
		}
		if n > 255 {
			return 0, false
		}
		out = out<<8 | uint32(n)
	}
	return out, true
}
