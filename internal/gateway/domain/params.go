package domain

import (
	"net/url"
	"strings"
)

// Reserved parameter names are generated by the signer and never forwarded
// from the inbound query.
const (
	ParamTimestamp = "ts"
	ParamNonce     = "nonce"
	ParamSign      = "sign"
)

// Well-known tracking parameters.
const (
	ParamClickID  = "click_id"
	ParamZoneID   = "zoneid"
	ParamCampaign = "cid"
	ParamGeo      = "geo"
)

// IsReserved reports whether name is produced by the signer.
func IsReserved(name string) bool {
	return name == ParamTimestamp || name == ParamNonce || name == ParamSign
}

// Param is a single name/value pair of a ParameterSet.
type Param struct {
	Key   string
	Value string
}

// ParameterSet is an insertion-ordered mapping of parameter names to values.
// Setting an existing key replaces its value in place, keeping the position
// where the key was first seen.
type ParameterSet struct {
	entries []Param
	index   map[string]int
}

// NewParameterSet returns an empty set.
func NewParameterSet() *ParameterSet {
	return &ParameterSet{index: make(map[string]int)}
}

// Set stores value under key. Last write wins.
func (p *ParameterSet) Set(key, value string) {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if i, ok := p.index[key]; ok {
		p.entries[i].Value = value
		return
	}
	p.index[key] = len(p.entries)
	p.entries = append(p.entries, Param{Key: key, Value: value})
}

// Get returns the value stored under key.
func (p *ParameterSet) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	i, ok := p.index[key]
	if !ok {
		return "", false
	}
	return p.entries[i].Value, true
}

// Len returns the number of parameters.
func (p *ParameterSet) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Keys returns the parameter names in first-seen order.
func (p *ParameterSet) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the pairs in first-seen order.
func (p *ParameterSet) Entries() []Param {
	if p == nil {
		return nil
	}
	out := make([]Param, len(p.entries))
	copy(out, p.entries)
	return out
}

// Clone returns an independent copy of the set.
func (p *ParameterSet) Clone() *ParameterSet {
	c := NewParameterSet()
	if p == nil {
		return c
	}
	for _, e := range p.entries {
		c.Set(e.Key, e.Value)
	}
	return c
}

// Encode serializes the set as a URL query string in first-seen order.
func (p *ParameterSet) Encode() string {
	if p.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, e := range p.entries {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(e.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(e.Value))
	}
	return b.String()
}
