// Package params projects inbound query strings onto the tracking parameter
// allow-list.
package params

import (
	"net/url"
	"strings"

	"click-gateway/internal/gateway/domain"

	"github.com/samber/lo"
)

// MaxValueLength drops oversized values instead of forwarding them.
const MaxValueLength = 512

// AllowList is an immutable set of forwardable parameter names.
type AllowList struct {
	names map[string]struct{}
	order []string
}

// NewAllowList builds an allow-list. Blank, duplicate and reserved names
// (ts, nonce, sign) are dropped.
func NewAllowList(names []string) AllowList {
	cleaned := lo.Uniq(lo.FilterMap(names, func(n string, _ int) (string, bool) {
		n = strings.TrimSpace(n)
		return n, n != "" && !domain.IsReserved(n)
	}))
	set := make(map[string]struct{}, len(cleaned))
	for _, n := range cleaned {
		set[n] = struct{}{}
	}
	return AllowList{names: set, order: cleaned}
}

// Contains reports whether name may be forwarded.
func (a AllowList) Contains(name string) bool {
	_, ok := a.names[name]
	return ok
}

// Names returns the allowed names in configuration order.
func (a AllowList) Names() []string {
	return append([]string(nil), a.order...)
}

// Filter parses rawQuery once and keeps allow-listed, non-empty values.
// Pairs that fail to decode are dropped. The result keeps first-seen key
// order with last-write-wins values.
func Filter(rawQuery string, allow AllowList) *domain.ParameterSet {
	out := domain.NewParameterSet()
	rawQuery = strings.TrimPrefix(rawQuery, "?")
	for rawQuery != "" {
		var pair string
		pair, rawQuery, _ = strings.Cut(rawQuery, "&")
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil || !allow.Contains(key) {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil || value == "" || len(value) > MaxValueLength {
			continue
		}
		out.Set(key, value)
	}
	return out
}
