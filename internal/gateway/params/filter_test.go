package params

import (
	"strings"
	"testing"

	"click-gateway/internal/gateway/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAllowList(t *testing.T) {
	a := NewAllowList([]string{" click_id ", "", "zoneid", "click_id", "sign", "ts", "nonce", "cost"})

	assert.Equal(t, []string{"click_id", "zoneid", "cost"}, a.Names())
	assert.True(t, a.Contains("zoneid"))
	assert.False(t, a.Contains("sign"))
	assert.False(t, a.Contains(""))
}

func TestFilter_KeepsOnlyAllowedKeys(t *testing.T) {
	allow := NewAllowList([]string{"click_id", "zoneid", "cost"})

	got := Filter("?click_id=abc123&zoneid=5&evil=1&cost=2.50", allow)

	assert.Equal(t, []string{"click_id", "zoneid", "cost"}, got.Keys())
	v, _ := got.Get("cost")
	assert.Equal(t, "2.50", v)
	for _, k := range got.Keys() {
		assert.True(t, allow.Contains(k), "key %q escaped the allow-list", k)
	}
}

func TestFilter_DropsReservedNames(t *testing.T) {
	allow := NewAllowList([]string{"click_id", "sign", "ts", "nonce"})

	got := Filter("click_id=a&sign=forged&ts=1&nonce=x", allow)

	assert.Equal(t, []string{"click_id"}, got.Keys())
}

func TestFilter_EdgeCases(t *testing.T) {
	allow := NewAllowList([]string{"a", "b", "c"})

	tests := []struct {
		name string
		raw  string
		want []domain.Param
	}{
		{"empty query", "", nil},
		{"only question mark", "?", nil},
		{"empty value dropped", "a=&b=1", []domain.Param{{Key: "b", Value: "1"}}},
		{"bare key dropped", "a&b=1", []domain.Param{{Key: "b", Value: "1"}}},
		{"malformed escape dropped", "a=%zz&b=%41", []domain.Param{{Key: "b", Value: "A"}}},
		{"last write wins", "a=1&b=2&a=3", []domain.Param{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}},
		{"plus decodes to space", "c=hello+world", []domain.Param{{Key: "c", Value: "hello world"}}},
		{"empty pairs skipped", "&&a=1&&", []domain.Param{{Key: "a", Value: "1"}}},
		{"encoded key", "%61=1", []domain.Param{{Key: "a", Value: "1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.raw, allow)
			if tt.want == nil {
				assert.Equal(t, 0, got.Len())
				return
			}
			assert.Equal(t, tt.want, got.Entries())
		})
	}
}

func TestFilter_DropsOversizedValues(t *testing.T) {
	allow := NewAllowList([]string{"a", "b"})
	long := strings.Repeat("x", MaxValueLength+1)
	fits := strings.Repeat("y", MaxValueLength)

	got := Filter("a="+long+"&b="+fits, allow)

	assert.Equal(t, []string{"b"}, got.Keys())
}

func TestFilter_Idempotent(t *testing.T) {
	allow := NewAllowList([]string{"click_id", "zoneid", "utm_campaign"})
	raws := []string{
		"click_id=abc123&zoneid=5&evil=1",
		"utm_campaign=spring%20sale%26more&click_id=%E2%9C%93",
		"zoneid=1&zoneid=2&sign=x",
	}
	for _, raw := range raws {
		once := Filter(raw, allow)
		twice := Filter(once.Encode(), allow)
		require.Equal(t, once.Entries(), twice.Entries(), raw)
	}
}

func TestFilter_EmptyAllowList(t *testing.T) {
	got := Filter("click_id=abc", NewAllowList(nil))
	assert.Equal(t, 0, got.Len())
}
