package signing

import (
	"sort"
	"strings"

	"click-gateway/internal/gateway/domain"
)

// Canonicalize sorts params by byte-wise key order and joins them as
// key=value pairs separated by '&'. Keys and values are written raw, without
// URL-encoding. The sign parameter is never part of the canonical form.
func Canonicalize(params []domain.Param) string {
	sorted := make([]domain.Param, 0, len(params))
	for _, p := range params {
		if p.Key == domain.ParamSign {
			continue
		}
		sorted = append(sorted, p)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})

	var b strings.Builder
	for i, p := range sorted {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	return b.String()
}
