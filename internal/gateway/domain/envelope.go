package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// SignedEnvelope is a ParameterSet stamped with a timestamp and nonce and
// carrying the signature computed over its canonical form.
type SignedEnvelope struct {
	Params    *ParameterSet
	Timestamp int64
	Nonce     string
	Sign      string
	Canonical string
}

// Query renders the forwarded parameters followed by ts, nonce and sign.
func (e SignedEnvelope) Query() string {
	var b strings.Builder
	for _, p := range e.Params.Entries() {
		if IsReserved(p.Key) {
			continue
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
		b.WriteByte('&')
	}
	b.WriteString(ParamTimestamp + "=" + strconv.FormatInt(e.Timestamp, 10))
	b.WriteString("&" + ParamNonce + "=" + url.QueryEscape(e.Nonce))
	b.WriteString("&" + ParamSign + "=" + url.QueryEscape(e.Sign))
	return b.String()
}

// AppendQuery joins base and query, using '&' when base already has a query.
func AppendQuery(base, query string) string {
	if query == "" {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
		if strings.HasSuffix(base, "?") || strings.HasSuffix(base, "&") {
			sep = ""
		}
	}
	return base + sep + query
}
