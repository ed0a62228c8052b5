package signing

import (
	"crypto/hmac"
	"errors"
	"net/url"
	"strconv"
	"time"

	"click-gateway/internal/gateway/domain"
)

var (
	ErrMissingSignature = errors.New("signature missing")
	ErrBadSignature     = errors.New("signature mismatch")
	ErrStaleTimestamp   = errors.New("timestamp outside accepted window")
)

// Verify checks a signed query the way a downstream tracker would: it
// rebuilds the canonical form from every parameter except sign, compares
// signatures in constant time and rejects timestamps further than maxSkew
// from now. A zero maxSkew disables the freshness check. Parameters that the
// gateway did not sign (for example ones already present in the base URL)
// must be removed by the caller first.
func (s *Signer) Verify(values url.Values, maxSkew time.Duration, now time.Time) error {
	got := values.Get(domain.ParamSign)
	if got == "" {
		return ErrMissingSignature
	}

	params := make([]domain.Param, 0, len(values))
	for k, vs := range values {
		if k == domain.ParamSign || len(vs) == 0 {
			continue
		}
		params = append(params, domain.Param{Key: k, Value: vs[len(vs)-1]})
	}
	want := s.Compute(Canonicalize(params))
	if !hmac.Equal([]byte(got), []byte(want)) {
		return ErrBadSignature
	}

	if maxSkew > 0 {
		ts, err := strconv.ParseInt(values.Get(domain.ParamTimestamp), 10, 64)
		if err != nil {
			return ErrStaleTimestamp
		}
		skew := now.Sub(time.Unix(ts, 0))
		if skew < 0 {
			skew = -skew
		}
		if skew > maxSkew {
			return ErrStaleTimestamp
		}
	}
	return nil
}
