// Package signing stamps forwarded parameters with a timestamp and nonce and
// signs their canonical form with HMAC-SHA256.
//
// Truncating the signature shortens outgoing URLs at the cost of forgery
// resistance: a 16 character signature leaves 64 bits for an attacker to
// guess. The default keeps the full 64 hex characters.
package signing

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"time"

	"click-gateway/internal/gateway/domain"
)

const (
	// MinSecretLength is the shortest secret the signer accepts.
	MinSecretLength = 16
	// FullSignatureLength is the length of an untruncated hex signature.
	FullSignatureLength = sha256.Size * 2
	// MinSignatureLength is the shortest allowed truncation.
	MinSignatureLength = 16
)

// Option configures a Signer.
type Option func(*Signer)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) { s.now = now }
}

// WithRandom overrides the nonce entropy source.
func WithRandom(r io.Reader) Option {
	return func(s *Signer) { s.random = r }
}

// WithSignatureLength truncates signatures to n hex characters; 0 keeps the full length.
func WithSignatureLength(n int) Option {
	return func(s *Signer) { s.length = n }
}

// Signer is safe for concurrent use; it holds only read-only state.
type Signer struct {
	secret []byte
	length int
	now    func() time.Time
	random io.Reader
}

// NewSigner refuses to build a signer around a missing or short secret.
func NewSigner(secret string, opts ...Option) (*Signer, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: need at least %d bytes", domain.ErrWeakSecret, MinSecretLength)
	}
	s := &Signer{
		secret: []byte(secret),
		length: FullSignatureLength,
		now:    time.Now,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.length == 0 {
		s.length = FullSignatureLength
	}
	if s.length < MinSignatureLength || s.length > FullSignatureLength || s.length%2 != 0 {
		return nil, fmt.Errorf("signature length %d: must be even and between %d and %d",
			s.length, MinSignatureLength, FullSignatureLength)
	}
	return s, nil
}

// Sign stamps a copy of params with ts and nonce and signs it.
func (s *Signer) Sign(params *domain.ParameterSet) (domain.SignedEnvelope, error) {
	nonce, err := NewNonce(s.random)
	if err != nil {
		return domain.SignedEnvelope{}, err
	}
	return s.SignAt(params, s.now().Unix(), nonce), nil
}

// SignAt signs params with a caller supplied timestamp and nonce.
func (s *Signer) SignAt(params *domain.ParameterSet, ts int64, nonce string) domain.SignedEnvelope {
	stamped := params.Clone()
	stamped.Set(domain.ParamTimestamp, strconv.FormatInt(ts, 10))
	stamped.Set(domain.ParamNonce, nonce)

	canonical := Canonicalize(stamped.Entries())
	return domain.SignedEnvelope{
		Params:    stamped,
		Timestamp: ts,
		Nonce:     nonce,
		Sign:      s.Compute(canonical),
		Canonical: canonical,
	}
}

// Compute returns the lowercase hex HMAC-SHA256 of canonical, truncated to
// the configured length.
func (s *Signer) Compute(canonical string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))[:s.length]
}
