package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"click-gateway/internal/gateway/classifier"
	"click-gateway/internal/gateway/domain"
	"click-gateway/internal/gateway/params"
	"click-gateway/internal/gateway/signing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is a step of the per-request decision machine.
type State int

const (
	StateStart State = iota
	StateClassified
	StateDenied
	StateFiltered
	StateSigned
	StateRedirecting
	StateMisconfigured
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateClassified:
		return "classified"
	case StateDenied:
		return "denied"
	case StateFiltered:
		return "filtered"
	case StateSigned:
		return "signed"
	case StateRedirecting:
		return "redirecting"
	case StateMisconfigured:
		return "misconfigured"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateDenied || s == StateRedirecting || s == StateMisconfigured
}

// Decision is the outcome of one run of the machine.
type Decision struct {
	State    State
	Verdict  domain.Verdict
	Signals  domain.Signals
	Country  string
	Params   *domain.ParameterSet
	Envelope domain.SignedEnvelope
}

// Emitter receives audit events; it must not block.
type Emitter interface {
	Emit(event domain.AuditEvent)
}

// EngineConfig is the immutable configuration of a DecisionEngine.
type EngineConfig struct {
	BaseURL         string
	Secret          string
	AllowedParams   []string
	CombineRule     classifier.CombineRule
	SignatureLength int
}

// DecisionEngine runs classification, filtering and signing for each request.
// It holds no per-request state and is safe for concurrent use.
type DecisionEngine struct {
	classifier classifier.Strategy
	rule       classifier.CombineRule
	geo        *classifier.GeoGate
	allow      params.AllowList
	signer     *signing.Signer
	baseURL    string
	emitter    Emitter
	logger     *zap.Logger
	now        func() time.Time
	configErr  error
}

// EngineOption customises a DecisionEngine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	signerOpts []signing.Option
	now        func() time.Time
}

// WithSignerOptions passes options through to the signer.
func WithSignerOptions(opts ...signing.Option) EngineOption {
	return func(o *engineOptions) { o.signerOpts = append(o.signerOpts, opts...) }
}

// WithEngineClock overrides the clock used for audit timestamps.
func WithEngineClock(now func() time.Time) EngineOption {
	return func(o *engineOptions) { o.now = now }
}

// NewDecisionEngine validates cfg. A missing base URL or weak secret does not
// fail construction: the error is logged once and every Decide call then
// returns ErrMisconfigured.
func NewDecisionEngine(
	cfg EngineConfig,
	strategy classifier.Strategy,
	geo *classifier.GeoGate,
	emitter Emitter,
	logger *zap.Logger,
	opts ...EngineOption,
) *DecisionEngine {
	o := engineOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if cfg.SignatureLength != 0 {
		o.signerOpts = append(o.signerOpts, signing.WithSignatureLength(cfg.SignatureLength))
	}

	e := &DecisionEngine{
		classifier: strategy,
		rule:       cfg.CombineRule,
		geo:        geo,
		allow:      params.NewAllowList(cfg.AllowedParams),
		emitter:    emitter,
		logger:     logger,
		now:        o.now,
	}
	if e.rule == "" {
		e.rule = classifier.CombineAnd
	}

	var errs []error
	baseURL, err := validateBaseURL(cfg.BaseURL)
	if err != nil {
		errs = append(errs, err)
	}
	e.baseURL = baseURL

	signer, err := signing.NewSigner(cfg.Secret, o.signerOpts...)
	if err != nil {
		errs = append(errs, err)
	}
	e.signer = signer

	if len(errs) > 0 {
		e.configErr = fmt.Errorf("%w: %w", domain.ErrMisconfigured, errors.Join(errs...))
		logger.Error("gateway is misconfigured, every request will fail until fixed", zap.Error(e.configErr))
	}
	return e
}

func validateBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.ErrMissingBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidBaseURL, raw)
	}
	return raw, nil
}

// ConfigErr returns the configuration problem, if any.
func (e *DecisionEngine) ConfigErr() error {
	return e.configErr
}

// AllowList exposes the effective allow-list.
func (e *DecisionEngine) AllowList() params.AllowList {
	return e.allow
}

// Decide runs the machine Start → Classified → {Denied | Filtered → Signed → Redirecting}.
// requestID is only used to correlate audit events.
func (e *DecisionEngine) Decide(ctx context.Context, fp domain.ClientFingerprint, requestID string) (Decision, error) {
	d := Decision{State: StateStart}
	if e.configErr != nil {
		d.State = StateMisconfigured
		return d, e.configErr
	}

	// Classified
	d.Signals = e.classifier.Classify(fp)
	d.State = StateClassified
	if reason := e.rule.Evaluate(d.Signals); reason != domain.ReasonNone {
		return e.deny(d, fp, requestID, reason), nil
	}

	// Filtered
	d.Params = params.Filter(fp.RawQuery, e.allow)
	d.State = StateFiltered

	if e.geo.Enabled() {
		expected, _ := d.Params.Get(domain.ParamGeo)
		geo := e.geo.Check(ctx, fp.IP, expected)
		d.Country = geo.Country
		if reason := classifier.GeoDenyReason(geo); reason != domain.ReasonNone {
			return e.deny(d, fp, requestID, reason), nil
		}
	}

	// Signed
	envelope, err := e.signer.Sign(d.Params)
	if err != nil {
		// Fall back to the bare destination: nothing is forwarded unsigned.
		e.logger.Error("failed to sign parameters, redirecting without parameters", zap.Error(err))
		d.Params = domain.NewParameterSet()
		d.Verdict = domain.Admit(e.baseURL)
		d.State = StateRedirecting
		e.emit(d, fp, requestID)
		return d, nil
	}
	d.Envelope = envelope
	d.State = StateSigned

	// Redirecting
	d.Verdict = domain.Admit(domain.AppendQuery(e.baseURL, envelope.Query()))
	d.State = StateRedirecting
	e.emit(d, fp, requestID)
	return d, nil
}

func (e *DecisionEngine) deny(d Decision, fp domain.ClientFingerprint, requestID string, reason domain.DenyReason) Decision {
	d.Verdict = domain.Deny(reason)
	d.State = StateDenied
	e.emit(d, fp, requestID)
	return d
}

func (e *DecisionEngine) emit(d Decision, fp domain.ClientFingerprint, requestID string) {
	if e.emitter == nil {
		return
	}
	event := domain.AuditEvent{
		ID:           uuid.NewString(),
		Timestamp:    e.now().UTC(),
		RequestID:    requestID,
		IP:           fp.IP,
		UserAgent:    fp.UserAgent,
		Referer:      fp.Referer,
		Decision:     d.Verdict.Decision(),
		Reason:       string(d.Verdict.Reason),
		IsBot:        d.Signals.IsBot,
		IsDatacenter: d.Signals.IsDatacenter,
		Country:      d.Country,
	}
	if d.Params != nil {
		event.ClickID, _ = d.Params.Get(domain.ParamClickID)
		event.ZoneID, _ = d.Params.Get(domain.ParamZoneID)
		event.CampaignID, _ = d.Params.Get(domain.ParamCampaign)
	}
	if d.State == StateRedirecting && d.Envelope.Sign != "" {
		event.Nonce = d.Envelope.Nonce
		event.SignedAt = d.Envelope.Timestamp
	}
	e.emitter.Emit(event)
}
