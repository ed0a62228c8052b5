package domain

// DenyReason explains why a request was refused.
type DenyReason string

const (
	ReasonNone          DenyReason = ""
	ReasonBot           DenyReason = "bot"
	ReasonDatacenter    DenyReason = "datacenter"
	ReasonBotDatacenter DenyReason = "bot_datacenter"
	ReasonGeoMismatch   DenyReason = "geo_mismatch"
)

// Verdict is the admit/deny outcome for one request.
type Verdict struct {
	Admitted    bool
	Destination string
	Reason      DenyReason
}

// Admit returns a verdict redirecting to destination.
func Admit(destination string) Verdict {
	return Verdict{Admitted: true, Destination: destination}
}

// Deny returns a terminal verdict.
func Deny(reason DenyReason) Verdict {
	return Verdict{Reason: reason}
}

// Decision returns "admit" or "deny".
func (v Verdict) Decision() string {
	if v.Admitted {
		return "admit"
	}
	return "deny"
}

// Signals are the raw classifier outputs.
type Signals struct {
	IsBot        bool `json:"is_bot"`
	IsDatacenter bool `json:"is_datacenter"`
	// MissingUserAgent is set when an empty User-Agent was judged under the
	// strict policy. It denies on its own under either combine rule.
	MissingUserAgent bool `json:"missing_user_agent,omitempty"`
}
