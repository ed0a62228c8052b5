package domain

// ClientFingerprint holds the request attributes the classifier looks at.
// It is built once per request and never persisted.
type ClientFingerprint struct {
	IP        string
	UserAgent string
	Referer   string
	RawQuery  string
}

// HasReferer reports whether the client sent a non-empty Referer header.
func (f ClientFingerprint) HasReferer() bool {
	return f.Referer != ""
}
