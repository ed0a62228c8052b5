package problemdetails

import "fmt"

const (
	TypeForbidden         = "forbidden"
	TypeMisconfigured     = "gateway-misconfigured"
	TypeRateLimitExceeded = "rate-limit-exceeded"
	TypeInternalError     = "internal-error"
	TypeNotFound          = "not-found"
)

// TypeBase prefixes every problem type URI.
const TypeBase = "https://gateway.invalid/problems/"

type ProblemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func New(status int, problemType, title, detail string) *ProblemDetail {
	return &ProblemDetail{
		Type:   fmt.Sprintf("%s%s", TypeBase, problemType),
		Title:  title,
		Status: status,
		Detail: detail,
	}
}
