package http

import (
	"context"
	"errors"
	"net/http"

	"click-gateway/internal/gateway/domain"
	"click-gateway/internal/gateway/usecase"
	"click-gateway/pkg/problemdetails"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// DefaultRedirectStatus is used when the configured status is not a redirect.
const DefaultRedirectStatus = http.StatusTemporaryRedirect

// Engine decides the fate of one request.
type Engine interface {
	Decide(ctx context.Context, fp domain.ClientFingerprint, requestID string) (usecase.Decision, error)
	ConfigErr() error
}

// Compile-time interface check
var _ Engine = (*usecase.DecisionEngine)(nil)

// Handler handles inbound click requests.
type Handler struct {
	engine         Engine
	extractor      *FingerprintExtractor
	redirectStatus int
	logger         *zap.Logger
}

// NewHandler creates a new Handler
func NewHandler(engine Engine, extractor *FingerprintExtractor, redirectStatus int, logger *zap.Logger) *Handler {
	if !isRedirectStatus(redirectStatus) {
		redirectStatus = DefaultRedirectStatus
	}
	return &Handler{
		engine:         engine,
		extractor:      extractor,
		redirectStatus: redirectStatus,
		logger:         logger,
	}
}

func isRedirectStatus(code int) bool {
	switch code {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

// Redirect handles GET / and GET /api/redirect
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	fp := h.extractor.Extract(r)

	decision, err := h.engine.Decide(r.Context(), fp, middleware.GetReqID(r.Context()))
	if err != nil {
		if errors.Is(err, domain.ErrMisconfigured) {
			problem := problemdetails.New(
				http.StatusInternalServerError,
				problemdetails.TypeMisconfigured,
				"Server Misconfigured",
				"The gateway is not configured",
			)
			writeProblem(w, problem)
			return
		}

		// Other errors
		h.logger.Error("decision failed", zap.Error(err))
		problem := problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Internal server error",
		)
		writeProblem(w, problem)
		return
	}

	if !decision.Verdict.Admitted {
		h.logger.Debug("request denied",
			zap.String("ip", fp.IP),
			zap.String("reason", string(decision.Verdict.Reason)),
		)
		problem := problemdetails.New(
			http.StatusForbidden,
			problemdetails.TypeForbidden,
			"Forbidden",
			"",
		)
		writeProblem(w, problem)
		return
	}

	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.Header().Set("Referrer-Policy", "origin")
	http.Redirect(w, r, decision.Verdict.Destination, h.redirectStatus)
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Healthz handles GET /healthz (liveness probe)
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}
	writeJSON(w, http.StatusOK, resp)
}

// Readyz handles GET /readyz (readiness probe)
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.ConfigErr(); err != nil {
		resp := HealthResponse{
			Status: "unavailable",
			Reason: err.Error(),
		}
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp := HealthResponse{Status: "ready"}
	writeJSON(w, http.StatusOK, resp)
}
