package htcore

import (
	"net/http"
	"time"

	"github.com/open-control-systems/clock-guard/components/timeguard/tgcore"
)

// VerifiedTimeResponse is a JSON representation of the verification result.
type VerifiedTimeResponse struct {
	Success   bool    `json:"success"`
	Timestamp int64   `json:"timestamp"`
	Time      string  `json:"time"`
	Outcome   string  `json:"outcome"`
	Message   string  `json:"message"`
	Drift     float64 `json:"drift_seconds"`
}

// VerifiedTimeHandler runs the time verification on each request.
//
// Remarks:
//   - Requests are serialized, so concurrent requests never race on the baseline.
type VerifiedTimeHandler struct {
	verifier tgcore.TimeVerifier
	sem      chan struct{}
}

// NewVerifiedTimeHandler creates an HTTP handler for the local time verification.
func NewVerifiedTimeHandler(verifier tgcore.TimeVerifier) *VerifiedTimeHandler {
	return &VerifiedTimeHandler{
		verifier: verifier,
		sem:      make(chan struct{}, 1),
	}
}

// ServeHTTP implements an HTTP endpoint logic.
func (h *VerifiedTimeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "error: unsupported method", http.StatusMethodNotAllowed)

		return
	}

	select {
	case h.sem <- struct{}{}:
	case <-r.Context().Done():
		return
	}
	res := h.verifier.VerifyTime(r.Context())
	<-h.sem

	WriteJSON(w, VerifiedTimeResponse{
		Success:   res.Success,
		Timestamp: res.Time.Unix(),
		Time:      res.Time.Format(time.RFC3339),
		Outcome:   res.Outcome.String(),
		Message:   res.Message,
		Drift:     res.Drift.Seconds(),
	})
}
