package tgcore

import "github.com/open-control-systems/clock-guard/components/core"

// OutcomeHandler is notified about each verification result.
type OutcomeHandler interface {
	// HandleOutcome handles the verification result.
	HandleOutcome(res VerificationResult)
}

// LogOutcomeHandler logs verification results.
type LogOutcomeHandler struct{}

// HandleOutcome logs successful outcomes as informational events and failed ones
// as warnings.
func (*LogOutcomeHandler) HandleOutcome(res VerificationResult) {
	if res.Success {
		core.LogInf.Printf("time-verifier: outcome=%s time=%v drift=%v\n",
			res.Outcome, res.Time, res.Drift)

		return
	}

	core.LogWrn.Printf("time-verifier: outcome=%s message=%q err=%v\n",
		res.Outcome, res.Message, res.Err)
}

// FanoutOutcomeHandler propagates results to the registered handlers.
type FanoutOutcomeHandler struct {
	handlers []OutcomeHandler
}

// Add registers handler to be notified about each result.
func (h *FanoutOutcomeHandler) Add(handler OutcomeHandler) {
	h.handlers = append(h.handlers, handler)
}

// HandleOutcome propagates res to all registered handlers.
func (h *FanoutOutcomeHandler) HandleOutcome(res VerificationResult) {
	for _, handler := range h.handlers {
		handler.HandleOutcome(res)
	}
}
