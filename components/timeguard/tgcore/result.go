package tgcore

import "time"

// VerificationResult is delivered exactly once per verification.
type VerificationResult struct {
	// Success is true if Time can be trusted.
	Success bool

	// Time is the verified timestamp, or the local time on failure.
	Time time.Time

	// Outcome is the terminal state of the verification.
	Outcome Outcome

	// Message is a user facing message associated with Outcome.
	Message string

	// Drift is the difference between the kernel derived time and the local
	// time, set on OutcomeCorrectedSuccessfully.
	Drift time.Duration

	// Err carries diagnostic details for failed outcomes.
	Err error
}

func newResult(ts time.Time, outcome Outcome, err error) VerificationResult {
	return VerificationResult{
		Success: outcome.Success(),
		Time:    ts,
		Outcome: outcome,
		Message: outcome.Message(),
		Err:     err,
	}
}
