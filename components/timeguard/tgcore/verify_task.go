package tgcore

import (
	"context"
	"fmt"

	"github.com/open-control-systems/clock-guard/components/status"
)

// TimeVerifier verifies the local time.
type TimeVerifier interface {
	// VerifyTime synchronously verifies the local time.
	VerifyTime(ctx context.Context) VerificationResult
}

// VerifyTask runs a single time verification per Run() call.
type VerifyTask struct {
	ctx      context.Context
	verifier TimeVerifier
}

// NewVerifyTask is an initialization of VerifyTask.
func NewVerifyTask(ctx context.Context, verifier TimeVerifier) *VerifyTask {
	return &VerifyTask{
		ctx:      ctx,
		verifier: verifier,
	}
}

// Run verifies the local time, an error is returned if the time can't be trusted.
func (t *VerifyTask) Run() error {
	res := t.verifier.VerifyTime(t.ctx)
	if res.Success {
		return nil
	}

	if res.Err != nil {
		return fmt.Errorf("time verification failed: outcome=%s: %w", res.Outcome, res.Err)
	}

	return fmt.Errorf("time verification failed: outcome=%s: %w", res.Outcome, status.StatusError)
}
