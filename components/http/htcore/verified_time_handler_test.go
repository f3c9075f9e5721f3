package htcore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/clock-guard/components/timeguard/tgcore"
)

type testVerifier struct {
	res tgcore.VerificationResult
}

func (v *testVerifier) VerifyTime(_ context.Context) tgcore.VerificationResult {
	return v.res
}

func TestVerifiedTimeHandler(t *testing.T) {
	now := testNow()

	handler := NewVerifiedTimeHandler(&testVerifier{
		res: tgcore.VerificationResult{
			Success: true,
			Time:    now,
			Outcome: tgcore.OutcomeCorrectedSuccessfully,
			Message: tgcore.OutcomeCorrectedSuccessfully.Message(),
			Drift:   time.Second * 90,
		},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/time/verified", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp VerifiedTimeResponse
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, now.Unix(), resp.Timestamp)
	require.Equal(t, "2024-05-01T10:00:00Z", resp.Time)
	require.Equal(t, "corrected", resp.Outcome)
	require.Equal(t, float64(90), resp.Drift)
}

func TestVerifiedTimeHandlerFailure(t *testing.T) {
	handler := NewVerifiedTimeHandler(&testVerifier{
		res: tgcore.VerificationResult{
			Time:    testNow(),
			Outcome: tgcore.OutcomeServerError,
			Message: tgcore.OutcomeServerError.Message(),
		},
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp VerifiedTimeResponse
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "server-error", resp.Outcome)
	require.Equal(t, tgcore.OutcomeServerError.Message(), resp.Message)
}

func TestVerifiedTimeHandlerUnsupportedMethod(t *testing.T) {
	handler := NewVerifiedTimeHandler(&testVerifier{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
