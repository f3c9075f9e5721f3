package tgcore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcomeMessages(t *testing.T) {
	outcomes := []Outcome{
		OutcomeUnaltered,
		OutcomeCorrectedSuccessfully,
		OutcomeServerError,
		OutcomeParsingError,
		OutcomeClockStillInconsistent,
		OutcomeSmallTimeDifference,
		OutcomePlatformUnsupported,
	}

	names := make(map[string]bool)

	for _, outcome := range outcomes {
		require.NotEmpty(t, outcome.Message())
		require.NotEqual(t, "unknown", outcome.String())

		names[outcome.String()] = true
	}

	require.Len(t, names, len(outcomes))
	require.Equal(t, "unknown", Outcome(100).String())
}

func TestOutcomeSuccess(t *testing.T) {
	require.True(t, OutcomeUnaltered.Success())
	require.True(t, OutcomeCorrectedSuccessfully.Success())

	require.False(t, OutcomeServerError.Success())
	require.False(t, OutcomeParsingError.Success())
	require.False(t, OutcomeClockStillInconsistent.Success())
	require.False(t, OutcomeSmallTimeDifference.Success())
	require.False(t, OutcomePlatformUnsupported.Success())
}

func TestFanoutOutcomeHandler(t *testing.T) {
	first := &testOutcomeHandler{}
	second := &testOutcomeHandler{}

	fanout := &FanoutOutcomeHandler{}
	fanout.Add(first)
	fanout.Add(&LogOutcomeHandler{})
	fanout.Add(second)

	fanout.HandleOutcome(newResult(testNow(), OutcomeServerError, nil))

	require.Len(t, first.results, 1)
	require.Len(t, second.results, 1)
	require.Equal(t, OutcomeServerError, second.results[0].Outcome)
	require.False(t, second.results[0].Success)
}
