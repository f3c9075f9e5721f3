package tgcore

// Outcome is a terminal state of a single time verification.
type Outcome int

const (
	// OutcomeUnaltered means the boot time matches the baseline, local time is trusted.
	OutcomeUnaltered Outcome = iota

	// OutcomeCorrectedSuccessfully means the time server confirmed the local
	// time and the baseline was updated.
	OutcomeCorrectedSuccessfully

	// OutcomeServerError means the time server couldn't be reached or replied
	// with a non-2xx status.
	OutcomeServerError

	// OutcomeParsingError means the time server reply couldn't be decoded.
	OutcomeParsingError

	// OutcomeClockStillInconsistent means the time server disagrees with the
	// local time by more than the server tolerance.
	OutcomeClockStillInconsistent

	// OutcomeSmallTimeDifference is reserved for an inconsistency below the
	// tolerance that shouldn't be corrected automatically. Not produced by Checker.
	OutcomeSmallTimeDifference

	// OutcomePlatformUnsupported means the kernel boot time isn't available.
	OutcomePlatformUnsupported
)

var outcomeNames = map[Outcome]string{
	OutcomeUnaltered:              "unaltered",
	OutcomeCorrectedSuccessfully:  "corrected",
	OutcomeServerError:            "server-error",
	OutcomeParsingError:           "parsing-error",
	OutcomeClockStillInconsistent: "clock-still-inconsistent",
	OutcomeSmallTimeDifference:    "small-time-difference",
	OutcomePlatformUnsupported:    "platform-unsupported",
}

var outcomeMessages = map[Outcome]string{
	OutcomeUnaltered:              "Date not altered.",
	OutcomeCorrectedSuccessfully:  "Date verified with the time server.",
	OutcomeServerError:            "Server error. Please try again later.",
	OutcomeParsingError:           "Couldn't read data from server. Please try again later.",
	OutcomeClockStillInconsistent: "System date was changed. Enable automatic date and time in the system settings.",
	OutcomeSmallTimeDifference:    "Please contact your system administrator.",
	OutcomePlatformUnsupported:    "Kernel boot time isn't available on this platform.",
}

// String returns a stable machine readable outcome name.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}

	return "unknown"
}

// Message returns a user facing remediation message.
func (o Outcome) Message() string {
	return outcomeMessages[o]
}

// Success returns true if the verified timestamp can be trusted.
func (o Outcome) Success() bool {
	return o == OutcomeUnaltered || o == OutcomeCorrectedSuccessfully
}
