package tgcore

import "time"

const (
	// ActualBootTimeKey is a store key of the drift adjusted boot time.
	ActualBootTimeKey = "actualBootTimeInterval"

	// DefaultBootTimeKey is a store key of the boot time observed on the last
	// successful verification.
	DefaultBootTimeKey = "defaultBootTimeInterval"

	// TimezoneQueryParam is a query parameter carrying the IANA zone identifier.
	TimezoneQueryParam = "timezone"

	// DefaultBootTimeTolerance is an allowed difference between the persisted
	// and the current kernel boot time.
	DefaultBootTimeTolerance = time.Second * 30

	// DefaultServerTolerance is an allowed difference between the server and
	// the local time, compared in whole minutes.
	DefaultServerTolerance = time.Minute * 2
)

// Params provides various configuration options for Checker.
type Params struct {
	// BootTimeTolerance - how far the kernel boot time may move before the
	// clock is considered tampered.
	BootTimeTolerance time.Duration

	// ServerTolerance - how far the server time may differ from the local time,
	// truncated to whole minutes.
	ServerTolerance time.Duration

	// Timezone - IANA identifier sent to the time server and used to interpret
	// its reply, e.g. "Asia/Kathmandu".
	Timezone string
}

// DefaultParams returns Params with the default tolerances and UTC time zone.
func DefaultParams() Params {
	return Params{
		BootTimeTolerance: DefaultBootTimeTolerance,
		ServerTolerance:   DefaultServerTolerance,
		Timezone:          "UTC",
	}
}
