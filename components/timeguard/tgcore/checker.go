package tgcore

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/open-control-systems/clock-guard/components/core"
	"github.com/open-control-systems/clock-guard/components/status"
	"github.com/open-control-systems/clock-guard/components/system/syscore"
)

// ValueStore persists named numeric values.
type ValueStore interface {
	// GetValue returns status.StatusNoData if the value was never set.
	GetValue(key string) (float64, error)

	// SetValue overwrites the value.
	SetValue(key string, value float64) error
}

// Fetcher issues a GET request to the time server.
type Fetcher interface {
	// Fetch returns the HTTP status code and the response body.
	Fetch(ctx context.Context, query url.Values) (int, []byte, error)
}

// Callback receives the verification result.
type Callback func(success bool, timestamp time.Time, message string)

// Checker verifies that the local wall clock wasn't changed manually.
//
// The kernel boot time is derived from the wall clock, so moving the wall clock
// moves the boot time as well. Checker compares it with the boot time persisted
// on the last successful verification and asks the time server when they differ.
//
// Remarks:
//   - Checker holds no mutable state, the baseline lives in the store. Concurrent
//     verifications aren't coordinated, serialize calls if a consistent baseline
//     is required.
type Checker struct {
	kernel   syscore.KernelClock
	clock    clockwork.Clock
	store    ValueStore
	fetcher  Fetcher
	handler  OutcomeHandler
	params   Params
	location *time.Location
}

// NewChecker is an initialization of Checker.
//
// Parameters:
//   - kernel to read boot time and uptime.
//   - clock to read the local time, real clock is used if nil.
//   - store to persist the boot time baseline.
//   - fetcher to request the time server.
//   - handler to be notified about each outcome, optional.
//   - params - tolerances and time zone, empty time zone means the local one.
func NewChecker(
	kernel syscore.KernelClock,
	clock clockwork.Clock,
	store ValueStore,
	fetcher Fetcher,
	handler OutcomeHandler,
	params Params,
) (*Checker, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	if params.Timezone == "" {
		params.Timezone = syscore.LocalTimezone()
	}

	location, err := syscore.LoadLocation(params.Timezone)
	if err != nil {
		return nil, fmt.Errorf("time-checker: invalid timezone: %q: %w", params.Timezone, err)
	}

	if params.BootTimeTolerance < 0 || params.ServerTolerance < 0 {
		return nil, fmt.Errorf("time-checker: negative tolerance: %w", status.StatusInvalidState)
	}

	return &Checker{
		kernel:   kernel,
		clock:    clock,
		store:    store,
		fetcher:  fetcher,
		handler:  handler,
		params:   params,
		location: location,
	}, nil
}

// IsClockTampered returns true if the kernel boot time moved away from the
// persisted baseline by more than the boot time tolerance, or if there is no
// baseline yet.
//
// Remarks:
//   - status.StatusNotSupported is returned if the kernel boot time isn't available.
func (c *Checker) IsClockTampered() (bool, error) {
	bootTime, err := c.readBootTime()
	if err != nil {
		return false, err
	}

	return c.isTampered(bootTime), nil
}

// GetVerifiedTime verifies the local time in a standalone goroutine and invokes
// callback exactly once with the result.
func (c *Checker) GetVerifiedTime(ctx context.Context, callback Callback) {
	go func() {
		res := c.VerifyTime(ctx)

		callback(res.Success, res.Time, res.Message)
	}()
}

// GetVerifiedTimeAsync verifies the local time in a standalone goroutine.
//
// The returned channel yields a single result and is closed afterwards.
func (c *Checker) GetVerifiedTimeAsync(ctx context.Context) <-chan VerificationResult {
	resultCh := make(chan VerificationResult, 1)

	go func() {
		defer close(resultCh)

		resultCh <- c.VerifyTime(ctx)
	}()

	return resultCh
}

// VerifyTime synchronously verifies the local time.
//
// Remarks:
//   - The baseline is updated only on OutcomeCorrectedSuccessfully.
//   - ctx is passed to the time server request, the request timeout is
//     configured on the fetcher.
func (c *Checker) VerifyTime(ctx context.Context) VerificationResult {
	res := c.verify(ctx)

	if c.handler != nil {
		c.handler.HandleOutcome(res)
	}

	return res
}

// ReconcileWithServer asks the time server whether the local time can be trusted.
//
// Returns true if the server time is within the server tolerance from the local
// time. Otherwise the second value tells what went wrong.
func (c *Checker) ReconcileWithServer(ctx context.Context) (bool, Outcome) {
	outcome, err := c.reconcile(ctx)
	if err != nil {
		core.LogWrn.Printf("time-checker: reconciliation failed: outcome=%s err=%v\n",
			outcome, err)
	}

	return outcome == OutcomeCorrectedSuccessfully, outcome
}

// UpTime returns the kernel uptime expressed as a timestamp since the UNIX epoch.
func (c *Checker) UpTime() time.Time {
	return time.Unix(0, 0).Add(c.kernel.Uptime())
}

// AnchoredTime returns the current time derived from the drift adjusted boot
// time of the last reconciliation and the kernel uptime.
//
// Remarks:
//   - status.StatusNoData is returned if the clock was never reconciled.
func (c *Checker) AnchoredTime() (time.Time, error) {
	actualBootTime, err := c.store.GetValue(ActualBootTimeKey)
	if err != nil {
		return time.Time{}, err
	}

	return secondsToTime(actualBootTime + c.kernel.Uptime().Seconds()), nil
}

func (c *Checker) verify(ctx context.Context) VerificationResult {
	bootTime, err := c.readBootTime()
	if err != nil {
		return newResult(c.clock.Now(), OutcomePlatformUnsupported, err)
	}

	if !c.isTampered(bootTime) {
		return newResult(c.clock.Now(), OutcomeUnaltered, nil)
	}

	core.LogInf.Printf("time-checker: boot time mismatch, reconciling with server: boot_time=%.0f\n",
		bootTime)

	outcome, err := c.reconcile(ctx)
	if outcome != OutcomeCorrectedSuccessfully {
		return newResult(c.clock.Now(), outcome, err)
	}

	bootTime, err = c.readBootTime()
	if err != nil {
		return newResult(c.clock.Now(), OutcomePlatformUnsupported, err)
	}

	now := c.clock.Now()

	date := secondsToTime(bootTime + c.kernel.Uptime().Seconds())
	drift := date.Sub(now)
	accurateDate := date.Add(-drift)

	// Actual boot time goes first, so the default one never exists without it.
	c.writeValue(ActualBootTimeKey, bootTime-drift.Seconds())
	c.writeValue(DefaultBootTimeKey, bootTime)

	core.LogInf.Printf("time-checker: baseline updated: boot_time=%.0f drift=%v\n",
		bootTime, drift)

	res := newResult(accurateDate, OutcomeCorrectedSuccessfully, nil)
	res.Drift = drift

	return res
}

func (c *Checker) isTampered(bootTime float64) bool {
	defaultBootTime, err := c.store.GetValue(DefaultBootTimeKey)
	if err != nil {
		if !errors.Is(err, status.StatusNoData) {
			core.LogErr.Printf("time-checker: failed to read baseline: %v\n", err)
		}

		return true
	}

	diff := math.Abs(defaultBootTime - bootTime)

	return diff > c.params.BootTimeTolerance.Seconds()
}

func (c *Checker) reconcile(ctx context.Context) (Outcome, error) {
	query := url.Values{}
	query.Set(TimezoneQueryParam, c.params.Timezone)

	code, body, err := c.fetcher.Fetch(ctx, query)
	if err != nil {
		return OutcomeServerError, fmt.Errorf("failed to fetch server time: %v: %w",
			err, status.StatusError)
	}

	if code < 200 || code > 299 {
		return OutcomeServerError, fmt.Errorf("unexpected server status: code=%d: %w",
			code, status.StatusError)
	}

	serverDate, err := DecodeServerDate(body, c.location)
	if err != nil {
		return OutcomeParsingError, err
	}

	now := c.clock.Now()

	// Whole minutes, truncated toward zero.
	minutes := int64(serverDate.Sub(now) / time.Minute)
	if minutes < 0 {
		minutes = -minutes
	}

	if minutes > int64(c.params.ServerTolerance/time.Minute) {
		return OutcomeClockStillInconsistent, fmt.Errorf(
			"server time differs from local time: server=%v local=%v: %w",
			serverDate, now.In(c.location), status.StatusInvalidState)
	}

	return OutcomeCorrectedSuccessfully, nil
}

func (c *Checker) readBootTime() (float64, error) {
	bootTime, err := c.kernel.BootTime()
	if err != nil {
		return 0, fmt.Errorf("time-checker: kernel boot time unavailable: %w", err)
	}

	return timeToSeconds(bootTime), nil
}

func (c *Checker) writeValue(key string, value float64) {
	if err := c.store.SetValue(key, value); err != nil {
		core.LogErr.Printf("time-checker: failed to persist baseline: key=%s err=%v\n", key, err)
	}
}

func timeToSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
}

func secondsToTime(sec float64) time.Time {
	whole := math.Floor(sec)

	return time.Unix(int64(whole), int64((sec-whole)*float64(time.Second)))
}
