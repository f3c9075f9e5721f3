package htcore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/clock-guard/components/http/htclient"
	"github.com/open-control-systems/clock-guard/components/storage/stcore"
	"github.com/open-control-systems/clock-guard/components/timeguard/tgcore"
)

type testKernelClock struct {
	bootTime time.Time
	uptime   time.Duration
}

func (c *testKernelClock) BootTime() (time.Time, error) {
	return c.bootTime, nil
}

func (c *testKernelClock) Uptime() time.Duration {
	return c.uptime
}

func testNow() time.Time {
	return time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
}

func newTestAuthorityServer(t *testing.T, serverTime time.Time) *Server {
	mux := http.NewServeMux()
	mux.Handle("/api/v1/time", NewTimeAuthorityHandler(clockwork.NewFakeClockAt(serverTime)))

	server, err := NewServer(mux, ServerParams{Host: "127.0.0.1"})
	require.Nil(t, err)

	server.Start()

	t.Cleanup(func() {
		require.Nil(t, server.Close())
	})

	return server
}

func newTestChecker(t *testing.T, authorityURL string, store *stcore.ValueStore) *tgcore.Checker {
	now := testNow()

	params := tgcore.DefaultParams()
	params.Timezone = "Asia/Kathmandu"

	checker, err := tgcore.NewChecker(
		&testKernelClock{bootTime: now.Add(-time.Hour), uptime: time.Hour},
		clockwork.NewFakeClockAt(now),
		store,
		htclient.NewURLFetcher(htclient.NewDefaultClient(), authorityURL, time.Second*5),
		nil,
		params,
	)
	require.Nil(t, err)

	return checker
}

func TestTimeAuthorityHandlerFormat(t *testing.T) {
	handler := NewTimeAuthorityHandler(clockwork.NewFakeClockAt(testNow()))

	req := httptest.NewRequest(http.MethodGet, "/?timezone=Asia/Kathmandu", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp TimeAuthorityResponse
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "2024-05-01 03:45:00 PM", resp.Date)
	require.Equal(t, "Asia/Kathmandu", resp.Timezone)
}

func TestTimeAuthorityHandlerDefaultTimezone(t *testing.T) {
	handler := NewTimeAuthorityHandler(clockwork.NewFakeClockAt(testNow()))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TimeAuthorityResponse
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "2024-05-01 10:00:00 AM", resp.Date)
	require.Equal(t, "UTC", resp.Timezone)
}

func TestTimeAuthorityHandlerUnknownTimezone(t *testing.T) {
	handler := NewTimeAuthorityHandler(clockwork.NewFakeClockAt(testNow()))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?timezone=Mars/Olympus", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTimeAuthorityHandlerUnsupportedMethod(t *testing.T) {
	handler := NewTimeAuthorityHandler(nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCheckerWithTimeAuthorityCorrected(t *testing.T) {
	server := newTestAuthorityServer(t, testNow().Add(time.Minute))
	store := stcore.NewValueStore(stcore.NewMemoryDB())

	checker := newTestChecker(t, server.URL()+"/api/v1/time", store)

	res := checker.VerifyTime(context.Background())
	require.True(t, res.Success)
	require.Equal(t, tgcore.OutcomeCorrectedSuccessfully, res.Outcome)

	res = checker.VerifyTime(context.Background())
	require.True(t, res.Success)
	require.Equal(t, tgcore.OutcomeUnaltered, res.Outcome)
}

func TestCheckerWithTimeAuthorityInconsistent(t *testing.T) {
	server := newTestAuthorityServer(t, testNow().Add(time.Minute*90))
	store := stcore.NewValueStore(stcore.NewMemoryDB())

	checker := newTestChecker(t, server.URL()+"/api/v1/time", store)

	res := checker.VerifyTime(context.Background())
	require.False(t, res.Success)
	require.Equal(t, tgcore.OutcomeClockStillInconsistent, res.Outcome)

	ok, err := store.HasValue(tgcore.DefaultBootTimeKey)
	require.Nil(t, err)
	require.False(t, ok)
}

func TestCheckerWithTimeAuthorityNotFound(t *testing.T) {
	server := newTestAuthorityServer(t, testNow())
	store := stcore.NewValueStore(stcore.NewMemoryDB())

	checker := newTestChecker(t, server.URL()+"/api/v1/missing", store)

	res := checker.VerifyTime(context.Background())
	require.Equal(t, tgcore.OutcomeServerError, res.Outcome)
}

func TestServerRandomPort(t *testing.T) {
	server, err := NewServer(http.NotFoundHandler(), ServerParams{Host: "127.0.0.1"})
	require.Nil(t, err)

	require.NotZero(t, server.Port())

	server.Start()
	require.Nil(t, server.Close())
}
