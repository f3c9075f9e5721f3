//go:build linux

package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/clock-guard/components/http/htcore"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	cmd := newRootCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func newTestAuthority(t *testing.T) string {
	mux := http.NewServeMux()
	mux.Handle("/api/v1/time", htcore.NewTimeAuthorityHandler(nil))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server.URL + "/api/v1/time"
}

func TestCommandVerifyUpdatesBaseline(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "baseline.db")
	authorityURL := newTestAuthority(t)

	out, err := executeCommand(t, "baseline", "show", "--db-path", dbPath)
	require.Nil(t, err)
	require.Contains(t, out, "defaultBootTimeInterval=none")

	out, err = executeCommand(t, "verify", "--tampered", "--db-path", dbPath)
	require.Nil(t, err)
	require.Contains(t, out, "tampered=true")

	out, err = executeCommand(t, "verify",
		"--db-path", dbPath, "--authority-url", authorityURL, "--timezone", "UTC")
	require.Nil(t, err)
	require.Contains(t, out, "success=true")

	out, err = executeCommand(t, "verify", "--tampered", "--db-path", dbPath)
	require.Nil(t, err)
	require.Contains(t, out, "tampered=false")

	out, err = executeCommand(t, "uptime", "--db-path", dbPath)
	require.Nil(t, err)
	require.Contains(t, out, "uptime=")
	require.NotContains(t, out, "anchored=none")

	_, err = executeCommand(t, "baseline", "clear", "--db-path", dbPath)
	require.Nil(t, err)

	out, err = executeCommand(t, "baseline", "show", "--db-path", dbPath)
	require.Nil(t, err)
	require.Contains(t, out, "actualBootTimeInterval=none")
	require.Contains(t, out, "defaultBootTimeInterval=none")
}

func TestCommandVerifyServerError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	out, err := executeCommand(t, "verify", "--authority-url", server.URL, "--timezone", "UTC")
	require.NotNil(t, err)
	require.Contains(t, out, "success=false")
}

func TestCommandReconcile(t *testing.T) {
	out, err := executeCommand(t, "verify", "--reconcile",
		"--authority-url", newTestAuthority(t), "--timezone", "Asia/Kathmandu")
	require.Nil(t, err)
	require.Contains(t, out, "outcome=corrected")
}

func TestCommandBaselineClearUnknownKey(t *testing.T) {
	_, err := executeCommand(t, "baseline", "clear", "unknown")
	require.NotNil(t, err)
}
