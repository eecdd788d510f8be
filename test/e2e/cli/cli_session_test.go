package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSessionLifecycle walks one session through separate processes:
// 1. Login stores the credential pair in the sqlite store
// 2. A later process reuses it
// 3. An expired access token is refreshed silently
// 4. A failed refresh prints the expiry notice and clears the session
func TestSessionLifecycle(t *testing.T) {
	skipShort(t)

	b := newBackend(t)
	env := sqliteEnv(b.URL, t.TempDir())

	res := kickoff(t, env, "status")
	require.Zero(t, res.exitCode, res.stderr)
	require.Contains(t, res.stdout, "not signed in")

	res = kickoff(t, env, "login", "-e", "owner@example.com", "-p", "Secret123!")
	require.Zero(t, res.exitCode, res.stderr)
	require.Equal(t, "signed in as Pitch Owner\n", res.stdout)

	res = kickoff(t, env, "--json", "whoami")
	require.Zero(t, res.exitCode, res.stderr)
	var me struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &me))
	require.Equal(t, int64(7), me.ID)
	require.Zero(t, b.refreshCount())

	b.expireAccess()
	res = kickoff(t, env, "bookings", "pending")
	require.Zero(t, res.exitCode, res.stderr)
	require.Contains(t, res.stdout, "31")
	require.Equal(t, 1, b.refreshCount())

	b.expireAccess()
	b.revokeRefresh()
	res = kickoff(t, env, "bookings", "pending")
	require.Equal(t, 1, res.exitCode)
	require.Equal(t, "session expired, run `kickoff login`\n", res.stderr)
	require.Empty(t, res.stdout)

	res = kickoff(t, env, "status")
	require.Zero(t, res.exitCode, res.stderr)
	require.Contains(t, res.stdout, "not signed in")
}

func TestLoginRejected(t *testing.T) {
	skipShort(t)

	b := newBackend(t)
	env := sqliteEnv(b.URL, t.TempDir())

	res := kickoff(t, env, "login", "-e", "owner@example.com", "-p", "wrong")
	require.Equal(t, 1, res.exitCode)
	require.Contains(t, res.stderr, "Invalid credentials")
	require.Zero(t, b.refreshCount())
}

func TestLogout(t *testing.T) {
	skipShort(t)

	b := newBackend(t)
	env := sqliteEnv(b.URL, t.TempDir())

	require.Zero(t, kickoff(t, env, "login", "-e", "owner@example.com", "-p", "Secret123!").exitCode)

	res := kickoff(t, env, "logout")
	require.Zero(t, res.exitCode, res.stderr)
	require.Equal(t, "signed out\n", res.stdout)

	res = kickoff(t, env, "whoami")
	require.Equal(t, 1, res.exitCode)
	require.Contains(t, res.stderr, "not authenticated")
}

func TestTokensAreSealedAtRest(t *testing.T) {
	skipShort(t)

	b := newBackend(t)
	dir := t.TempDir()
	env := sqliteEnv(b.URL, dir)

	require.Zero(t, kickoff(t, env, "login", "-e", "owner@example.com", "-p", "Secret123!").exitCode)

	db, err := os.ReadFile(filepath.Join(dir, "credentials.db"))
	require.NoError(t, err)
	require.NotContains(t, string(db), "refresh-1")
	require.NotContains(t, string(db), "access-1")

	key, err := os.ReadFile(filepath.Join(dir, "master.key"))
	require.NoError(t, err)
	require.NotEmpty(t, key)

	// A different master key cannot read the stored session.
	env["KICKOFF_MASTER_KEY"] = "some-other-key"
	res := kickoff(t, env, "status")
	require.Equal(t, 1, res.exitCode)
}
