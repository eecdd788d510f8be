package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

/*
 * End-to-end tests driving the kickoff binary against a fake backend.
 * The binary is built once; every test gets its own backend and config dir.
 */

var binaryPath string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	dir, err := os.MkdirTemp("", "kickoff-e2e-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create build dir: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Building kickoff binary...")
	binaryPath = filepath.Join(dir, "kickoff")
	if err := buildBinary(binaryPath); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build binary: %v\n", err)
		_ = os.RemoveAll(dir)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	_ = os.RemoveAll(dir)
	os.Exit(exitCode)
}

func buildBinary(out string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "build", "-o", out, "../../../cmd/kickoff")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
}

// backend is a fake Kick-off API issuing rotating access tokens.
type backend struct {
	*httptest.Server

	mu        sync.Mutex
	access    string
	refresh   string
	issued    int
	refreshes int
}

func newBackend(t *testing.T) *backend {
	t.Helper()

	b := &backend{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", b.login)
	mux.HandleFunc("POST /auth/refresh", b.refreshToken)
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		b.refresh = ""
		b.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /auth/me", b.authed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"id": 7, "email": "owner@example.com", "fullName": "Pitch Owner", "role": "field_owner",
		})
	}))
	mux.HandleFunc("GET /bookings/owner/pending", b.authed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 31, "fieldId": 2, "status": "pending", "totalPrice": 450000},
		})
	}))

	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Close)
	return b
}

func (b *backend) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Password != "Secret123!" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		return
	}

	b.mu.Lock()
	b.issued++
	b.access = fmt.Sprintf("access-%d", b.issued)
	b.refresh = "refresh-1"
	access, refresh := b.access, b.refresh
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"accessToken":  access,
		"refreshToken": refresh,
		"user":         map[string]any{"id": 7, "email": body.Email, "fullName": "Pitch Owner"},
	})
}

func (b *backend) refreshToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshes++
	if b.refresh == "" || body.RefreshToken != b.refresh {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid refresh token"})
		return
	}
	b.issued++
	b.access = fmt.Sprintf("access-%d", b.issued)
	writeJSON(w, http.StatusOK, map[string]string{"accessToken": b.access})
}

func (b *backend) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		ok := b.access != "" && r.Header.Get("Authorization") == "Bearer "+b.access
		b.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
			return
		}
		next(w, r)
	}
}

// expireAccess invalidates the current access token.
func (b *backend) expireAccess() {
	b.mu.Lock()
	b.access = ""
	b.mu.Unlock()
}

// revokeRefresh invalidates the refresh token so the next refresh fails.
func (b *backend) revokeRefresh() {
	b.mu.Lock()
	b.refresh = ""
	b.mu.Unlock()
}

func (b *backend) refreshCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.refreshes
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// result is the outcome of one kickoff invocation.
type result struct {
	stdout   string
	stderr   string
	exitCode int
}

// kickoff runs the binary with env on top of a minimal environment. The
// working directory is a fresh temp dir so no stray .env is picked up.
func kickoff(t *testing.T, env map[string]string, args ...string) result {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Dir = t.TempDir()
	cmd.Env = []string{"HOME=" + cmd.Dir, "PATH=" + os.Getenv("PATH")}
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := result{}
	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.exitCode = exitErr.ExitCode()
	default:
		require.NoError(t, err)
	}

	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

// sqliteEnv configures the binary for the sqlite store under dir.
func sqliteEnv(apiURL, dir string) map[string]string {
	return map[string]string{
		"KICKOFF_API_URL":          apiURL,
		"KICKOFF_CREDENTIAL_STORE": "sqlite",
		"KICKOFF_DATABASE_FILE":    filepath.Join(dir, "credentials.db"),
		"KICKOFF_MASTER_KEY_FILE":  filepath.Join(dir, "master.key"),
		"LOG_LEVEL":                "error",
	}
}
