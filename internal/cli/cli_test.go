package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/kickoff/internal/cli/app"
	"github.com/aussiebroadwan/kickoff/internal/credstore"
	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
)

type harness struct {
	store  *credstore.Memory
	stdout bytes.Buffer
	stderr bytes.Buffer
	apps   []*app.Application
	cfg    app.Config
}

func newHarness(t *testing.T, handler http.Handler) *harness {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &harness{
		store: credstore.NewMemory(),
		cfg: app.Config{
			APIURL:          srv.URL,
			CredentialStore: app.StoreMemory,
			HTTPTimeout:     5 * time.Second,
		},
	}
}

func (h *harness) signIn(t *testing.T, access, refresh string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, h.store.Set(ctx, kickoffsdk.AccessTokenKey, access))
	require.NoError(t, h.store.Set(ctx, kickoffsdk.RefreshTokenKey, refresh))
}

func (h *harness) run(args ...string) error {
	h.stdout.Reset()
	h.stderr.Reset()

	cliApp := NewApp(Options{
		Stdout: &h.stdout,
		Stderr: &h.stderr,
		NewApplication: func(_ context.Context, stderr io.Writer) (*app.Application, error) {
			a := app.NewWithStore(h.cfg, h.store, nil, stderr)
			h.apps = append(h.apps, a)
			return a, nil
		},
	})
	return cliApp.RunContext(context.Background(), append([]string{"kickoff"}, args...))
}

func (h *harness) token(t *testing.T, key kickoffsdk.CredentialKey) string {
	t.Helper()
	v, err := h.store.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body kickoffsdk.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"accessToken":  "A1",
			"refreshToken": "R1",
			"user":         map[string]any{"id": 1, "fullName": "Striker", "email": body.Email},
		})
	})
	h := newHarness(t, mux)

	require.NoError(t, h.run("login", "-e", "s@example.com", "-p", "secret"))
	require.Equal(t, "signed in as Striker\n", h.stdout.String())
	require.Equal(t, "A1", h.token(t, kickoffsdk.AccessTokenKey))
	require.Equal(t, "R1", h.token(t, kickoffsdk.RefreshTokenKey))

	err := h.run("login", "-e", "s@example.com", "-p", "nope")
	require.True(t, kickoffsdk.IsStatus(err, http.StatusUnauthorized))
	require.Empty(t, h.stderr.String(), "a failed login is not a session expiry")
	require.Equal(t, "R1", h.token(t, kickoffsdk.RefreshTokenKey))
}

func TestWhoami_NotSignedIn(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	err := h.run("whoami")
	require.ErrorIs(t, err, kickoffsdk.ErrNotAuthenticated)
	require.Zero(t, calls.Load())
}

func TestWhoami_JSON(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer A1" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "missing token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": 4, "fullName": "Keeper", "email": "k@example.com", "role": "player"})
	}))
	h.signIn(t, "A1", "R1")

	require.NoError(t, h.run("--json", "whoami"))

	var u kickoffsdk.User
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &u))
	require.Equal(t, int64(4), u.ID)
	require.Equal(t, "Keeper", u.FullName)
}

func TestSessionExpiry(t *testing.T) {
	t.Parallel()

	var refreshes atomic.Int32
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			refreshes.Add(1)
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}))
	h.signIn(t, "A1", "R1")

	err := h.run("bookings", "pending")
	require.ErrorIs(t, err, kickoffsdk.ErrSessionExpired)
	require.Equal(t, int32(1), refreshes.Load())
	require.Equal(t, app.SessionExpiredMessage+"\n", h.stderr.String())
	require.True(t, h.apps[0].SessionExpired())

	require.Empty(t, h.token(t, kickoffsdk.AccessTokenKey))
	require.Empty(t, h.token(t, kickoffsdk.RefreshTokenKey))
}

func TestLogout_ServerErrorStillSignsOut(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, map[string]string{"message": "down"})
	}))
	h.signIn(t, "A1", "R1")

	require.NoError(t, h.run("logout"))
	require.Equal(t, "signed out\n", h.stdout.String())
	require.Empty(t, h.token(t, kickoffsdk.AccessTokenKey))
}

func TestBookingsApprove(t *testing.T) {
	t.Parallel()

	var path string
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.Method + " " + r.URL.Path
		writeJSON(w, http.StatusOK, map[string]any{"id": 31, "status": "approved"})
	}))
	h.signIn(t, "A1", "R1")

	require.NoError(t, h.run("bookings", "approve", "31"))
	require.Equal(t, "PATCH /bookings/31/approve", path)
	require.Equal(t, "booking 31 approved\n", h.stdout.String())
}

func TestBookingsReject_Reason(t *testing.T) {
	t.Parallel()

	var body map[string]string
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusOK, map[string]any{"id": 31, "status": "rejected"})
	}))
	h.signIn(t, "A1", "R1")

	require.NoError(t, h.run("bookings", "reject", "--reason", "maintenance", "31"))
	require.Equal(t, "maintenance", body["reason"])
	require.Equal(t, "booking 31 rejected\n", h.stdout.String())
}

func TestInvalidIDArgument(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.NotFoundHandler())
	h.signIn(t, "A1", "R1")

	require.ErrorContains(t, h.run("teams", "show", "abc"), `invalid team id "abc"`)
	require.ErrorContains(t, h.run("teams", "show"), "missing team id argument")
	require.ErrorContains(t, h.run("teams", "show", "0"), "invalid team id")
}

func TestTeamsList_Table(t *testing.T) {
	t.Parallel()

	var query string
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []map[string]any{
				{"id": 1, "name": "Red Lions", "city": "Hue", "memberCount": 14, "verified": true},
			},
			"total": 1, "page": 1, "limit": 20, "totalPages": 1,
		})
	}))
	h.signIn(t, "A1", "R1")

	require.NoError(t, h.run("teams", "list", "--city", "Hue"))
	require.Contains(t, query, "city=Hue")

	out := h.stdout.String()
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "Red Lions")
	require.Contains(t, out, "page 1/1, 1 total")
}

func TestStatus_ReadsTokenClaims(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	h := newHarness(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls.Add(1) }))

	require.NoError(t, h.run("status"))
	require.True(t, strings.HasPrefix(h.stdout.String(), "not signed in"))

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, kickoffsdk.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "12",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "owner@example.com",
		Role:  "field_owner",
	})
	signed, err := tok.SignedString([]byte("k"))
	require.NoError(t, err)
	h.signIn(t, signed, "R1")

	require.NoError(t, h.run("--json", "status"))
	var st sessionStatus
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &st))
	require.True(t, st.SignedIn)
	require.Equal(t, "owner@example.com", st.Email)
	require.Equal(t, "12", st.Subject)
	require.NotNil(t, st.ExpiresAt)
	require.True(t, st.HasRefreshToken)

	require.Zero(t, calls.Load(), "status never calls the backend")
}

func TestStatus_OpaqueToken(t *testing.T) {
	t.Parallel()

	h := newHarness(t, http.NotFoundHandler())
	h.signIn(t, "opaque", "")

	require.NoError(t, h.run("status"))
	require.Contains(t, h.stdout.String(), "signed in as")
	require.Contains(t, h.stdout.String(), "expires unknown")
}

func TestUpload(t *testing.T) {
	t.Parallel()

	var ownerType, entityID, filename string
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ownerType = r.FormValue("owner_type")
		entityID = r.FormValue("entity_id")
		if _, hdr, err := r.FormFile("file"); err == nil {
			filename = hdr.Filename
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": 1, "url": "https://cdn.example.com/1.png"})
	}))
	h.signIn(t, "A1", "R1")

	path := filepath.Join(t.TempDir(), "crest.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))

	require.NoError(t, h.run("upload", "--owner-type", "team", "--entity", "5", path))
	require.Equal(t, "team", ownerType)
	require.Equal(t, "5", entityID)
	require.Equal(t, "crest.png", filename)
	require.Equal(t, "uploaded https://cdn.example.com/1.png\n", h.stdout.String())
}

func TestNoArgsSkipsApplication(t *testing.T) {
	t.Parallel()

	built := false
	cliApp := NewApp(Options{
		Stdout: io.Discard,
		Stderr: io.Discard,
		NewApplication: func(context.Context, io.Writer) (*app.Application, error) {
			built = true
			return nil, errors.New("should not be built")
		},
	})
	require.NoError(t, cliApp.Run([]string{"kickoff"}))
	require.False(t, built)
}
