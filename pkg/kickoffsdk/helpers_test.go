package kickoffsdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/slogx"
	"github.com/stretchr/testify/require"
)

// countingNavigator records how often the client asked for a login redirect.
type countingNavigator struct {
	calls atomic.Int32
}

func (n *countingNavigator) RedirectToLogin(context.Context) { n.calls.Add(1) }

// newTestClient points a client at handler with the given stored tokens.
func newTestClient(t *testing.T, handler http.Handler, access, refresh string) (*kickoffsdk.Client, *kickoffsdk.MemoryCredentialStore, *countingNavigator) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := kickoffsdk.NewMemoryCredentialStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, kickoffsdk.AccessTokenKey, access))
	require.NoError(t, store.Set(ctx, kickoffsdk.RefreshTokenKey, refresh))

	nav := &countingNavigator{}
	client := kickoffsdk.NewClient(kickoffsdk.Options{
		BaseURL:     srv.URL,
		HTTPClient:  srv.Client(),
		Credentials: store,
		Navigator:   nav,
		Logger:      slogx.Discard(),
	})
	return client, store, nav
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func unauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Unauthorized", "statusCode": 401})
}

func tokenOf(t *testing.T, store kickoffsdk.CredentialStore, key kickoffsdk.CredentialKey) string {
	t.Helper()
	v, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}
