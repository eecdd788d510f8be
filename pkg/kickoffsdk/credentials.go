package kickoffsdk

import (
	"context"
	"fmt"
	"sync"
)

// CredentialKey names one half of the credential pair. The values are the
// storage keys the backend's web client has always used, keep them byte-exact.
type CredentialKey string

const (
	AccessTokenKey  CredentialKey = "accessToken"
	RefreshTokenKey CredentialKey = "refreshToken"
)

// CredentialStore holds the credential pair. Get returns "" for an absent
// key. Writes are last-write-wins; callers never hold a lock across a request.
type CredentialStore interface {
	Get(ctx context.Context, key CredentialKey) (string, error)
	Set(ctx context.Context, key CredentialKey, value string) error

	// Clear removes both tokens.
	Clear(ctx context.Context) error
}

// Credentials is the access/refresh token pair returned by login and register.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// MemoryCredentialStore keeps tokens for the lifetime of the process.
type MemoryCredentialStore struct {
	mu     sync.RWMutex
	tokens map[CredentialKey]string
}

// NewMemoryCredentialStore returns an empty in-memory store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{tokens: make(map[CredentialKey]string, 2)}
}

func (m *MemoryCredentialStore) Get(_ context.Context, key CredentialKey) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tokens[key], nil
}

func (m *MemoryCredentialStore) Set(_ context.Context, key CredentialKey, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value == "" {
		delete(m.tokens, key)
		return nil
	}
	m.tokens[key] = value
	return nil
}

func (m *MemoryCredentialStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.tokens)
	return nil
}

// storeCredentials writes both tokens of a freshly issued pair.
func storeCredentials(ctx context.Context, store CredentialStore, creds Credentials) error {
	if err := store.Set(ctx, AccessTokenKey, creds.AccessToken); err != nil {
		return fmt.Errorf("failed to store access token: %w", err)
	}
	if err := store.Set(ctx, RefreshTokenKey, creds.RefreshToken); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}
