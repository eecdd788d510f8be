// Package credstore defines the persistent backends for the SDK's
// credential pair. Drivers live under drivers/ and all satisfy
// kickoffsdk.CredentialStore.
package credstore

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
)

var ErrUnknownKey = errors.New("credstore: unknown credential key")

// Store is a CredentialStore that owns a connection.
type Store interface {
	kickoffsdk.CredentialStore

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}

// Keys lists every credential key a driver may be asked for.
var Keys = []kickoffsdk.CredentialKey{
	kickoffsdk.AccessTokenKey,
	kickoffsdk.RefreshTokenKey,
}

// ValidateKey rejects keys outside the credential pair so a driver never
// writes stray rows.
func ValidateKey(key kickoffsdk.CredentialKey) error {
	for _, k := range Keys {
		if k == key {
			return nil
		}
	}
	return ErrUnknownKey
}

// Memory wraps the SDK's in-process store so it satisfies Store.
type Memory struct {
	*kickoffsdk.MemoryCredentialStore
}

func NewMemory() *Memory {
	return &Memory{MemoryCredentialStore: kickoffsdk.NewMemoryCredentialStore()}
}

func (*Memory) Ping(context.Context) error { return nil }
func (*Memory) Close() error               { return nil }
