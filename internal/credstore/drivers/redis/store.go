package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/kickoff/internal/credstore"
	"github.com/aussiebroadwan/kickoff/pkg/cryptox"
	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultHashKey is the redis hash holding the credential pair.
const DefaultHashKey = "kickoff:credentials"

type Config struct {
	Addr     string
	Password string
	DB       int

	// HashKey lets several sessions share one redis. Defaults to DefaultHashKey.
	HashKey string
}

// Store shares one credential pair between processes through a redis hash.
// Each token is a field of the hash so Clear is a single DEL.
type Store struct {
	client  *goredis.Client
	sealer  *cryptox.Sealer
	hashKey string
}

var _ credstore.Store = (*Store)(nil)

func NewStore(cfg Config, sealer *cryptox.Sealer) (*Store, error) {
	if sealer == nil {
		return nil, errors.New("redis: sealer is required")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewStoreWithClient(client, cfg.HashKey, sealer), nil
}

// NewStoreWithClient wraps an existing client. The Store takes ownership and
// closes it on Close.
func NewStoreWithClient(client *goredis.Client, hashKey string, sealer *cryptox.Sealer) *Store {
	if hashKey == "" {
		hashKey = DefaultHashKey
	}
	return &Store{client: client, sealer: sealer, hashKey: hashKey}
}

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Get(ctx context.Context, key kickoffsdk.CredentialKey) (string, error) {
	if err := credstore.ValidateKey(key); err != nil {
		return "", err
	}

	sealed, err := s.client.HGet(ctx, s.hashKey, string(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis: failed to read %s: %w", key, err)
	}

	value, err := s.sealer.OpenString(sealed, string(key))
	if err != nil {
		return "", fmt.Errorf("redis: failed to open %s: %w", key, err)
	}
	return value, nil
}

// Set writes one token. An empty value removes the field.
func (s *Store) Set(ctx context.Context, key kickoffsdk.CredentialKey, value string) error {
	if err := credstore.ValidateKey(key); err != nil {
		return err
	}

	if value == "" {
		return s.client.HDel(ctx, s.hashKey, string(key)).Err()
	}

	sealed, err := s.sealer.SealString(value, string(key))
	if err != nil {
		return err
	}

	if err := s.client.HSet(ctx, s.hashKey, string(key), sealed).Err(); err != nil {
		return fmt.Errorf("redis: failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.hashKey).Err()
}
