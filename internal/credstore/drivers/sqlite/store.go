package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/kickoff/internal/credstore"
	"github.com/aussiebroadwan/kickoff/pkg/cryptox"
	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	_ "modernc.org/sqlite"
)

// Store keeps the credential pair in a local sqlite file so a session
// survives process restarts. Values are sealed before they touch disk.
type Store struct {
	db     *sql.DB
	sealer *cryptox.Sealer
	now    func() time.Time
}

var _ credstore.Store = (*Store)(nil)

func NewStore(dsn string, sealer *cryptox.Sealer) (*Store, error) {
	if sealer == nil {
		return nil, errors.New("sqlite: sealer is required")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One writer avoids SQLITE_BUSY between concurrent refreshes.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, sealer: sealer, now: time.Now}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Get(ctx context.Context, key kickoffsdk.CredentialKey) (string, error) {
	if err := credstore.ValidateKey(key); err != nil {
		return "", err
	}

	var sealed string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE key = ?`, string(key),
	).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("sqlite: failed to read %s: %w", key, err)
	}

	value, err := s.sealer.OpenString(sealed, string(key))
	if err != nil {
		return "", fmt.Errorf("sqlite: failed to open %s: %w", key, err)
	}
	return value, nil
}

// Set writes one token. An empty value deletes the row.
func (s *Store) Set(ctx context.Context, key kickoffsdk.CredentialKey, value string) error {
	if err := credstore.ValidateKey(key); err != nil {
		return err
	}

	if value == "" {
		_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, string(key))
		return err
	}

	sealed, err := s.sealer.SealString(value, string(key))
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		string(key), sealed, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials`)
	return err
}
