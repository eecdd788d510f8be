package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aussiebroadwan/kickoff/pkg/cryptox"
)

const masterKeySize = 32

// loadSealer builds the sealer protecting stored tokens. KICKOFF_MASTER_KEY
// wins; otherwise the key file is read, or generated when it does not exist
// yet. The memory store gets a throwaway key.
func loadSealer(cfg Config, logger *slog.Logger) (*cryptox.Sealer, error) {
	if cfg.MasterKey != "" {
		return cryptox.NewSealer([]byte(cfg.MasterKey))
	}

	if cfg.CredentialStore == StoreMemory {
		return cryptox.NewEphemeralSealer()
	}

	material, err := loadOrGenerateMasterKey(cfg.MasterKeyFile, logger)
	if err != nil {
		return nil, err
	}
	return cryptox.NewSealer(material)
}

func loadOrGenerateMasterKey(path string, logger *slog.Logger) ([]byte, error) {
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	if err == nil {
		return []byte(strings.TrimSpace(string(data))), nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read master key file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create master key directory: %w", err)
	}

	key, err := cryptox.GenerateToken(masterKeySize)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(key), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write master key file: %w", err)
	}

	logger.Info("generated new master key", "path", path)
	return []byte(key), nil
}
