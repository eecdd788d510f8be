package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"KICKOFF_API_URL", "KICKOFF_CREDENTIAL_STORE", "KICKOFF_DATABASE_FILE",
	"KICKOFF_MASTER_KEY", "KICKOFF_MASTER_KEY_FILE", "REDIS_ADDR", "REDIS_PASSWORD",
	"REDIS_DB", "KICKOFF_RATE_LIMIT_RPS", "KICKOFF_RATE_LIMIT_BURST",
	"KICKOFF_CACHE_STALE_TIME", "KICKOFF_CACHE_GC_TIME", "KICKOFF_HTTP_TIMEOUT",
	"ENV", "LOG_LEVEL", "LOG_FORMAT",
}

func clearConfigEnv(t *testing.T) {
	for _, k := range configEnv {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:3000/api", cfg.APIURL)
	require.Equal(t, StoreSQLite, cfg.CredentialStore)
	require.NotEmpty(t, cfg.DatabaseFile)
	require.NotEmpty(t, cfg.MasterKeyFile)
	require.Equal(t, 5*time.Minute, cfg.CacheStaleTime)
	require.Equal(t, 5*time.Minute, cfg.CacheGCTime)
	require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Zero(t, cfg.RateLimitRPS)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("KICKOFF_API_URL", "https://api.kickoff.example/api")
	t.Setenv("KICKOFF_CREDENTIAL_STORE", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("KICKOFF_CACHE_STALE_TIME", "90")
	t.Setenv("KICKOFF_HTTP_TIMEOUT", "5s")
	t.Setenv("KICKOFF_RATE_LIMIT_RPS", "2.5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://api.kickoff.example/api", cfg.APIURL)
	require.Equal(t, StoreRedis, cfg.CredentialStore)
	require.Equal(t, "cache:6379", cfg.RedisAddr)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, 90*time.Second, cfg.CacheStaleTime)
	require.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	require.InDelta(t, 2.5, cfg.RateLimitRPS, 0.0001)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown store", "KICKOFF_CREDENTIAL_STORE", "etcd"},
		{"bad url", "KICKOFF_API_URL", "not a url"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}

func TestGetEnvDurationOrDefault(t *testing.T) {
	t.Setenv("KICKOFF_TEST_DURATION", "garbage")
	require.Equal(t, time.Minute, getEnvDurationOrDefault("KICKOFF_TEST_DURATION", time.Minute))

	t.Setenv("KICKOFF_TEST_DURATION", "1h30m")
	require.Equal(t, 90*time.Minute, getEnvDurationOrDefault("KICKOFF_TEST_DURATION", time.Minute))
}
