package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	APIURL          string `validate:"required,url"`
	CredentialStore string `validate:"oneof=memory sqlite redis"`

	DatabaseFile  string `validate:"required_if=CredentialStore sqlite"` // sqlite store file (default: <config dir>/kickoff/credentials.db)
	MasterKey     string // Optional: key material sealing stored tokens
	MasterKeyFile string // Optional: file holding the key material, generated on first use

	RedisAddr     string `validate:"required_if=CredentialStore redis"`
	RedisPassword string
	RedisDB       int `validate:"gte=0"`

	RateLimitRPS   float64       `validate:"gte=0"` // Outgoing requests per second, 0 disables (default: 0)
	RateLimitBurst int           `validate:"gte=0"`
	CacheStaleTime time.Duration `validate:"gte=0"` // default: 5m
	CacheGCTime    time.Duration `validate:"gte=0"` // default: 5m
	HTTPTimeout    time.Duration `validate:"gt=0"`  // default: 30s

	Env       string // (dev, staging, prod) (default: dev)
	LogLevel  string `validate:"oneof=debug info warn error"` // (default: warn)
	LogFormat string `validate:"oneof=json text"`             // (default: text)
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is applied first when present; real environment
// variables win over it.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	dir := defaultConfigDir()

	cfg := Config{
		APIURL:          getEnvOrDefault("KICKOFF_API_URL", "http://localhost:3000/api"),
		CredentialStore: getEnvOrDefault("KICKOFF_CREDENTIAL_STORE", StoreSQLite),
		DatabaseFile:    getEnvOrDefault("KICKOFF_DATABASE_FILE", filepath.Join(dir, "credentials.db")),
		MasterKey:       os.Getenv("KICKOFF_MASTER_KEY"),
		MasterKeyFile:   getEnvOrDefault("KICKOFF_MASTER_KEY_FILE", filepath.Join(dir, "master.key")),
		RedisAddr:       getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvIntOrDefault("REDIS_DB", 0),
		RateLimitRPS:    getEnvFloatOrDefault("KICKOFF_RATE_LIMIT_RPS", 0),
		RateLimitBurst:  getEnvIntOrDefault("KICKOFF_RATE_LIMIT_BURST", 5),
		CacheStaleTime:  getEnvDurationOrDefault("KICKOFF_CACHE_STALE_TIME", 5*time.Minute),
		CacheGCTime:     getEnvDurationOrDefault("KICKOFF_CACHE_GC_TIME", 5*time.Minute),
		HTTPTimeout:     getEnvDurationOrDefault("KICKOFF_HTTP_TIMEOUT", 30*time.Second),
		Env:             getEnvOrDefault("ENV", "dev"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "warn"),
		LogFormat:       getEnvOrDefault("LOG_FORMAT", "text"),
	}

	return cfg, cfg.Validate()
}

var validate = validator.New()

// Validate checks the configuration for values the application cannot run
// with.
func (c Config) Validate() error {
	return validate.Struct(c)
}

func defaultConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "kickoff")
	}
	return ".kickoff"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
