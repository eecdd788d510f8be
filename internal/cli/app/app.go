package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/aussiebroadwan/kickoff/internal/credstore"
	"github.com/aussiebroadwan/kickoff/internal/credstore/drivers/redis"
	"github.com/aussiebroadwan/kickoff/internal/credstore/drivers/sqlite"
	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
	"github.com/aussiebroadwan/kickoff/pkg/resources"
	"github.com/aussiebroadwan/kickoff/pkg/slogx"
	"golang.org/x/time/rate"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = kickoffsdk.Version

	// SessionExpiredMessage is what the CLI shows in place of the browser's
	// redirect to the login page.
	SessionExpiredMessage = "session expired, run `kickoff login`"
)

// Application holds the wired SDK client, cache and hooks for one CLI run.
type Application struct {
	cfg    Config
	logger *slog.Logger
	stderr io.Writer

	creds     credstore.Store
	Client    *kickoffsdk.Client
	Cache     *querycache.Store
	Resources *resources.Resources

	sessionExpired atomic.Bool
}

// New builds an Application. Messages meant for the user, like the session
// expiry notice, go to stderr.
func New(ctx context.Context, cfg Config, stderr io.Writer) (*Application, error) {
	if stderr == nil {
		stderr = os.Stderr
	}

	app := &Application{
		cfg:    cfg,
		stderr: stderr,
		logger: slogx.New(slogx.Config{
			Service: "kickoff",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
			Output:  stderr,
		}),
	}

	if err := app.initCredentialStore(ctx); err != nil {
		return nil, err
	}

	app.initClient()
	return app, nil
}

// NewWithStore wires an Application around an existing credential store.
func NewWithStore(cfg Config, store credstore.Store, logger *slog.Logger, stderr io.Writer) *Application {
	if logger == nil {
		logger = slogx.Discard()
	}
	if stderr == nil {
		stderr = io.Discard
	}
	app := &Application{cfg: cfg, logger: logger, stderr: stderr, creds: store}
	app.initClient()
	return app
}

func (app *Application) Logger() *slog.Logger { return app.logger }
func (app *Application) Config() Config       { return app.cfg }

// Credentials exposes the configured credential store.
func (app *Application) Credentials() credstore.Store { return app.creds }

// SessionExpired reports whether a refresh failed during this run.
func (app *Application) SessionExpired() bool { return app.sessionExpired.Load() }

// Close stops the cache janitor and releases the credential store.
func (app *Application) Close() error {
	app.Cache.Stop()
	if err := app.creds.Close(); err != nil {
		app.logger.Error("error closing credential store", "error", err)
		return err
	}
	return nil
}

// RedirectToLogin implements kickoffsdk.Navigator.
func (app *Application) RedirectToLogin(ctx context.Context) {
	if app.sessionExpired.Swap(true) {
		return
	}
	fmt.Fprintln(app.stderr, SessionExpiredMessage)
}

func (app *Application) initCredentialStore(ctx context.Context) error {
	sealer, err := loadSealer(app.cfg, app.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize master key: %w", err)
	}

	switch app.cfg.CredentialStore {
	case StoreMemory:
		app.creds = credstore.NewMemory()

	case StoreSQLite:
		if err := os.MkdirAll(filepath.Dir(app.cfg.DatabaseFile), 0o700); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}

		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn, sealer)
		if err != nil {
			return fmt.Errorf("failed to initialize credential database: %w", err)
		}
		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}
		app.creds = db
		app.logger.Debug("credential database ready", "file", app.cfg.DatabaseFile)

	case StoreRedis:
		rs, err := redis.NewStore(redis.Config{
			Addr:     app.cfg.RedisAddr,
			Password: app.cfg.RedisPassword,
			DB:       app.cfg.RedisDB,
		}, sealer)
		if err != nil {
			return err
		}

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := rs.Ping(pingCtx); err != nil {
			_ = rs.Close()
			return fmt.Errorf("failed to connect to redis at %s: %w", app.cfg.RedisAddr, err)
		}
		app.creds = rs

	default:
		return fmt.Errorf("unknown credential store %q", app.cfg.CredentialStore)
	}

	return nil
}

func (app *Application) initClient() {
	app.Client = kickoffsdk.NewClient(kickoffsdk.Options{
		BaseURL: app.cfg.APIURL,
		HTTPClient: &http.Client{
			Timeout:   app.cfg.HTTPTimeout,
			Transport: slogx.NewTransport(nil, app.logger),
		},
		Credentials: app.creds,
		Navigator:   app,
		Logger:      app.logger,
		UserAgent:   "kickoff-cli/" + BuildVersion,
		RateLimit:   rate.Limit(app.cfg.RateLimitRPS),
		RateBurst:   app.cfg.RateLimitBurst,
	})

	app.Cache = querycache.New(querycache.Config{
		StaleTime: app.cfg.CacheStaleTime,
		GCTime:    app.cfg.CacheGCTime,
	})
	app.Cache.Start(app.logger)

	app.Resources = resources.New(app.Client, app.Cache)
}
