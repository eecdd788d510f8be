package kickoffsdk

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/kickoff/pkg/slogx"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL points at the local development backend.
	DefaultBaseURL = "http://localhost:3000/api"

	// DefaultLoginPath is where RedirectToLogin sends the user.
	DefaultLoginPath = "/login"

	// Version is reported in the User-Agent header.
	Version = "v0.1.0"
)

// Navigator performs the hard redirect to the login entry point after a
// refresh failure. A browser would reload on /login; a CLI tells the user to
// log in again.
type Navigator interface {
	RedirectToLogin(ctx context.Context)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(ctx context.Context)

func (f NavigatorFunc) RedirectToLogin(ctx context.Context) { f(ctx) }

type noopNavigator struct{}

func (noopNavigator) RedirectToLogin(context.Context) {}

// Options configures a Client. Zero values fall back to sensible defaults.
type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	Credentials CredentialStore
	Navigator   Navigator
	Logger      *slog.Logger
	LoginPath   string
	UserAgent   string

	// RateLimit caps outgoing requests per second. Zero disables limiting.
	RateLimit rate.Limit
	RateBurst int
}

// Client is the single point of egress to the Kick-off backend. It attaches
// the stored bearer token to every request and performs at most one silent
// refresh per request on a 401.
type Client struct {
	BaseURL     string
	HTTPClient  *http.Client
	Credentials CredentialStore
	Navigator   Navigator
	Logger      *slog.Logger
	LoginPath   string
	UserAgent   string

	limiter   *rate.Limiter
	refreshes singleflight.Group

	Auth          *AuthService
	Users         *UserService
	Teams         *TeamService
	Roster        *RosterService
	Fields        *FieldService
	Bookings      *BookingService
	Matches       *MatchService
	Attendance    *AttendanceService
	Finance       *FinanceService
	Moderation    *ModerationService
	Media         *MediaService
	Notifications *NotificationService
	Search        *SearchService
	Community     *CommunityService
}

// NewClient creates a client and its service modules.
func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   30 * time.Second,
			Transport: slogx.NewTransport(nil, logger),
		}
	}

	creds := opts.Credentials
	if creds == nil {
		creds = NewMemoryCredentialStore()
	}

	var nav Navigator = noopNavigator{}
	if opts.Navigator != nil {
		nav = opts.Navigator
	}

	c := &Client{
		BaseURL:     strings.TrimSuffix(baseURL, "/"),
		HTTPClient:  httpClient,
		Credentials: creds,
		Navigator:   nav,
		Logger:      logger,
		LoginPath:   opts.LoginPath,
		UserAgent:   opts.UserAgent,
	}
	if c.LoginPath == "" {
		c.LoginPath = DefaultLoginPath
	}
	if c.UserAgent == "" {
		c.UserAgent = "kickoff-sdk/" + Version
	}

	if opts.RateLimit > 0 {
		burst := max(opts.RateBurst, 1)
		c.limiter = rate.NewLimiter(opts.RateLimit, burst)
	}

	c.Auth = &AuthService{c: c}
	c.Users = &UserService{c: c}
	c.Teams = &TeamService{c: c}
	c.Roster = &RosterService{c: c}
	c.Fields = &FieldService{c: c}
	c.Bookings = &BookingService{c: c}
	c.Matches = &MatchService{c: c}
	c.Attendance = &AttendanceService{c: c}
	c.Finance = &FinanceService{c: c}
	c.Moderation = &ModerationService{c: c}
	c.Media = &MediaService{c: c}
	c.Notifications = &NotificationService{c: c}
	c.Search = &SearchService{c: c}
	c.Community = &CommunityService{c: c}

	return c
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}
