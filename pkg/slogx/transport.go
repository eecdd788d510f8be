package slogx

import (
	"log/slog"
	"net/http"
	"time"
)

// RequestIDHeader is the header outgoing requests are correlated by.
const RequestIDHeader = "X-Request-ID"

// Transport is an http.RoundTripper that logs every outgoing request once it
// completes. A logger carried by the request context wins over Logger.
// The Authorization header is never logged.
type Transport struct {
	Base   http.RoundTripper
	Logger *slog.Logger
}

// NewTransport wraps base (http.DefaultTransport when nil).
func NewTransport(base http.RoundTripper, logger *slog.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{Base: base, Logger: logger}
}

func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()

	ctx := r.Context()
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = FromContextOr(ctx, logger)
	if _, ok := RequestID(ctx); !ok {
		logger = logger.With("req_id", r.Header.Get(RequestIDHeader))
	}
	logger = logger.With("method", r.Method, "path", r.URL.Path)

	resp, err := t.Base.RoundTrip(r)
	duration := time.Since(start).Milliseconds()
	if err != nil {
		logger.Warn("http_request_failed", "error", err, "duration_ms", duration)
		return nil, err
	}

	logger.Debug("http_request",
		"status", resp.StatusCode,
		"duration_ms", duration,
	)
	return resp, nil
}
