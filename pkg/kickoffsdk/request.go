package kickoffsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// RetryState tracks the refresh-and-resend sequence of a single request.
// A request moves from NotYetRetried to Retried at most once.
type RetryState int

const (
	NotYetRetried RetryState = iota
	Retried
)

func (s RetryState) String() string {
	switch s {
	case NotYetRetried:
		return "not_yet_retried"
	case Retried:
		return "retried"
	default:
		return fmt.Sprintf("RetryState(%d)", int(s))
	}
}

// Request describes one backend call. Body holds already encoded bytes so the
// request can be sent again verbatim after a token refresh.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        []byte
	ContentType string
	Header      http.Header

	retry RetryState
}

// NewRequest builds a descriptor without a body.
func NewRequest(method, path string) *Request {
	return &Request{Method: method, Path: path, Header: make(http.Header)}
}

// NewJSONRequest builds a descriptor whose body is v encoded as JSON.
func NewJSONRequest(method, path string, v any) (*Request, error) {
	req := NewRequest(method, path)
	if v == nil {
		return req, nil
	}

	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	req.Body = body
	req.ContentType = "application/json"
	return req, nil
}

// RetryState reports where the request is in the refresh sequence.
func (r *Request) RetryState() RetryState { return r.retry }

// WithQuery sets query parameters and returns the request for chaining.
func (r *Request) WithQuery(q url.Values) *Request {
	r.Query = q
	return r
}

// markRetried flips the state and reports whether it was still NotYetRetried.
func (r *Request) markRetried() bool {
	if r.retry == Retried {
		return false
	}
	r.retry = Retried
	return true
}

func (r *Request) setHeader(key, value string) {
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	r.Header.Set(key, value)
}

// build turns the descriptor into an *http.Request against baseURL.
func (r *Request) build(ctx context.Context, baseURL string) (*http.Request, error) {
	target := baseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	return req, nil
}
