package kickoffsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aussiebroadwan/kickoff/pkg/cryptox"
	"github.com/aussiebroadwan/kickoff/pkg/slogx"
	"github.com/oklog/ulid/v2"
)

// Response is a successful (2xx) backend response with its body read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if v == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Do sends req and returns the response, or an *APIError for a non-2xx
// status. A 401 triggers the refresh protocol once per request:
//
//  1. the request is marked Retried, a second 401 propagates as-is
//  2. without a stored refresh token the original 401 is returned
//  3. the refresh endpoint is called; on success the new access token is
//     stored, copied into the request and the request is resent once
//  4. on refresh failure both tokens are cleared, the Navigator redirects to
//     login and the refresh error (matching ErrSessionExpired) is returned
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.send(ctx, req)
	if err == nil || !IsStatus(err, http.StatusUnauthorized) {
		return resp, err
	}

	if !req.markRetried() {
		return nil, err
	}

	refreshToken, storeErr := c.Credentials.Get(ctx, RefreshTokenKey)
	if storeErr != nil {
		c.Logger.Warn("failed to read refresh token", "error", storeErr)
		return nil, err
	}
	if refreshToken == "" {
		return nil, err
	}

	accessToken, refreshErr := c.refreshAccessToken(ctx, refreshToken)
	if refreshErr != nil {
		return nil, refreshErr
	}

	req.setHeader("Authorization", "Bearer "+accessToken)
	return c.send(ctx, req)
}

// send performs a single round trip without any retry logic.
func (c *Client) send(ctx context.Context, req *Request) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	reqID := req.Header.Get(slogx.RequestIDHeader)
	if reqID == "" {
		reqID = ulid.Make().String()
	}
	ctx = slogx.WithRequestID(slogx.WithContext(ctx, slogx.FromContextOr(ctx, c.Logger)), reqID)

	httpReq, err := req.build(ctx, c.BaseURL)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set(slogx.RequestIDHeader, reqID)
	httpReq.Header.Set("User-Agent", c.UserAgent)

	if httpReq.Header.Get("Authorization") == "" {
		token, err := c.Credentials.Get(ctx, AccessTokenKey)
		if err != nil {
			return nil, fmt.Errorf("failed to read access token: %w", err)
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	httpResp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, parseErrorResponse(httpResp.StatusCode, body)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
	}, nil
}

// refreshAccessToken exchanges the refresh token for a new access token.
// Concurrent callers holding the same refresh token share one refresh call,
// so a failure clears credentials and redirects exactly once.
func (c *Client) refreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	fp := cryptox.FingerprintToken(refreshToken)
	ch := c.refreshes.DoChan(fp, func() (any, error) {
		// Detached so one caller giving up does not fail the shared refresh.
		refreshCtx := context.WithoutCancel(ctx)

		accessToken, err := c.requestRefresh(refreshCtx, refreshToken)
		if err != nil {
			c.forceLogout(refreshCtx, err)
			return "", &RefreshError{Err: err}
		}

		if err := c.Credentials.Set(refreshCtx, AccessTokenKey, accessToken); err != nil {
			c.Logger.Warn("failed to store refreshed access token", "token_fp", fp, "error", err)
		}
		return accessToken, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// requestRefresh calls the refresh endpoint on a bare request: no bearer
// header and no interception, so its own 401 can never recurse.
func (c *Client) requestRefresh(ctx context.Context, refreshToken string) (string, error) {
	body, err := json.Marshal(RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", fmt.Errorf("failed to encode refresh request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/auth/refresh"), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.UserAgent)
	httpReq.Header.Set(slogx.RequestIDHeader, ulid.Make().String())

	httpResp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return "", parseErrorResponse(httpResp.StatusCode, respBody)
	}

	var out RefreshResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if out.AccessToken == "" {
		return "", errors.New("refresh response carried no access token")
	}

	return out.AccessToken, nil
}

// forceLogout clears the credential pair and sends the user to login.
func (c *Client) forceLogout(ctx context.Context, cause error) {
	if err := c.Credentials.Clear(ctx); err != nil {
		c.Logger.Error("failed to clear credentials", "error", err)
	}

	c.Logger.Warn("token refresh failed, redirecting to login",
		"login_path", c.LoginPath,
		"error", cause,
	)
	c.Navigator.RedirectToLogin(ctx)
}
