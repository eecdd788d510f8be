package kickoffsdk

import (
	"context"
	"fmt"
	"net/http"
)

// AuthService covers login, registration and the current session.
type AuthService struct {
	c *Client
}

// Login authenticates with email and password and stores the returned
// credential pair before returning.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return s.authenticate(ctx, "/auth/login", LoginRequest{Email: email, Password: password})
}

// Register creates an account and stores the returned credential pair.
func (s *AuthService) Register(ctx context.Context, in RegisterRequest) (*AuthResponse, error) {
	return s.authenticate(ctx, "/auth/register", in)
}

func (s *AuthService) authenticate(ctx context.Context, path string, in any) (*AuthResponse, error) {
	req, err := NewJSONRequest(http.MethodPost, path, in)
	if err != nil {
		return nil, err
	}
	// A 401 here means bad credentials, not an expired session.
	req.markRetried()

	resp, err := s.c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var out AuthResponse
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}

	if out.AccessToken == "" {
		return nil, fmt.Errorf("%s: response carried no access token", path)
	}
	if err := storeCredentials(ctx, s.c.Credentials, out.Credentials); err != nil {
		return nil, err
	}

	return &out, nil
}

// Logout tells the backend to drop the refresh token and clears the local
// credential pair. The local clear happens even when the backend call fails.
func (s *AuthService) Logout(ctx context.Context) error {
	refreshToken, err := s.c.Credentials.Get(ctx, RefreshTokenKey)
	if err == nil && refreshToken != "" {
		req, reqErr := NewJSONRequest(http.MethodPost, "/auth/logout", RefreshRequest{RefreshToken: refreshToken})
		if reqErr == nil {
			// Never refresh just to log out.
			req.markRetried()
			if _, err := s.c.Do(ctx, req); err != nil {
				s.c.Logger.Debug("backend logout failed", "error", err)
			}
		}
	}

	if err := s.c.Credentials.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

// Refresh exchanges a refresh token for a new access token. It does not touch
// the credential store; Client.Do owns the automatic refresh.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	accessToken, err := s.c.requestRefresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return &RefreshResponse{AccessToken: accessToken}, nil
}

// CurrentUser returns the logged-in user, or nil when there is none. Without
// a stored access token no request is made. Any failure is reported as nil:
// being logged out is a normal state, not an error.
func (s *AuthService) CurrentUser(ctx context.Context) (*User, error) {
	token, err := s.c.Credentials.Get(ctx, AccessTokenKey)
	if err != nil || token == "" {
		return nil, nil
	}

	var user User
	if err := s.c.getJSON(ctx, "/auth/me", nil, &user); err != nil {
		s.c.Logger.Debug("current user unavailable", "error", err)
		return nil, nil
	}
	return &user, nil
}

// ChangePassword updates the password of the logged-in user.
func (s *AuthService) ChangePassword(ctx context.Context, in ChangePasswordRequest) error {
	return s.c.sendJSON(ctx, http.MethodPut, "/auth/password", in, nil)
}
