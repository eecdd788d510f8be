package kickoffsdk

import (
	"context"
	"net/http"
)

type UserService struct {
	c *Client
}

// Get fetches a public profile.
func (s *UserService) Get(ctx context.Context, id int64) (*User, error) {
	var out User
	if err := s.c.getJSON(ctx, pathf("/users", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile patches the logged-in user's profile.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileRequest) (*User, error) {
	var out User
	if err := s.c.sendJSON(ctx, http.MethodPatch, "/users/me", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
