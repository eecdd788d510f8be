package kickoffsdk

import (
	"context"
	"net/http"
)

type RosterService struct {
	c *Client
}

func membersPath(teamID int64) string {
	return pathf("/teams", teamID) + "/members"
}

// Get returns the members of a team.
func (s *RosterService) Get(ctx context.Context, teamID int64) ([]TeamMember, error) {
	var out []TeamMember
	if err := s.c.getJSON(ctx, membersPath(teamID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *RosterService) UpdateRole(ctx context.Context, teamID, userID int64, role MemberRole) (*TeamMember, error) {
	var out TeamMember
	path := pathf(membersPath(teamID), userID)
	if err := s.c.sendJSON(ctx, http.MethodPatch, path, map[string]MemberRole{"role": role}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *RosterService) Remove(ctx context.Context, teamID, userID int64) error {
	return s.c.sendJSON(ctx, http.MethodDelete, pathf(membersPath(teamID), userID), nil, nil)
}

// Leave removes the logged-in user from the team.
func (s *RosterService) Leave(ctx context.Context, teamID int64) error {
	return s.c.sendJSON(ctx, http.MethodPost, pathf("/teams", teamID)+"/leave", nil, nil)
}
