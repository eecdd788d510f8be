package kickoffsdk

import (
	"context"
	"net/http"
	"strconv"
)

type MatchService struct {
	c *Client
}

// List returns matches. The endpoint answers with a bare list, so the
// envelope is synthesized and Total only counts the returned page.
func (s *MatchService) List(ctx context.Context, f MatchFilter) (*Page[Match], error) {
	q := f.values()
	if f.TeamID > 0 {
		q.Set("teamId", strconv.FormatInt(f.TeamID, 10))
	}
	setIf(q, "status", string(f.Status))

	var out []Match
	if err := s.c.getJSON(ctx, "/matches", q, &out); err != nil {
		return nil, err
	}
	return synthesizePage(out, f.ListParams), nil
}

func (s *MatchService) Get(ctx context.Context, id int64) (*Match, error) {
	var out Match
	if err := s.c.getJSON(ctx, pathf("/matches", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MatchService) Create(ctx context.Context, in CreateMatchRequest) (*Match, error) {
	var out Match
	if err := s.c.sendJSON(ctx, http.MethodPost, "/matches", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Invite invites an opponent team to a match.
func (s *MatchService) Invite(ctx context.Context, matchID, teamID int64) (*MatchInvitation, error) {
	var out MatchInvitation
	body := map[string]int64{"teamId": teamID}
	if err := s.c.sendJSON(ctx, http.MethodPost, pathf("/matches", matchID)+"/invitations", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TeamInvitations lists invitations addressed to a team.
func (s *MatchService) TeamInvitations(ctx context.Context, teamID int64) ([]MatchInvitation, error) {
	var out []MatchInvitation
	if err := s.c.getJSON(ctx, pathf("/teams", teamID)+"/match-invitations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RespondInvitation accepts or declines an invitation.
func (s *MatchService) RespondInvitation(ctx context.Context, invitationID int64, accept bool) (*MatchInvitation, error) {
	status := InvitationDeclined
	if accept {
		status = InvitationAccepted
	}

	var out MatchInvitation
	body := map[string]InvitationStatus{"status": status}
	if err := s.c.sendJSON(ctx, http.MethodPatch, pathf("/match-invitations", invitationID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Result returns the recorded result, or nil when none exists yet. Any
// failure is reported as nil since "no result" is the normal state before
// the match is played.
func (s *MatchService) Result(ctx context.Context, matchID int64) (*MatchResult, error) {
	var out MatchResult
	if err := s.c.getJSON(ctx, pathf("/matches", matchID)+"/result", nil, &out); err != nil {
		s.c.Logger.Debug("match result unavailable", "match_id", matchID, "error", err)
		return nil, nil
	}
	return &out, nil
}

func (s *MatchService) RecordResult(ctx context.Context, matchID int64, in RecordResultRequest) (*MatchResult, error) {
	var out MatchResult
	if err := s.c.sendJSON(ctx, http.MethodPost, pathf("/matches", matchID)+"/result", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
