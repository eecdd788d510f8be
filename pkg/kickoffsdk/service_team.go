package kickoffsdk

import (
	"context"
	"net/http"
)

type TeamService struct {
	c *Client
}

// List returns a page of teams. The backend provides the envelope.
func (s *TeamService) List(ctx context.Context, f TeamFilter) (*Page[Team], error) {
	q := f.values()
	setIf(q, "search", f.Search)
	setIf(q, "city", f.City)

	var out Page[Team]
	if err := s.c.getJSON(ctx, "/teams", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *TeamService) Get(ctx context.Context, id int64) (*Team, error) {
	var out Team
	if err := s.c.getJSON(ctx, pathf("/teams", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Mine returns the teams the logged-in user belongs to.
func (s *TeamService) Mine(ctx context.Context) ([]Team, error) {
	var out []Team
	if err := s.c.getJSON(ctx, "/teams/mine", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *TeamService) Create(ctx context.Context, in TeamInput) (*Team, error) {
	var out Team
	if err := s.c.sendJSON(ctx, http.MethodPost, "/teams", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *TeamService) Update(ctx context.Context, id int64, in TeamInput) (*Team, error) {
	var out Team
	if err := s.c.sendJSON(ctx, http.MethodPatch, pathf("/teams", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *TeamService) Delete(ctx context.Context, id int64) error {
	return s.c.sendJSON(ctx, http.MethodDelete, pathf("/teams", id), nil, nil)
}

// RequestJoin asks to join a team.
func (s *TeamService) RequestJoin(ctx context.Context, teamID int64, message string) (*JoinRequest, error) {
	body := map[string]string{}
	if message != "" {
		body["message"] = message
	}

	var out JoinRequest
	if err := s.c.sendJSON(ctx, http.MethodPost, pathf("/teams", teamID)+"/join-requests", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JoinRequests lists pending join requests of a team (leader only).
func (s *TeamService) JoinRequests(ctx context.Context, teamID int64) ([]JoinRequest, error) {
	var out []JoinRequest
	if err := s.c.getJSON(ctx, pathf("/teams", teamID)+"/join-requests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessJoinRequest approves or rejects a join request.
func (s *TeamService) ProcessJoinRequest(ctx context.Context, teamID, requestID int64, approve bool) (*JoinRequest, error) {
	status := JoinRequestRejected
	if approve {
		status = JoinRequestApproved
	}

	var out JoinRequest
	path := pathf("/teams", teamID) + pathf("/join-requests", requestID)
	if err := s.c.sendJSON(ctx, http.MethodPatch, path, map[string]JoinRequestStatus{"status": status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
