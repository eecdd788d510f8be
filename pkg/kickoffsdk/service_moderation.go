package kickoffsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ModerationService wraps the /mod endpoints (moderators only) and the
// user-facing report endpoint.
type ModerationService struct {
	c *Client
}

func (s *ModerationService) Reports(ctx context.Context, status ReportStatus) ([]Report, error) {
	q := url.Values{}
	setIf(q, "status", string(status))

	var out []Report
	if err := s.c.getJSON(ctx, "/mod/reports", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ModerationService) ResolveReport(ctx context.Context, id int64, action ReportAction, note string) (*Report, error) {
	body := map[string]string{"action": string(action)}
	if note != "" {
		body["note"] = note
	}

	var out Report
	if err := s.c.sendJSON(ctx, http.MethodPatch, pathf("/mod/reports", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PendingVerifications lists teams and fields waiting for verification.
func (s *ModerationService) PendingVerifications(ctx context.Context) ([]Verification, error) {
	var out []Verification
	if err := s.c.getJSON(ctx, "/mod/verifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ModerationService) VerifyTeam(ctx context.Context, id int64, approve bool) (*Team, error) {
	var out Team
	if err := s.c.sendJSON(ctx, http.MethodPatch, pathf("/mod/teams", id)+"/verify", verifyBody(approve), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ModerationService) VerifyField(ctx context.Context, id int64, approve bool) (*Field, error) {
	var out Field
	if err := s.c.sendJSON(ctx, http.MethodPatch, pathf("/mod/fields", id)+"/verify", verifyBody(approve), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search looks up content for moderation. The endpoint answers with a bare
// list, so the envelope is synthesized and Total only counts the returned page.
func (s *ModerationService) Search(ctx context.Context, query string, p ListParams) (*Page[ModerationHit], error) {
	q := p.values()
	setIf(q, "q", query)

	var out []ModerationHit
	if err := s.c.getJSON(ctx, "/mod/search", q, &out); err != nil {
		return nil, err
	}
	return synthesizePage(out, p), nil
}

func (s *ModerationService) BanUser(ctx context.Context, userID int64, reason string) error {
	return s.c.sendJSON(ctx, http.MethodPost, pathf("/mod/users", userID)+"/ban", reasonBody(reason), nil)
}

// Report files a report against a piece of content. Any user may call it.
func (s *ModerationService) Report(ctx context.Context, in CreateReportRequest) (*Report, error) {
	var out Report
	if err := s.c.sendJSON(ctx, http.MethodPost, "/reports", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func verifyBody(approve bool) map[string]bool {
	return map[string]bool{"approved": approve}
}
