package kickoffsdk

import (
	"context"
	"net/http"
)

type AttendanceService struct {
	c *Client
}

func (s *AttendanceService) Get(ctx context.Context, matchID int64) (*Attendance, error) {
	var out Attendance
	if err := s.c.getJSON(ctx, pathf("/matches", matchID)+"/attendance", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Respond records the logged-in user's attendance for a match.
func (s *AttendanceService) Respond(ctx context.Context, matchID int64, status AttendanceStatus) (*Attendance, error) {
	var out Attendance
	body := map[string]AttendanceStatus{"status": status}
	if err := s.c.sendJSON(ctx, http.MethodPut, pathf("/matches", matchID)+"/attendance", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
