package kickoffsdk

import (
	"context"
	"net/http"
)

type NotificationService struct {
	c *Client
}

func (s *NotificationService) List(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := s.c.getJSON(ctx, "/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := s.c.getJSON(ctx, "/notifications/unread-count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id int64) error {
	return s.c.sendJSON(ctx, http.MethodPatch, pathf("/notifications", id)+"/read", nil, nil)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.c.sendJSON(ctx, http.MethodPatch, "/notifications/read-all", nil, nil)
}
