package resources

import (
	"context"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

type NotificationHooks struct {
	svc   *kickoffsdk.NotificationService
	cache *querycache.Store

	MarkRead    *Mutation[int64, None]
	MarkAllRead *Mutation[None, None]
}

func newNotificationHooks(svc *kickoffsdk.NotificationService, cache *querycache.Store) *NotificationHooks {
	h := &NotificationHooks{svc: svc, cache: cache}

	h.MarkRead = newMutation("notifications.mark_read", noOutput(svc.MarkRead),
		func(ctx context.Context, _ int64, _ None) {
			invalidate(ctx, cache, NotificationKeys.All())
		},
	)

	h.MarkAllRead = newMutation("notifications.mark_all_read",
		func(ctx context.Context, _ None) (None, error) {
			return None{}, svc.MarkAllRead(ctx)
		},
		func(ctx context.Context, _ None, _ None) {
			invalidate(ctx, cache, NotificationKeys.All())
		},
	)

	return h
}

func (h *NotificationHooks) List(ctx context.Context) QueryResult[[]kickoffsdk.Notification] {
	return query(ctx, h.cache, NotificationKeys.List(), true, h.svc.List)
}

func (h *NotificationHooks) UnreadCount(ctx context.Context) QueryResult[int] {
	return query(ctx, h.cache, NotificationKeys.UnreadCount(), true, h.svc.UnreadCount)
}
