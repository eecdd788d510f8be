package resources

import (
	"context"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

type AttendanceInput struct {
	MatchID int64
	Status  kickoffsdk.AttendanceStatus
}

type AttendanceHooks struct {
	svc   *kickoffsdk.AttendanceService
	cache *querycache.Store

	Respond *Mutation[AttendanceInput, *kickoffsdk.Attendance]
}

func newAttendanceHooks(svc *kickoffsdk.AttendanceService, cache *querycache.Store) *AttendanceHooks {
	h := &AttendanceHooks{svc: svc, cache: cache}

	h.Respond = newMutation("attendance.respond",
		func(ctx context.Context, in AttendanceInput) (*kickoffsdk.Attendance, error) {
			return svc.Respond(ctx, in.MatchID, in.Status)
		},
		func(ctx context.Context, in AttendanceInput, _ *kickoffsdk.Attendance) {
			invalidate(ctx, cache, AttendanceKeys.Match(in.MatchID))
		},
	)
	return h
}

func (h *AttendanceHooks) Get(ctx context.Context, matchID int64) QueryResult[*kickoffsdk.Attendance] {
	return query(ctx, h.cache, AttendanceKeys.Match(matchID), matchID != 0, func(ctx context.Context) (*kickoffsdk.Attendance, error) {
		return h.svc.Get(ctx, matchID)
	})
}
