package resources

import (
	"context"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

type UpdateTeamInput struct {
	ID int64
	kickoffsdk.TeamInput
}

type RequestJoinInput struct {
	TeamID  int64
	Message string
}

type ProcessJoinRequestInput struct {
	TeamID    int64
	RequestID int64
	Approve   bool
}

type TeamHooks struct {
	svc   *kickoffsdk.TeamService
	cache *querycache.Store

	Create             *Mutation[kickoffsdk.TeamInput, *kickoffsdk.Team]
	Update             *Mutation[UpdateTeamInput, *kickoffsdk.Team]
	Delete             *Mutation[int64, None]
	RequestJoin        *Mutation[RequestJoinInput, *kickoffsdk.JoinRequest]
	ProcessJoinRequest *Mutation[ProcessJoinRequestInput, *kickoffsdk.JoinRequest]
}

func newTeamHooks(svc *kickoffsdk.TeamService, cache *querycache.Store) *TeamHooks {
	h := &TeamHooks{svc: svc, cache: cache}

	h.Create = newMutation("teams.create", svc.Create,
		func(ctx context.Context, _ kickoffsdk.TeamInput, _ *kickoffsdk.Team) {
			invalidate(ctx, cache, TeamKeys.All())
		},
	)

	h.Update = newMutation("teams.update",
		func(ctx context.Context, in UpdateTeamInput) (*kickoffsdk.Team, error) {
			return svc.Update(ctx, in.ID, in.TeamInput)
		},
		func(ctx context.Context, in UpdateTeamInput, out *kickoffsdk.Team) {
			write(ctx, cache, TeamKeys.Detail(in.ID), out)
			invalidate(ctx, cache, TeamKeys.Lists(), TeamKeys.Mine())
		},
	)

	h.Delete = newMutation("teams.delete", noOutput(svc.Delete),
		func(ctx context.Context, _ int64, _ None) {
			invalidate(ctx, cache, TeamKeys.All())
		},
	)

	h.RequestJoin = newMutation("teams.request_join",
		func(ctx context.Context, in RequestJoinInput) (*kickoffsdk.JoinRequest, error) {
			return svc.RequestJoin(ctx, in.TeamID, in.Message)
		},
		func(ctx context.Context, in RequestJoinInput, _ *kickoffsdk.JoinRequest) {
			invalidate(ctx, cache, TeamKeys.JoinRequests(in.TeamID))
		},
	)

	h.ProcessJoinRequest = newMutation("teams.process_join_request",
		func(ctx context.Context, in ProcessJoinRequestInput) (*kickoffsdk.JoinRequest, error) {
			return svc.ProcessJoinRequest(ctx, in.TeamID, in.RequestID, in.Approve)
		},
		func(ctx context.Context, in ProcessJoinRequestInput, _ *kickoffsdk.JoinRequest) {
			invalidate(ctx, cache, TeamKeys.JoinRequests(in.TeamID), RosterKeys.Team(in.TeamID))
		},
	)

	return h
}

func (h *TeamHooks) List(ctx context.Context, f kickoffsdk.TeamFilter) QueryResult[*kickoffsdk.Page[kickoffsdk.Team]] {
	return query(ctx, h.cache, TeamKeys.List(f), true, func(ctx context.Context) (*kickoffsdk.Page[kickoffsdk.Team], error) {
		return h.svc.List(ctx, f)
	})
}

func (h *TeamHooks) Detail(ctx context.Context, id int64) QueryResult[*kickoffsdk.Team] {
	return query(ctx, h.cache, TeamKeys.Detail(id), id != 0, func(ctx context.Context) (*kickoffsdk.Team, error) {
		return h.svc.Get(ctx, id)
	})
}

func (h *TeamHooks) Mine(ctx context.Context) QueryResult[[]kickoffsdk.Team] {
	return query(ctx, h.cache, TeamKeys.Mine(), true, h.svc.Mine)
}

func (h *TeamHooks) JoinRequests(ctx context.Context, teamID int64) QueryResult[[]kickoffsdk.JoinRequest] {
	return query(ctx, h.cache, TeamKeys.JoinRequests(teamID), teamID != 0, func(ctx context.Context) ([]kickoffsdk.JoinRequest, error) {
		return h.svc.JoinRequests(ctx, teamID)
	})
}
