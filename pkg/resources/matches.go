package resources

import (
	"context"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

type InviteInput struct {
	MatchID int64
	TeamID  int64
}

// RespondInvitationInput names the invited team and the match so the
// affected cache entries can be found after the response.
type RespondInvitationInput struct {
	InvitationID int64
	TeamID       int64
	MatchID      int64
	Accept       bool
}

type RecordResultInput struct {
	MatchID int64
	kickoffsdk.RecordResultRequest
}

type MatchHooks struct {
	svc   *kickoffsdk.MatchService
	cache *querycache.Store

	Create            *Mutation[kickoffsdk.CreateMatchRequest, *kickoffsdk.Match]
	Invite            *Mutation[InviteInput, *kickoffsdk.MatchInvitation]
	RespondInvitation *Mutation[RespondInvitationInput, *kickoffsdk.MatchInvitation]
	RecordResult      *Mutation[RecordResultInput, *kickoffsdk.MatchResult]
}

func newMatchHooks(svc *kickoffsdk.MatchService, cache *querycache.Store) *MatchHooks {
	h := &MatchHooks{svc: svc, cache: cache}

	h.Create = newMutation("matches.create", svc.Create,
		func(ctx context.Context, _ kickoffsdk.CreateMatchRequest, _ *kickoffsdk.Match) {
			invalidate(ctx, cache, MatchKeys.Lists())
		},
	)

	h.Invite = newMutation("matches.invite",
		func(ctx context.Context, in InviteInput) (*kickoffsdk.MatchInvitation, error) {
			return svc.Invite(ctx, in.MatchID, in.TeamID)
		},
		func(ctx context.Context, in InviteInput, _ *kickoffsdk.MatchInvitation) {
			invalidate(ctx, cache, MatchKeys.Detail(in.MatchID))
		},
	)

	h.RespondInvitation = newMutation("matches.respond_invitation",
		func(ctx context.Context, in RespondInvitationInput) (*kickoffsdk.MatchInvitation, error) {
			return svc.RespondInvitation(ctx, in.InvitationID, in.Accept)
		},
		func(ctx context.Context, in RespondInvitationInput, _ *kickoffsdk.MatchInvitation) {
			invalidate(ctx, cache, MatchKeys.Invitations(in.TeamID), MatchKeys.Detail(in.MatchID))
		},
	)

	h.RecordResult = newMutation("matches.record_result",
		func(ctx context.Context, in RecordResultInput) (*kickoffsdk.MatchResult, error) {
			return svc.RecordResult(ctx, in.MatchID, in.RecordResultRequest)
		},
		func(ctx context.Context, in RecordResultInput, out *kickoffsdk.MatchResult) {
			write(ctx, cache, MatchKeys.Result(in.MatchID), out)
			invalidate(ctx, cache, MatchKeys.Detail(in.MatchID), MatchKeys.Lists())
		},
	)

	return h
}

func (h *MatchHooks) List(ctx context.Context, f kickoffsdk.MatchFilter) QueryResult[*kickoffsdk.Page[kickoffsdk.Match]] {
	return query(ctx, h.cache, MatchKeys.List(f), true, func(ctx context.Context) (*kickoffsdk.Page[kickoffsdk.Match], error) {
		return h.svc.List(ctx, f)
	})
}

func (h *MatchHooks) Detail(ctx context.Context, id int64) QueryResult[*kickoffsdk.Match] {
	return query(ctx, h.cache, MatchKeys.Detail(id), id != 0, func(ctx context.Context) (*kickoffsdk.Match, error) {
		return h.svc.Get(ctx, id)
	})
}

func (h *MatchHooks) Invitations(ctx context.Context, teamID int64) QueryResult[[]kickoffsdk.MatchInvitation] {
	return query(ctx, h.cache, MatchKeys.Invitations(teamID), teamID != 0, func(ctx context.Context) ([]kickoffsdk.MatchInvitation, error) {
		return h.svc.TeamInvitations(ctx, teamID)
	})
}

// Result reads the recorded score. Data is nil while no result exists.
func (h *MatchHooks) Result(ctx context.Context, matchID int64) QueryResult[*kickoffsdk.MatchResult] {
	return query(ctx, h.cache, MatchKeys.Result(matchID), matchID != 0, func(ctx context.Context) (*kickoffsdk.MatchResult, error) {
		return h.svc.Result(ctx, matchID)
	})
}
