package resources

import (
	"context"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

type MemberInput struct {
	TeamID int64
	UserID int64
}

type UpdateRoleInput struct {
	TeamID int64
	UserID int64
	Role   kickoffsdk.MemberRole
}

type RosterHooks struct {
	svc   *kickoffsdk.RosterService
	cache *querycache.Store

	UpdateRole *Mutation[UpdateRoleInput, *kickoffsdk.TeamMember]
	Remove     *Mutation[MemberInput, None]
	Leave      *Mutation[int64, None]
}

func newRosterHooks(svc *kickoffsdk.RosterService, cache *querycache.Store) *RosterHooks {
	h := &RosterHooks{svc: svc, cache: cache}

	h.UpdateRole = newMutation("roster.update_role",
		func(ctx context.Context, in UpdateRoleInput) (*kickoffsdk.TeamMember, error) {
			return svc.UpdateRole(ctx, in.TeamID, in.UserID, in.Role)
		},
		func(ctx context.Context, in UpdateRoleInput, _ *kickoffsdk.TeamMember) {
			invalidate(ctx, cache, RosterKeys.Team(in.TeamID))
		},
	)

	h.Remove = newMutation("roster.remove",
		func(ctx context.Context, in MemberInput) (None, error) {
			return None{}, svc.Remove(ctx, in.TeamID, in.UserID)
		},
		func(ctx context.Context, in MemberInput, _ None) {
			invalidate(ctx, cache, RosterKeys.Team(in.TeamID))
		},
	)

	h.Leave = newMutation("roster.leave", noOutput(svc.Leave),
		func(ctx context.Context, teamID int64, _ None) {
			invalidate(ctx, cache, RosterKeys.Team(teamID), TeamKeys.Mine())
		},
	)

	return h
}

// Members reads a team roster. Disabled when teamID is zero.
func (h *RosterHooks) Members(ctx context.Context, teamID int64) QueryResult[[]kickoffsdk.TeamMember] {
	return query(ctx, h.cache, RosterKeys.Team(teamID), teamID != 0, func(ctx context.Context) ([]kickoffsdk.TeamMember, error) {
		return h.svc.Get(ctx, teamID)
	})
}
