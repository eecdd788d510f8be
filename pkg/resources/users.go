package resources

import (
	"context"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

type UserHooks struct {
	svc   *kickoffsdk.UserService
	cache *querycache.Store

	UpdateProfile *Mutation[kickoffsdk.UpdateProfileRequest, *kickoffsdk.User]
}

func newUserHooks(svc *kickoffsdk.UserService, cache *querycache.Store) *UserHooks {
	h := &UserHooks{svc: svc, cache: cache}

	h.UpdateProfile = newMutation("users.update_profile", svc.UpdateProfile,
		func(ctx context.Context, _ kickoffsdk.UpdateProfileRequest, out *kickoffsdk.User) {
			write(ctx, cache, UserKeys.Detail(out.ID), out)
			write(ctx, cache, AuthKeys.CurrentUser(), out)
		},
	)
	return h
}

// Profile reads a public profile. Disabled when id is zero.
func (h *UserHooks) Profile(ctx context.Context, id int64) QueryResult[*kickoffsdk.User] {
	return query(ctx, h.cache, UserKeys.Detail(id), id != 0, func(ctx context.Context) (*kickoffsdk.User, error) {
		return h.svc.Get(ctx, id)
	})
}
