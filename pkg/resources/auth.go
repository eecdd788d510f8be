package resources

import (
	"context"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/querycache"
)

// LoginInput carries the credentials for the Login mutation.
type LoginInput struct {
	Email    string
	Password string
}

// AuthHooks exposes the session reads and mutations.
type AuthHooks struct {
	svc   *kickoffsdk.AuthService
	cache *querycache.Store

	Login          *Mutation[LoginInput, *kickoffsdk.AuthResponse]
	Register       *Mutation[kickoffsdk.RegisterRequest, *kickoffsdk.AuthResponse]
	Logout         *Mutation[None, None]
	ChangePassword *Mutation[kickoffsdk.ChangePasswordRequest, None]
}

func newAuthHooks(svc *kickoffsdk.AuthService, cache *querycache.Store) *AuthHooks {
	h := &AuthHooks{svc: svc, cache: cache}

	setUser := func(ctx context.Context, out *kickoffsdk.AuthResponse) {
		write(ctx, cache, AuthKeys.CurrentUser(), out.User)
	}

	h.Login = newMutation("auth.login",
		func(ctx context.Context, in LoginInput) (*kickoffsdk.AuthResponse, error) {
			return svc.Login(ctx, in.Email, in.Password)
		},
		func(ctx context.Context, _ LoginInput, out *kickoffsdk.AuthResponse) { setUser(ctx, out) },
	)

	h.Register = newMutation("auth.register", svc.Register,
		func(ctx context.Context, _ kickoffsdk.RegisterRequest, out *kickoffsdk.AuthResponse) {
			setUser(ctx, out)
		},
	)

	// Logout always ends with an empty cache, even when the server call or
	// the credential store failed, because the service drops credentials
	// unconditionally. Unlike other mutations its effects run in the action.
	h.Logout = newMutation("auth.logout",
		func(ctx context.Context, _ None) (None, error) {
			err := svc.Logout(ctx)
			write(ctx, cache, AuthKeys.CurrentUser(), (*kickoffsdk.User)(nil))
			cache.Clear()
			return None{}, err
		},
		nil,
	)

	h.ChangePassword = newMutation("auth.change_password",
		noOutput(svc.ChangePassword),
		nil,
	)

	return h
}

// CurrentUser reads the signed-in user. Data is nil when nobody is signed in.
func (h *AuthHooks) CurrentUser(ctx context.Context) QueryResult[*kickoffsdk.User] {
	return query(ctx, h.cache, AuthKeys.CurrentUser(), true, h.svc.CurrentUser)
}
