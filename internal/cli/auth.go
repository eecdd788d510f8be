package cli

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/aussiebroadwan/kickoff/internal/cli/app"
	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/resources"
)

func credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Account email", Required: true},
		&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Account password", EnvVars: []string{"KICKOFF_PASSWORD"}, Required: true},
	}
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Sign in and store the session",
		Flags: credentialFlags(),
		Action: func(c *cli.Context) error {
			a, err := application(c)
			if err != nil {
				return err
			}

			res, err := a.Resources.Auth.Login.Mutate(c.Context, resources.LoginInput{
				Email:    c.String("email"),
				Password: c.String("password"),
			})
			if err != nil {
				return err
			}
			return newPrinter(c).line(res.User, "signed in as %s", userName(res.User))
		},
	}
}

func registerCommand() *cli.Command {
	flags := append(credentialFlags(),
		&cli.StringFlag{Name: "name", Usage: "Full name", Required: true},
		&cli.StringFlag{Name: "phone", Usage: "Phone number"},
		&cli.StringFlag{Name: "role", Usage: "Account role (player, field_owner)", Value: string(kickoffsdk.RolePlayer)},
	)

	return &cli.Command{
		Name:  "register",
		Usage: "Create an account and sign in",
		Flags: flags,
		Action: func(c *cli.Context) error {
			a, err := application(c)
			if err != nil {
				return err
			}

			res, err := a.Resources.Auth.Register.Mutate(c.Context, kickoffsdk.RegisterRequest{
				Email:    c.String("email"),
				Password: c.String("password"),
				FullName: c.String("name"),
				Phone:    c.String("phone"),
				Role:     kickoffsdk.Role(c.String("role")),
			})
			if err != nil {
				return err
			}
			return newPrinter(c).line(res.User, "registered and signed in as %s", userName(res.User))
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "End the session and forget stored tokens",
		Action: func(c *cli.Context) error {
			a, err := application(c)
			if err != nil {
				return err
			}

			// The local session is gone either way; a server error is only worth a warning.
			if _, err := a.Resources.Auth.Logout.Mutate(c.Context, resources.None{}); err != nil {
				a.Logger().Warn("server logout failed", "error", err)
			}
			return newPrinter(c).line(map[string]bool{"signedOut": true}, "signed out")
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the signed-in user",
		Action: func(c *cli.Context) error {
			a, err := application(c)
			if err != nil {
				return err
			}

			res := a.Resources.Auth.CurrentUser(c.Context)
			if res.Err != nil {
				return res.Err
			}
			if res.Data == nil {
				return kickoffsdk.ErrNotAuthenticated
			}

			u := res.Data
			return newPrinter(c).line(u, "%s <%s> (%s)", u.FullName, u.Email, u.Role)
		},
	}
}

// sessionStatus is what `kickoff status` reports.
type sessionStatus struct {
	APIURL          string     `json:"apiUrl"`
	CredentialStore string     `json:"credentialStore"`
	SignedIn        bool       `json:"signedIn"`
	Subject         string     `json:"subject,omitempty"`
	Email           string     `json:"email,omitempty"`
	Role            string     `json:"role,omitempty"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	HasRefreshToken bool       `json:"hasRefreshToken"`
}

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the stored session without calling the backend",
		Action: func(c *cli.Context) error {
			a, err := application(c)
			if err != nil {
				return err
			}
			st, err := readStatus(c, a)
			if err != nil {
				return err
			}

			p := newPrinter(c)
			if !st.SignedIn {
				return p.line(st, "not signed in (%s, %s store)", st.APIURL, st.CredentialStore)
			}

			expiry := "unknown"
			if st.ExpiresAt != nil {
				expiry = formatTime(*st.ExpiresAt)
			}
			return p.line(st, "signed in as %s (%s), access token expires %s, %s store",
				st.Email, st.Role, expiry, st.CredentialStore)
		},
	}
}

func readStatus(c *cli.Context, a *app.Application) (sessionStatus, error) {
	cfg := a.Config()
	st := sessionStatus{APIURL: cfg.APIURL, CredentialStore: cfg.CredentialStore}

	access, err := a.Credentials().Get(c.Context, kickoffsdk.AccessTokenKey)
	if err != nil {
		return st, err
	}
	refresh, err := a.Credentials().Get(c.Context, kickoffsdk.RefreshTokenKey)
	if err != nil {
		return st, err
	}
	st.HasRefreshToken = refresh != ""

	if access == "" {
		return st, nil
	}
	st.SignedIn = true

	// Opaque tokens are fine, there is just nothing more to show.
	claims, err := kickoffsdk.ParseAccessToken(access)
	if err != nil {
		a.Logger().Debug("access token is not a readable JWT", "error", err)
		return st, nil
	}
	st.Subject = claims.Subject
	st.Email = claims.Email
	st.Role = claims.Role
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		st.ExpiresAt = &exp
	}
	return st, nil
}
