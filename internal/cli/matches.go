package cli

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/resources"
)

func matchesCommand() *cli.Command {
	return &cli.Command{
		Name:  "matches",
		Usage: "Find matches and answer invitations",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List matches",
				Flags: append(pageFlags(),
					&cli.Int64Flag{Name: "team", Usage: "Only matches of this team"},
					&cli.StringFlag{Name: "status", Usage: "open, scheduled, finished or cancelled"},
				),
				Action: matchesListAction,
			},
			{
				Name:      "show",
				Usage:     "Show one match and its result",
				ArgsUsage: "MATCH_ID",
				Action:    matchesShowAction,
			},
			{
				Name:      "respond",
				Usage:     "Accept or decline a match invitation",
				ArgsUsage: "INVITATION_ID",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "team", Usage: "Invited team", Required: true},
					&cli.Int64Flag{Name: "match", Usage: "Match of the invitation", Required: true},
					&cli.BoolFlag{Name: "decline", Usage: "Decline instead of accept"},
				},
				Action: matchesRespondAction,
			},
		},
	}
}

func matchesListAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}

	res := a.Resources.Matches.List(c.Context, kickoffsdk.MatchFilter{
		ListParams: kickoffsdk.ListParams{Page: c.Int("page"), Limit: c.Int("limit")},
		TeamID:     c.Int64("team"),
		Status:     kickoffsdk.MatchStatus(c.String("status")),
	})
	if res.Err != nil {
		return res.Err
	}

	page := res.Data
	return newPrinter(c).table(page, "ID\tHOME\tAWAY\tSTART\tSTATUS", func(w io.Writer) {
		for _, m := range page.Data {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				m.ID, teamName(m.HomeTeam, m.HomeTeamID), teamName(m.AwayTeam, m.AwayTeamID), formatTime(m.StartTime), m.Status)
		}
		pageFooter(w, page)
	})
}

// matchView pairs a match with its result, which may not exist yet.
type matchView struct {
	*kickoffsdk.Match
	Result *kickoffsdk.MatchResult `json:"result"`
}

func matchesShowAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}
	id, err := idArg(c, 0, "match id")
	if err != nil {
		return err
	}

	res := a.Resources.Matches.Detail(c.Context, id)
	if res.Err != nil {
		return res.Err
	}
	result := a.Resources.Matches.Result(c.Context, id)
	if result.Err != nil {
		return result.Err
	}

	m := res.Data
	view := matchView{Match: m, Result: result.Data}
	score := "no result yet"
	if result.Data != nil {
		score = fmt.Sprintf("%d - %d", result.Data.HomeScore, result.Data.AwayScore)
	}
	return newPrinter(c).line(view, "%s vs %s\nstart: %s\nstatus: %s\nscore: %s",
		teamName(m.HomeTeam, m.HomeTeamID), teamName(m.AwayTeam, m.AwayTeamID), formatTime(m.StartTime), m.Status, score)
}

func matchesRespondAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}
	id, err := idArg(c, 0, "invitation id")
	if err != nil {
		return err
	}

	inv, err := a.Resources.Matches.RespondInvitation.Mutate(c.Context, resources.RespondInvitationInput{
		InvitationID: id,
		TeamID:       c.Int64("team"),
		MatchID:      c.Int64("match"),
		Accept:       !c.Bool("decline"),
	})
	if err != nil {
		return err
	}
	return newPrinter(c).line(inv, "invitation %d %s", inv.ID, inv.Status)
}
