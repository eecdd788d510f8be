package cli

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/aussiebroadwan/kickoff/pkg/kickoffsdk"
	"github.com/aussiebroadwan/kickoff/pkg/resources"
)

func teamsCommand() *cli.Command {
	return &cli.Command{
		Name:  "teams",
		Usage: "Browse and manage teams",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List teams",
				Flags: append(pageFlags(),
					&cli.StringFlag{Name: "search", Aliases: []string{"q"}, Usage: "Name filter"},
					&cli.StringFlag{Name: "city", Usage: "City filter"},
				),
				Action: teamsListAction,
			},
			{
				Name:      "show",
				Usage:     "Show one team",
				ArgsUsage: "TEAM_ID",
				Action:    teamsShowAction,
			},
			{
				Name:      "roster",
				Usage:     "List the members of a team",
				ArgsUsage: "TEAM_ID",
				Action:    teamsRosterAction,
			},
			{
				Name:      "join-requests",
				Usage:     "List pending join requests of a team",
				ArgsUsage: "TEAM_ID",
				Action:    teamsJoinRequestsAction,
			},
			{
				Name:      "process-join",
				Usage:     "Approve or reject a join request",
				ArgsUsage: "TEAM_ID REQUEST_ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "reject", Usage: "Reject instead of approve"},
				},
				Action: teamsProcessJoinAction,
			},
		},
	}
}

func teamsListAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}

	res := a.Resources.Teams.List(c.Context, kickoffsdk.TeamFilter{
		ListParams: kickoffsdk.ListParams{Page: c.Int("page"), Limit: c.Int("limit")},
		Search:     c.String("search"),
		City:       c.String("city"),
	})
	if res.Err != nil {
		return res.Err
	}

	page := res.Data
	return newPrinter(c).table(page, "ID\tNAME\tCITY\tMEMBERS\tVERIFIED", func(w io.Writer) {
		for _, t := range page.Data {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%t\n", t.ID, t.Name, t.City, t.MemberCount, t.Verified)
		}
		pageFooter(w, page)
	})
}

func teamsShowAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}
	id, err := idArg(c, 0, "team id")
	if err != nil {
		return err
	}

	res := a.Resources.Teams.Detail(c.Context, id)
	if res.Err != nil {
		return res.Err
	}

	t := res.Data
	return newPrinter(c).line(t, "%s (#%d)\ncity: %s\nmembers: %d\nverified: %t\n%s",
		t.Name, t.ID, t.City, t.MemberCount, t.Verified, t.Description)
}

func teamsRosterAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}
	id, err := idArg(c, 0, "team id")
	if err != nil {
		return err
	}

	res := a.Resources.Roster.Members(c.Context, id)
	if res.Err != nil {
		return res.Err
	}

	return newPrinter(c).table(res.Data, "USER\tNAME\tROLE\tPOSITION\tNUMBER", func(w io.Writer) {
		for _, m := range res.Data {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", m.UserID, userName(m.User), m.Role, m.Position, m.JerseyNumber)
		}
	})
}

func teamsJoinRequestsAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}
	id, err := idArg(c, 0, "team id")
	if err != nil {
		return err
	}

	res := a.Resources.Teams.JoinRequests(c.Context, id)
	if res.Err != nil {
		return res.Err
	}

	return newPrinter(c).table(res.Data, "ID\tUSER\tSTATUS\tREQUESTED\tMESSAGE", func(w io.Writer) {
		for _, r := range res.Data {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, userName(r.User), r.Status, formatTime(r.CreatedAt), r.Message)
		}
	})
}

func teamsProcessJoinAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}
	teamID, err := idArg(c, 0, "team id")
	if err != nil {
		return err
	}
	requestID, err := idArg(c, 1, "request id")
	if err != nil {
		return err
	}

	jr, err := a.Resources.Teams.ProcessJoinRequest.Mutate(c.Context, resources.ProcessJoinRequestInput{
		TeamID:    teamID,
		RequestID: requestID,
		Approve:   !c.Bool("reject"),
	})
	if err != nil {
		return err
	}
	return newPrinter(c).line(jr, "join request %d is now %s", jr.ID, jr.Status)
}
