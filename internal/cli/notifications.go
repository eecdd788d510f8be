package cli

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/aussiebroadwan/kickoff/pkg/resources"
)

func notificationsCommand() *cli.Command {
	return &cli.Command{
		Name:    "notifications",
		Aliases: []string{"notif"},
		Usage:   "Read notifications",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List notifications",
				Action: notificationsListAction,
			},
			{
				Name:   "read-all",
				Usage:  "Mark every notification as read",
				Action: notificationsReadAllAction,
			},
		},
	}
}

func notificationsListAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}

	res := a.Resources.Notifications.List(c.Context)
	if res.Err != nil {
		return res.Err
	}

	return newPrinter(c).table(res.Data, "ID\tREAD\tWHEN\tTITLE", func(w io.Writer) {
		for _, n := range res.Data {
			mark := " "
			if n.Read {
				mark = "x"
			}
			fmt.Fprintf(w, "%d\t[%s]\t%s\t%s\n", n.ID, mark, formatTime(n.CreatedAt), n.Title)
		}
	})
}

func notificationsReadAllAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}

	if _, err := a.Resources.Notifications.MarkAllRead.Mutate(c.Context, resources.None{}); err != nil {
		return err
	}
	return newPrinter(c).line(map[string]bool{"ok": true}, "all notifications marked as read")
}
