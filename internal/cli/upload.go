package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/aussiebroadwan/kickoff/pkg/resources"
)

func uploadCommand() *cli.Command {
	return &cli.Command{
		Name:      "upload",
		Usage:     "Attach a file to a team, field, user or post",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "owner-type", Usage: "team, field, user or post", Required: true},
			&cli.Int64Flag{Name: "entity", Usage: "Id of the owning entity", Required: true},
		},
		Action: uploadAction,
	}
}

func uploadAction(c *cli.Context) error {
	a, err := application(c)
	if err != nil {
		return err
	}

	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("missing FILE argument")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := a.Resources.Media.Upload.Mutate(c.Context, resources.UploadInput{
		OwnerType: c.String("owner-type"),
		EntityID:  c.Int64("entity"),
		Filename:  filepath.Base(path),
		Content:   f,
	})
	if err != nil {
		return err
	}
	return newPrinter(c).line(m, "uploaded %s", m.URL)
}
