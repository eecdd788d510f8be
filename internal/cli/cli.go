// Package cli is the kickoff command line front end over the SDK.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/aussiebroadwan/kickoff/internal/cli/app"
	"github.com/aussiebroadwan/kickoff/pkg/slogx"
)

const applicationKey = "application"

// Options lets callers, tests in particular, replace the outputs and the
// way the Application is built.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer

	// NewApplication defaults to loading the config from the environment.
	NewApplication func(ctx context.Context, stderr io.Writer) (*app.Application, error)
}

func defaultApplication(ctx context.Context, stderr io.Writer) (*app.Application, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return app.New(ctx, cfg, stderr)
}

// NewApp builds the kickoff command tree.
func NewApp(opts Options) *cli.App {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.NewApplication == nil {
		opts.NewApplication = defaultApplication
	}

	return &cli.App{
		Name:      "kickoff",
		Usage:     "Command line client for the Kick-off football platform",
		Version:   app.BuildVersion,
		Writer:    opts.Stdout,
		ErrWriter: opts.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print results as JSON",
			},
		},
		Before: func(c *cli.Context) error {
			// Help and version need no backend.
			if c.Args().Len() == 0 {
				return nil
			}
			application, err := opts.NewApplication(c.Context, opts.Stderr)
			if err != nil {
				return err
			}
			c.App.Metadata = map[string]any{applicationKey: application}
			c.Context = slogx.WithContext(c.Context, application.Logger())
			return nil
		},
		After: func(c *cli.Context) error {
			if application, ok := c.App.Metadata[applicationKey].(*app.Application); ok {
				return application.Close()
			}
			return nil
		},
		// main decides exit codes.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			loginCommand(),
			registerCommand(),
			logoutCommand(),
			whoamiCommand(),
			statusCommand(),
			teamsCommand(),
			fieldsCommand(),
			bookingsCommand(),
			matchesCommand(),
			notificationsCommand(),
			uploadCommand(),
		},
	}
}

var errNoApplication = errors.New("application not initialized")

// application returns the Application built in Before.
func application(c *cli.Context) (*app.Application, error) {
	application, ok := c.App.Metadata[applicationKey].(*app.Application)
	if !ok {
		return nil, errNoApplication
	}
	return application, nil
}

// idArg parses the positional argument at i as an id.
func idArg(c *cli.Context, i int, name string) (int64, error) {
	raw := c.Args().Get(i)
	if raw == "" {
		return 0, fmt.Errorf("missing %s argument", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "page", Usage: "Page number", Value: 1},
		&cli.IntFlag{Name: "limit", Usage: "Page size", Value: 20},
	}
}
