package cli

import (
	"context"
	"fmt"

	"github.com/appmode/nbpack/internal/commands/check"
	"github.com/appmode/nbpack/internal/commands/describe"
	"github.com/appmode/nbpack/internal/commands/initialize"
	"github.com/appmode/nbpack/internal/commands/show"
	"github.com/appmode/nbpack/internal/commands/stage"
	"github.com/appmode/nbpack/internal/commands/syncver"
	"github.com/appmode/nbpack/internal/config"
	"github.com/appmode/nbpack/internal/printer"
	"github.com/appmode/nbpack/internal/tui"
	"github.com/appmode/nbpack/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds the root nbpack command.
func New(cfg *config.Config, prompter tui.Prompter) *urfavecli.Command {
	var noColor, verbose bool

	return &urfavecli.Command{
		Name:                  "nbpack",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Build-time packaging helper for the appmode notebook extension",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "root",
				Aliases:     []string{"r"},
				Usage:       "Package root containing appmode/__init__.py",
				DefaultText: cfg.Root,
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColor,
			},
			&urfavecli.BoolFlag{
				Name:        "verbose",
				Usage:       "Print diagnostic output",
				Destination: &verbose,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColor)
			printer.SetVerbose(verbose)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			initialize.Run(),
			show.Run(cfg),
			describe.Run(cfg, prompter),
			check.Run(cfg),
			stage.Run(cfg),
			syncver.Run(cfg),
		},
	}
}
