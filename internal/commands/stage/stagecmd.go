package stage

import (
	"context"
	"fmt"

	"github.com/appmode/nbpack/internal/clix"
	"github.com/appmode/nbpack/internal/config"
	"github.com/appmode/nbpack/internal/printer"
	staging "github.com/appmode/nbpack/internal/stage"
	"github.com/urfave/cli/v3"
)

// Run returns the "stage" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "stage",
		Usage:     "Copy the data files into their install layout under a prefix",
		UsageText: "nbpack stage --prefix <dir>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "prefix",
				Usage:    "Installation prefix (e.g. sys.prefix of the target environment)",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env := clix.FromCommand(cmd, cfg)
			d, err := env.Builder().Build(ctx)
			if err != nil {
				return err
			}

			placed, err := staging.NewStager(env.FS).Stage(ctx, env.Root, cmd.String("prefix"), d)
			if err != nil {
				return err
			}
			for _, p := range placed {
				printer.Println(printer.Check(true), p.Source, printer.Faint(fmt.Sprintf("-> %s (%d bytes)", p.Dest, p.Bytes)))
			}
			printer.PrintSuccess(fmt.Sprintf("Staged %d data files for %s %s", len(placed), d.Name, d.Version))
			return nil
		},
	}
}
