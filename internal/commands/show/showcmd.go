package show

import (
	"context"

	"github.com/appmode/nbpack/internal/clix"
	"github.com/appmode/nbpack/internal/config"
	"github.com/appmode/nbpack/internal/printer"
	"github.com/appmode/nbpack/internal/resolver"
	"github.com/urfave/cli/v3"
)

// Run returns the "version" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "Print the version declared in the package initializer module",
		UsageText: "nbpack version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env := clix.FromCommand(cmd, cfg)
			path := env.Builder().InitModulePath()
			printer.Debug("reading %s", path)

			version, err := resolver.ResolveFile(ctx, env.FS, path)
			if err != nil {
				return err
			}
			printer.Println(version)
			return nil
		},
	}
}
