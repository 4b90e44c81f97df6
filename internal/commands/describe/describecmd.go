package describe

import (
	"context"
	"fmt"

	"github.com/appmode/nbpack/internal/clix"
	"github.com/appmode/nbpack/internal/config"
	"github.com/appmode/nbpack/internal/core"
	"github.com/appmode/nbpack/internal/emitter"
	"github.com/appmode/nbpack/internal/printer"
	"github.com/appmode/nbpack/internal/tui"
	"github.com/urfave/cli/v3"
)

// isInteractive is swapped in tests.
var isInteractive = tui.IsInteractive

// Run returns the "describe" command.
func Run(cfg *config.Config, prompter tui.Prompter) *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Usage:     "Build the package descriptor and hand it to the packaging toolchain",
		UsageText: "nbpack describe [--format json|yaml|toml] [--output file] [--yes]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Descriptor encoding: json, yaml or toml",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the descriptor to a file instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Overwrite the output file without asking",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDescribe(ctx, cmd, cfg, prompter)
		},
	}
}

func runDescribe(ctx context.Context, cmd *cli.Command, cfg *config.Config, prompter tui.Prompter) error {
	formatName := cfg.Format
	if f := cmd.String("format"); f != "" {
		formatName = f
	}
	format, err := emitter.ParseFormat(formatName)
	if err != nil {
		return err
	}

	env := clix.FromCommand(cmd, cfg)
	d, err := env.Builder().Build(ctx)
	if err != nil {
		return err
	}
	printer.Debug("resolved %s %s", d.Name, d.Version)

	data, err := emitter.Encode(d, format)
	if err != nil {
		return err
	}

	output := cmd.String("output")
	if output == "" {
		printer.Print(string(data))
		return nil
	}

	if _, err := env.FS.Stat(ctx, output); err == nil && !cmd.Bool("yes") {
		if !isInteractive() {
			return fmt.Errorf("%s already exists (use --yes to overwrite)", output)
		}
		ok, err := prompter.Confirm("Overwrite "+output+"?", "The existing descriptor will be replaced.")
		if err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
		if !ok {
			printer.PrintWarning("Aborted, " + output + " left unchanged")
			return nil
		}
	}

	if err := env.FS.WriteFile(ctx, output, data, core.PermReadable); err != nil {
		return fmt.Errorf("failed to write descriptor to %q: %w", output, err)
	}
	printer.PrintSuccess(fmt.Sprintf("Wrote %s %s descriptor to %s", d.Name, d.Version, output))
	return nil
}
