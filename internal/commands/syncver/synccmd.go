package syncver

import (
	"context"
	"errors"
	"fmt"

	"github.com/appmode/nbpack/internal/clix"
	"github.com/appmode/nbpack/internal/config"
	"github.com/appmode/nbpack/internal/printer"
	"github.com/appmode/nbpack/internal/resolver"
	"github.com/appmode/nbpack/internal/versionsync"
	"github.com/urfave/cli/v3"
)

// ErrOutOfSync is returned by --check when a target differs.
var ErrOutOfSync = errors.New("sync targets out of date")

// Run returns the "sync" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "sync",
		Usage:     "Write the package version into the configured sync targets",
		UsageText: "nbpack sync [--check]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Report mismatches without writing",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runSync(ctx, cmd, cfg)
		},
	}
}

func runSync(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	env := clix.FromCommand(cmd, cfg)
	targets := env.SyncTargets()
	if len(targets) == 0 {
		printer.PrintInfo("No sync targets configured in " + config.FileName)
		return nil
	}

	version, err := resolver.ResolveFile(ctx, env.FS, env.Builder().InitModulePath())
	if err != nil {
		return err
	}

	syncer := versionsync.New(env.FS)

	if cmd.Bool("check") {
		mismatches := versionsync.Mismatches(version, syncer.Check(ctx, version, targets))
		for _, st := range mismatches {
			printer.Println(printer.Check(false), st.Target.Path, describe(st))
		}
		if len(mismatches) > 0 {
			return fmt.Errorf("%w: %d of %d", ErrOutOfSync, len(mismatches), len(targets))
		}
		printer.PrintSuccess(fmt.Sprintf("All %d sync targets at %s", len(targets), version))
		return nil
	}

	statuses, syncErr := syncer.Sync(ctx, version, targets)
	printer.Println("Sync", printer.Bold(version))
	for _, st := range statuses {
		switch {
		case st.Err != nil:
			printer.Println(" ", printer.Check(false), st.Target.Path, printer.Error(st.Err.Error()))
		case st.Updated:
			printer.Println(" ", printer.Check(true), st.Target.Path, printer.Faint(describe(st)))
		default:
			printer.Println(" ", printer.Check(true), st.Target.Path, printer.Faint("(unchanged)"))
		}
	}
	return syncErr
}

func describe(st versionsync.Status) string {
	switch {
	case st.Err != nil:
		return st.Err.Error()
	case st.Found == "":
		return "(new)"
	default:
		return "(was " + st.Found + ")"
	}
}
