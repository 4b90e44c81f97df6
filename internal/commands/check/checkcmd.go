package check

import (
	"context"
	"errors"
	"fmt"

	"github.com/appmode/nbpack/internal/clix"
	"github.com/appmode/nbpack/internal/config"
	"github.com/appmode/nbpack/internal/descriptor"
	"github.com/appmode/nbpack/internal/printer"
	"github.com/appmode/nbpack/internal/tui"
	"github.com/appmode/nbpack/internal/versionsync"
	"github.com/urfave/cli/v3"
)

// ErrCheckFailed is returned when at least one check did not pass.
var ErrCheckFailed = errors.New("package checks failed")

// Run returns the "check" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"doctor"},
		Usage:     "Validate configuration, version, descriptor, data files and sync targets",
		UsageText: "nbpack check [--quiet]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only print failing checks",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env := clix.FromCommand(cmd, cfg)
			results := Collect(ctx, env)
			return report(results, cmd.Bool("quiet"))
		},
	}
}

// Collect runs every check against env. It never stops early.
func Collect(ctx context.Context, env *clix.Env) []config.ValidationResult {
	results := env.Config.Validate()

	if env.Config.Theme != "" {
		results = append(results, config.ValidationResult{
			Category: "Theme",
			Passed:   tui.IsValidTheme(env.Config.Theme),
			Message:  env.Config.Theme,
		})
	}

	d, err := env.Builder().Build(ctx)
	if err != nil {
		return append(results, config.ValidationResult{Category: "Version", Message: err.Error()})
	}
	results = append(results, config.ValidationResult{
		Category: "Version",
		Passed:   true,
		Message:  fmt.Sprintf("%s from %s", d.Version, env.Builder().InitModulePath()),
	})

	if err := descriptor.CheckAssets(ctx, env.FS, env.Root, d); err != nil {
		results = append(results, config.ValidationResult{Category: "Data files", Message: err.Error()})
	} else {
		results = append(results, config.ValidationResult{
			Category: "Data files",
			Passed:   true,
			Message:  fmt.Sprintf("%d assets for %s", len(d.Assets()), descriptor.NBExtensionTarget),
		})
	}

	statuses := versionsync.New(env.FS).Check(ctx, d.Version, env.SyncTargets())
	for _, st := range statuses {
		r := config.ValidationResult{Category: "Sync " + st.Target.Path, Passed: st.InSync(d.Version)}
		switch {
		case st.Err != nil:
			r.Message = st.Err.Error()
		case r.Passed:
			r.Message = st.Found
		default:
			r.Message = fmt.Sprintf("has %s, want %s (run nbpack sync)", st.Found, d.Version)
			r.Warning = true
		}
		results = append(results, r)
	}

	return results
}

func report(results []config.ValidationResult, quiet bool) error {
	failed := 0
	for _, r := range results {
		switch {
		case r.Passed:
			if !quiet {
				printer.Println(printer.Check(true), printer.Bold(r.Category), printer.Faint(r.Message))
			}
		case r.Warning:
			printer.Println(printer.Warning("!"), printer.Bold(r.Category), r.Message)
		default:
			failed++
			printer.Println(printer.Check(false), printer.Bold(r.Category), r.Message)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCheckFailed, failed, len(results))
	}
	if !quiet {
		printer.PrintSuccess("All checks passed")
	}
	return nil
}
