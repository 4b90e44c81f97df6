package initialize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/appmode/nbpack/internal/config"
	"github.com/appmode/nbpack/internal/core"
	"github.com/appmode/nbpack/internal/parser"
	"github.com/appmode/nbpack/internal/printer"
	"github.com/urfave/cli/v3"
)

// candidateSyncFiles are added to a new config when present next to it.
var candidateSyncFiles = []string{"package.json", "pyproject.toml"}

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Write a " + config.FileName + " with defaults for this project",
		UsageText: "nbpack init [--force]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing config file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return initConfig(ctx, core.NewOSFileSystem(), dir, cmd.Bool("force"))
		},
	}
}

func initConfig(ctx context.Context, fsys core.FileSystem, dir string, force bool) error {
	path := filepath.Join(dir, config.FileName)
	if _, err := fsys.Stat(ctx, path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
	}

	cfg := config.Default()
	for _, name := range candidateSyncFiles {
		if _, err := fsys.Stat(ctx, filepath.Join(dir, name)); err == nil {
			cfg.Sync = append(cfg.Sync, config.SyncTarget{Path: name, Field: parser.FieldForFile(name)})
		}
	}

	if err := config.NewSaver(fsys, nil).SaveTo(ctx, cfg, path); err != nil {
		return err
	}
	printer.PrintSuccess("Created " + config.FileName)
	for _, t := range cfg.Sync {
		printer.PrintFaint("  sync: " + t.Path)
	}
	return nil
}
