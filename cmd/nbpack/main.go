package main

import (
	"context"
	"os"

	"github.com/appmode/nbpack/internal/cli"
	"github.com/appmode/nbpack/internal/clix"
	"github.com/appmode/nbpack/internal/config"
	"github.com/appmode/nbpack/internal/printer"
	"github.com/appmode/nbpack/internal/tui"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		clix.PrintSuggestion(err)
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the command tree with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn(".")
	if err != nil {
		return err
	}
	tui.SetTheme(cfg.Theme)

	app := cli.New(cfg, tui.NewPrompter())
	return app.Run(context.Background(), args)
}
