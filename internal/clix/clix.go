// Package clix holds helpers shared by the nbpack subcommands.
package clix

import (
	"errors"

	"github.com/appmode/nbpack/internal/config"
	"github.com/appmode/nbpack/internal/core"
	"github.com/appmode/nbpack/internal/descriptor"
	"github.com/appmode/nbpack/internal/parser"
	"github.com/appmode/nbpack/internal/printer"
	"github.com/urfave/cli/v3"
)

// Suggester is implemented by errors that carry a fix-it hint.
type Suggester interface {
	Suggestion() string
}

// Env is the resolved execution context for one command invocation.
type Env struct {
	FS         core.FileSystem
	Root       string
	InitModule string
	Config     *config.Config
}

// FromCommand merges cfg with the global --root flag.
func FromCommand(cmd *cli.Command, cfg *config.Config) *Env {
	root := cfg.Root
	if r := cmd.String("root"); r != "" {
		root = r
	}
	return &Env{
		FS:         core.NewOSFileSystem(),
		Root:       root,
		InitModule: cfg.InitModule,
		Config:     cfg,
	}
}

// Builder returns a descriptor builder for the environment's package root.
func (e *Env) Builder() *descriptor.Builder {
	b := descriptor.NewBuilder(e.FS, e.Root)
	if e.InitModule != "" {
		b.InitModule = e.InitModule
	}
	return b
}

// SyncTargets resolves the configured sync targets against the root.
func (e *Env) SyncTargets() []parser.FileConfig {
	out := make([]parser.FileConfig, 0, len(e.Config.Sync))
	for _, t := range e.Config.Sync {
		out = append(out, t.FileConfig(e.Root))
	}
	return out
}

// PrintSuggestion prints the hint carried by err, if any.
func PrintSuggestion(err error) {
	var s Suggester
	if !errors.As(err, &s) {
		return
	}
	if hint := s.Suggestion(); hint != "" {
		printer.PrintHint(hint)
	}
}
