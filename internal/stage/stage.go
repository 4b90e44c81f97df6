// Package stage lays out a descriptor's data files the way the installer
// would place them under an installation prefix.
package stage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/appmode/nbpack/internal/core"
	"github.com/appmode/nbpack/internal/descriptor"
)

// Placement records one copied asset.
type Placement struct {
	Source string
	Dest   string
	Bytes  int
}

// Stager copies data files from a package root into a prefix.
type Stager struct {
	fs core.FileSystem
}

// NewStager returns a Stager backed by fs.
func NewStager(fs core.FileSystem) *Stager {
	return &Stager{fs: fs}
}

// Stage copies every manifest entry of d from root to <prefix>/<target>/<basename>.
// Nothing is written when any source is missing.
func (s *Stager) Stage(ctx context.Context, root, prefix string, d *descriptor.Descriptor) ([]Placement, error) {
	if prefix == "" {
		return nil, fmt.Errorf("install prefix is required")
	}
	if err := descriptor.CheckAssets(ctx, s.fs, root, d); err != nil {
		return nil, err
	}

	var placed []Placement
	for _, df := range d.DataFiles {
		targetDir := filepath.Join(prefix, df.Target)
		if err := s.fs.MkdirAll(ctx, targetDir, core.PermDir); err != nil {
			return placed, fmt.Errorf("failed to create %q: %w", targetDir, err)
		}

		for _, src := range df.Files {
			p, err := s.copy(ctx, filepath.Join(root, src), filepath.Join(targetDir, filepath.Base(src)))
			if err != nil {
				return placed, err
			}
			p.Source = src
			placed = append(placed, p)
		}
	}
	return placed, nil
}

func (s *Stager) copy(ctx context.Context, src, dst string) (Placement, error) {
	data, err := s.fs.ReadFile(ctx, src)
	if err != nil {
		return Placement{}, fmt.Errorf("failed to read %q: %w", src, err)
	}
	if err := s.fs.WriteFile(ctx, dst, data, core.PermReadable); err != nil {
		return Placement{}, fmt.Errorf("failed to write %q: %w", dst, err)
	}
	return Placement{Dest: dst, Bytes: len(data)}, nil
}
