package descriptor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/appmode/nbpack/internal/core"
	"github.com/appmode/nbpack/internal/resolver"
)

// Builder resolves the version under Root and produces the descriptor.
type Builder struct {
	FS   core.FileSystem
	Root string

	// InitModule overrides resolver.DefaultInitModule, relative to Root.
	InitModule string
}

// NewBuilder returns a Builder for the package rooted at root.
func NewBuilder(fsys core.FileSystem, root string) *Builder {
	return &Builder{FS: fsys, Root: root, InitModule: resolver.DefaultInitModule}
}

// InitModulePath returns the initializer module path the builder reads.
func (b *Builder) InitModulePath() string {
	mod := b.InitModule
	if mod == "" {
		mod = resolver.DefaultInitModule
	}
	if filepath.IsAbs(mod) {
		return mod
	}
	return filepath.Join(b.Root, mod)
}

// Build resolves the version and returns the appmode descriptor.
func (b *Builder) Build(ctx context.Context) (*Descriptor, error) {
	version, err := resolver.ResolveFile(ctx, b.FS, b.InitModulePath())
	if err != nil {
		return nil, err
	}
	d := Appmode(version)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// ValidationError lists descriptor fields that are missing or malformed.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid package descriptor: " + strings.Join(e.Problems, "; ")
}

// Validate checks required fields and requirement syntax.
func (d *Descriptor) Validate() error {
	var problems []string
	for field, value := range map[string]string{
		"name":    d.Name,
		"version": d.Version,
		"license": d.License,
		"author":  d.Author,
	} {
		if strings.TrimSpace(value) == "" {
			problems = append(problems, "missing "+field)
		}
	}
	for _, req := range d.InstallRequires {
		if _, err := ParseRequirement(req); err != nil {
			problems = append(problems, err.Error())
		}
	}
	for _, df := range d.DataFiles {
		if df.Target == "" || filepath.IsAbs(df.Target) {
			problems = append(problems, fmt.Sprintf("data_files target %q must be a relative path", df.Target))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	slices.Sort(problems)
	return &ValidationError{Problems: problems}
}

// MissingAssetsError reports manifest entries absent from the package tree.
type MissingAssetsError struct {
	Root  string
	Paths []string
}

func (e *MissingAssetsError) Error() string {
	return fmt.Sprintf("missing data files under %s: %s", e.Root, strings.Join(e.Paths, ", "))
}

// Suggestion returns guidance on fixing the manifest.
func (e *MissingAssetsError) Suggestion() string {
	var sb strings.Builder
	sb.WriteString("These files are listed in data_files but do not exist:\n")
	for _, p := range e.Paths {
		fmt.Fprintf(&sb, "  - %s\n", p)
	}
	sb.WriteString("\nThe notebook extension loader expects them under ")
	sb.WriteString(NBExtensionTarget + ".\n")
	return sb.String()
}

// CheckAssets verifies that every manifest entry exists as a regular file under root.
func CheckAssets(ctx context.Context, fsys core.FileSystem, root string, d *Descriptor) error {
	var missing []string
	for _, asset := range d.Assets() {
		info, err := fsys.Stat(ctx, filepath.Join(root, asset))
		switch {
		case err == nil && !info.IsDir():
		case err == nil, errors.Is(err, fs.ErrNotExist):
			missing = append(missing, asset)
		default:
			return fmt.Errorf("failed to stat %q: %w", asset, err)
		}
	}
	if len(missing) > 0 {
		return &MissingAssetsError{Root: root, Paths: missing}
	}
	return nil
}
