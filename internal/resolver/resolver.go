// Package resolver extracts the package version from the Python initializer
// module, which is the single source of truth for the appmode version.
package resolver

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/appmode/nbpack/internal/core"
	"github.com/appmode/nbpack/internal/parser"
)

// DefaultInitModule is the initializer module path relative to the package root.
const DefaultInitModule = "appmode/__init__.py"

// VersionPattern matches a top-level __version__ assignment with either quote
// style. Only the first match in file order is used.
const VersionPattern = `(?m)^__version__ = ['"]([^'"]+)['"]`

// Resolve reads <root>/appmode/__init__.py and returns its version.
func Resolve(ctx context.Context, fsys core.FileSystem, root string) (string, error) {
	return ResolveFile(ctx, fsys, filepath.Join(root, DefaultInitModule))
}

// ResolveFile returns the version declared in the initializer module at path.
// Failures are *ResolveError values wrapping ErrInitModuleNotFound,
// ErrVersionPatternNotMatched or the underlying read error.
func ResolveFile(ctx context.Context, fsys core.FileSystem, path string) (string, error) {
	version, err := parser.NewReader(fsys).ReadVersion(ctx, parser.FileConfig{
		Path:    path,
		Format:  parser.FormatRegex,
		Pattern: VersionPattern,
	})
	switch {
	case err == nil:
		return version, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", &ResolveError{Path: path, Err: ErrInitModuleNotFound}
	case errors.Is(err, parser.ErrNoMatch):
		return "", &ResolveError{Path: path, Err: ErrVersionPatternNotMatched}
	default:
		return "", &ResolveError{Path: path, Err: err}
	}
}
