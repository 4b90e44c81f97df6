package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInitModuleNotFound means the package initializer module does not exist.
	ErrInitModuleNotFound = errors.New("initializer module not found")

	// ErrVersionPatternNotMatched means the initializer module exists but
	// contains no __version__ assignment.
	ErrVersionPatternNotMatched = errors.New("version pattern not matched")
)

// ResolveError reports a failed version resolution for a given file.
// Err is one of the sentinel errors above or an underlying read error.
type ResolveError struct {
	Path string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("cannot resolve version from %s: %v", e.Path, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Suggestion returns a hint on how to fix the failure.
func (e *ResolveError) Suggestion() string {
	var sb strings.Builder
	switch {
	case errors.Is(e.Err, ErrInitModuleNotFound):
		fmt.Fprintf(&sb, "No initializer module at %s.\n", e.Path)
		sb.WriteString("Run nbpack from the project root or pass --root.\n")
	case errors.Is(e.Err, ErrVersionPatternNotMatched):
		fmt.Fprintf(&sb, "%s has no version assignment.\n", e.Path)
		sb.WriteString("Add a line at column 0 such as:\n\n")
		sb.WriteString("  __version__ = \"0.1.0\"\n")
	default:
		return ""
	}
	return sb.String()
}
