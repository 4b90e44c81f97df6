package parser

import (
	"errors"
	"path/filepath"
	"strings"
)

// Format represents the supported file formats for version fields.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
	FormatRaw   Format = "raw"
	FormatRegex Format = "regex"
)

// ErrNoMatch is wrapped by regex reads and writes whose pattern matches nothing.
var ErrNoMatch = errors.New("pattern did not match")

func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTOML, FormatRaw, FormatRegex:
		return true
	default:
		return false
	}
}

// FileConfig describes where a version lives inside a file.
type FileConfig struct {
	Path   string
	Format Format

	// Field is a dot-notation path for structured formats, e.g. "project.version".
	Field string

	// Pattern must contain a capturing group around the version.
	Pattern string
}

// Result is the outcome of a successful read.
type Result struct {
	Version string
	Path    string
	Format  Format
	Field   string
}

// FormatForFile guesses the format from a file name.
func FormatForFile(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	case ".py", ".js", ".ts":
		return FormatRegex
	default:
		return FormatRaw
	}
}

// FieldForFile returns the usual version field for well-known files.
func FieldForFile(name string) string {
	if filepath.Base(name) == "pyproject.toml" {
		return "project.version"
	}
	return "version"
}
