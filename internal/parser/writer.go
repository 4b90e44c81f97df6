package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/appmode/nbpack/internal/core"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/sjson"
)

// Writer stores version strings into files.
type Writer struct {
	fs core.FileSystem
}

// NewWriter creates a Writer backed by fs.
func NewWriter(fs core.FileSystem) *Writer {
	return &Writer{fs: fs}
}

// Write sets the version described by cfg.
func (w *Writer) Write(ctx context.Context, cfg FileConfig, version string) error {
	if cfg.Path == "" {
		return fmt.Errorf("file path is required")
	}
	if !cfg.Format.IsValid() {
		return fmt.Errorf("invalid format: %s", cfg.Format)
	}

	if cfg.Format == FormatRaw {
		return w.store(ctx, cfg.Path, []byte(strings.TrimRight(version, "\n")+"\n"))
	}

	data, err := w.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	var updated []byte
	switch cfg.Format {
	case FormatJSON:
		updated, err = setJSON(data, cfg.Field, version)
	case FormatYAML, FormatTOML:
		updated, err = setStructured(data, cfg.Format, cfg.Field, version)
	case FormatRegex:
		updated, err = replaceFirstGroup(data, cfg.Pattern, version)
	}
	if err != nil {
		return fmt.Errorf("failed to set version in %q: %w", cfg.Path, err)
	}

	return w.store(ctx, cfg.Path, updated)
}

func (w *Writer) store(ctx context.Context, path string, data []byte) error {
	if err := w.fs.WriteFile(ctx, path, data, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return nil
}

// setJSON updates one field in place so key order and formatting survive.
func setJSON(data []byte, field, version string) ([]byte, error) {
	if field == "" {
		return nil, fmt.Errorf("field is required for json format")
	}
	updated, err := sjson.SetBytes(data, field, version)
	if err != nil {
		return nil, err
	}
	if len(updated) > 0 && updated[len(updated)-1] != '\n' {
		updated = append(updated, '\n')
	}
	return updated, nil
}

func setStructured(data []byte, format Format, field, version string) ([]byte, error) {
	if field == "" {
		return nil, fmt.Errorf("field is required for %s format", format)
	}
	obj, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	if err := setNestedValue(obj, field, version); err != nil {
		return nil, err
	}
	if format == FormatYAML {
		return yaml.Marshal(obj)
	}
	return toml.Marshal(obj)
}

// replaceFirstGroup rewrites capture group 1 of the first match only,
// leaving every other byte untouched.
func replaceFirstGroup(data []byte, pattern, version string) ([]byte, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	loc := re.FindSubmatchIndex(data)
	if loc == nil || loc[2] < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, pattern)
	}

	out := make([]byte, 0, len(data)+len(version))
	out = append(out, data[:loc[2]]...)
	out = append(out, version...)
	out = append(out, data[loc[3]:]...)
	return out, nil
}

func setNestedValue(obj map[string]any, field string, value any) error {
	parts := strings.Split(field, ".")
	current := obj

	for i, part := range parts[:len(parts)-1] {
		next, exists := current[part]
		if !exists {
			m := map[string]any{}
			current[part] = m
			current = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("field %q is not an object", strings.Join(parts[:i+1], "."))
		}
		current = m
	}

	current[parts[len(parts)-1]] = value
	return nil
}
