package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/appmode/nbpack/internal/core"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Reader extracts version strings from files.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a Reader backed by fs.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read extracts the version described by cfg.
// Read errors wrap the filesystem error, so callers can test for fs.ErrNotExist.
func (r *Reader) Read(ctx context.Context, cfg FileConfig) (*Result, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file path is required")
	}
	if !cfg.Format.IsValid() {
		return nil, fmt.Errorf("invalid format: %s", cfg.Format)
	}

	data, err := r.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	var version string
	switch cfg.Format {
	case FormatRaw:
		version = strings.TrimSpace(string(data))
	case FormatRegex:
		version, err = FirstMatch(data, cfg.Pattern)
		if err != nil {
			err = fmt.Errorf("in file %q: %w", cfg.Path, err)
		}
	default:
		version, err = readField(data, cfg.Path, cfg.Format, cfg.Field)
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Version: version,
		Path:    cfg.Path,
		Format:  cfg.Format,
		Field:   cfg.Field,
	}, nil
}

// ReadVersion is Read without the surrounding Result.
func (r *Reader) ReadVersion(ctx context.Context, cfg FileConfig) (string, error) {
	res, err := r.Read(ctx, cfg)
	if err != nil {
		return "", err
	}
	return res.Version, nil
}

// FirstMatch returns capture group 1 of the leftmost match of pattern in data.
// The leftmost match is the first one in file order.
func FirstMatch(data []byte, pattern string) (string, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return "", err
	}
	m := re.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrNoMatch, pattern)
	}
	return string(m[1]), nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern is required for regex format")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("regex pattern %q must have a capturing group", pattern)
	}
	return re, nil
}

func readField(data []byte, path string, format Format, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required for %s format", format)
	}

	obj, err := decode(data, format)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s in %q: %w", format, path, err)
	}

	value, err := getNestedValue(obj, field)
	if err != nil {
		return "", fmt.Errorf("in file %q: %w", path, err)
	}

	version, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q in %q is not a string", field, path)
	}
	return version, nil
}

func decode(data []byte, format Format) (map[string]any, error) {
	obj := map[string]any{}
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &obj)
	case FormatYAML:
		err = yaml.Unmarshal(data, &obj)
	case FormatTOML:
		err = toml.Unmarshal(data, &obj)
	default:
		err = fmt.Errorf("unsupported format: %s", format)
	}
	if obj == nil {
		obj = map[string]any{}
	}
	return obj, err
}

// getNestedValue looks up a dot-notation path such as "project.version".
func getNestedValue(obj map[string]any, field string) (any, error) {
	parts := strings.Split(field, ".")
	current := any(obj)

	for i, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object", strings.Join(parts[:i], "."))
		}
		value, exists := m[part]
		if !exists {
			return nil, fmt.Errorf("field %q not found", field)
		}
		current = value
	}

	return current, nil
}
