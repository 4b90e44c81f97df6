package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/appmode/nbpack/internal/core"
	"github.com/appmode/nbpack/internal/parser"
	"github.com/appmode/nbpack/internal/resolver"
	"github.com/goccy/go-yaml"
)

// FileName is the config file looked up in the working directory.
const FileName = ".nbpack.yaml"

// RootEnv overrides the configured package root.
const RootEnv = "NBPACK_ROOT"

// SyncTarget is a file whose version field follows the initializer module.
type SyncTarget struct {
	Path    string `yaml:"path"`
	Format  string `yaml:"format,omitempty"`
	Field   string `yaml:"field,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
}

// FileConfig converts t into a parser.FileConfig. Relative paths are joined
// to root; format and field default from the file name.
func (t SyncTarget) FileConfig(root string) parser.FileConfig {
	path := t.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	format := parser.FormatForFile(t.Path)
	if t.Format != "" {
		format = parser.Format(strings.ToLower(t.Format))
	}

	field := t.Field
	if field == "" && (format == parser.FormatJSON || format == parser.FormatYAML || format == parser.FormatTOML) {
		field = parser.FieldForFile(t.Path)
	}

	return parser.FileConfig{Path: path, Format: format, Field: field, Pattern: t.Pattern}
}

// Config is the nbpack configuration.
type Config struct {
	Root       string       `yaml:"root"`
	InitModule string       `yaml:"init-module"`
	Format     string       `yaml:"format"`
	Theme      string       `yaml:"theme,omitempty"`
	Sync       []SyncTarget `yaml:"sync,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Root:       ".",
		InitModule: resolver.DefaultInitModule,
		Format:     "json",
	}
}

// LoadConfigFn is swapped in tests.
var LoadConfigFn = Load

// Load reads FileName from dir, falling back to Default when it is absent.
// The NBPACK_ROOT environment variable takes precedence over the file's root.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	// Root in the file is relative to the directory holding it.
	if cfg.Root != "" && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(dir, cfg.Root)
	}

	if envRoot := os.Getenv(RootEnv); envRoot != "" {
		clean := filepath.Clean(envRoot)
		if slices.Contains(strings.Split(filepath.ToSlash(clean), "/"), "..") {
			return nil, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", RootEnv)
		}
		cfg.Root = clean
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Root == "" {
		c.Root = def.Root
	}
	if c.InitModule == "" {
		c.InitModule = def.InitModule
	}
	if c.Format == "" {
		c.Format = def.Format
	}
}

// yamlMarshaler is the production core.Marshaler.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Saver writes configuration files.
type Saver struct {
	fs        core.FileSystem
	marshaler core.Marshaler
}

// NewSaver creates a Saver. A nil marshaler selects YAML.
func NewSaver(fsys core.FileSystem, marshaler core.Marshaler) *Saver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	return &Saver{fs: fsys, marshaler: marshaler}
}

// SaveTo writes cfg to path.
func (s *Saver) SaveTo(ctx context.Context, cfg *Config, path string) error {
	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", path, err)
	}
	if err := s.fs.WriteFile(ctx, path, data, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", path, err)
	}
	return nil
}
