package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appmode/nbpack/internal/core"
	"github.com/appmode/nbpack/internal/parser"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Root != dir || cfg.InitModule != "appmode/__init__.py" || cfg.Format != "json" {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("values from file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "root: pkg\nformat: toml\ntheme: dracula\nsync:\n  - path: package.json\n")
		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Root != filepath.Join(dir, "pkg") {
			t.Errorf("root = %q", cfg.Root)
		}
		if cfg.Format != "toml" || cfg.Theme != "dracula" {
			t.Errorf("unexpected config: %+v", cfg)
		}
		if len(cfg.Sync) != 1 || cfg.Sync[0].Path != "package.json" {
			t.Errorf("sync = %+v", cfg.Sync)
		}
		if cfg.InitModule != "appmode/__init__.py" {
			t.Errorf("init-module default not applied: %q", cfg.InitModule)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "")
		if _, err := Load(dir); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "rot: typo\n")
		if _, err := Load(dir); err == nil {
			t.Error("expected strict decoding error")
		}
	})

	t.Run("env root", func(t *testing.T) {
		t.Setenv(RootEnv, "/opt/appmode")
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Root != "/opt/appmode" {
			t.Errorf("root = %q", cfg.Root)
		}
	})

	t.Run("env root with dots in a name", func(t *testing.T) {
		t.Setenv(RootEnv, "/opt/app..v2")
		cfg, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Root != "/opt/app..v2" {
			t.Errorf("root = %q", cfg.Root)
		}
	})

	t.Run("env root traversal rejected", func(t *testing.T) {
		t.Setenv(RootEnv, "../../etc")
		_, err := Load(t.TempDir())
		if err == nil || !strings.Contains(err.Error(), "path traversal") {
			t.Errorf("expected traversal error, got %v", err)
		}
	})
}

func TestSyncTarget_FileConfig(t *testing.T) {
	tests := []struct {
		name   string
		target SyncTarget
		want   parser.FileConfig
	}{
		{
			name:   "package.json defaults",
			target: SyncTarget{Path: "package.json"},
			want:   parser.FileConfig{Path: "/root/package.json", Format: parser.FormatJSON, Field: "version"},
		},
		{
			name:   "pyproject defaults",
			target: SyncTarget{Path: "pyproject.toml"},
			want:   parser.FileConfig{Path: "/root/pyproject.toml", Format: parser.FormatTOML, Field: "project.version"},
		},
		{
			name:   "explicit regex",
			target: SyncTarget{Path: "/abs/main.js", Format: "REGEX", Pattern: `v([0-9.]+)`},
			want:   parser.FileConfig{Path: "/abs/main.js", Format: parser.FormatRegex, Pattern: `v([0-9.]+)`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.FileConfig("/root"); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Format = "xml"
	cfg.Sync = []SyncTarget{
		{Path: "package.json"},
		{},
		{Path: "main.js"},
		{Path: "x.cfg", Format: "ini"},
	}

	results := cfg.Validate()
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}

	wantPassed := []bool{false, true, false, false, false}
	for i, r := range results {
		if r.Passed != wantPassed[i] {
			t.Errorf("result %d (%s): passed = %v, want %v (%s)", i, r.Category, r.Passed, wantPassed[i], r.Message)
		}
	}
}

func TestValidate_FormatAliases(t *testing.T) {
	for _, format := range []string{"json", "YAML", "yml", " toml "} {
		cfg := Default()
		cfg.Format = format
		results := cfg.Validate()
		if len(results) == 0 || !results[0].Passed {
			t.Errorf("format %q rejected: %+v", format, results)
		}
	}
}

type failingMarshaler struct{}

func (failingMarshaler) Marshal(any) ([]byte, error) { return nil, errors.New("nope") }

func TestSaver(t *testing.T) {
	ctx := context.Background()
	mfs := core.NewMockFileSystem()

	cfg := Default()
	cfg.Sync = []SyncTarget{{Path: "package.json"}}
	if err := NewSaver(mfs, nil).SaveTo(ctx, cfg, "/p/.nbpack.yaml"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ := mfs.GetFile("/p/.nbpack.yaml")
	for _, want := range []string{"init-module: appmode/__init__.py", "path: package.json"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("saved config missing %q:\n%s", want, data)
		}
	}

	if err := NewSaver(mfs, failingMarshaler{}).SaveTo(ctx, cfg, "/p/x"); err == nil {
		t.Error("expected marshal error")
	}
}
