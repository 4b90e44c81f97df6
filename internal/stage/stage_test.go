package stage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/appmode/nbpack/internal/core"
	"github.com/appmode/nbpack/internal/descriptor"
)

func TestStage_CopiesIntoExtensionDir(t *testing.T) {
	mfs := core.NewMockFileSystem()
	mfs.SetFile("/src/appmode/static/main.js", []byte("define(['base/js/namespace'], function(){});"))
	mfs.SetFile("/src/appmode/static/gears.svg", []byte("<svg>\x00binary</svg>"))

	placed, err := NewStager(mfs).Stage(context.Background(), "/src", "/prefix", descriptor.Appmode("1.0.0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(placed) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(placed))
	}

	for _, name := range []string{"main.js", "gears.svg"} {
		dst := "/prefix/share/jupyter/nbextensions/appmode/" + name
		got, ok := mfs.GetFile(dst)
		if !ok {
			t.Fatalf("%s not staged", dst)
		}
		want, _ := mfs.GetFile("/src/appmode/static/" + name)
		if !bytes.Equal(got, want) {
			t.Errorf("%s content differs", name)
		}
		if perm, _ := mfs.GetPerm(dst); perm != core.PermReadable {
			t.Errorf("%s written with mode %v, want %v", name, perm, core.PermReadable)
		}
	}
	if placed[0].Source != "appmode/static/main.js" {
		t.Errorf("unexpected first placement: %+v", placed[0])
	}
}

func TestStage_MissingAssetWritesNothing(t *testing.T) {
	mfs := core.NewMockFileSystem()
	mfs.SetFile("/src/appmode/static/main.js", []byte("x"))

	_, err := NewStager(mfs).Stage(context.Background(), "/src", "/prefix", descriptor.Appmode("1.0.0"))
	var merr *descriptor.MissingAssetsError
	if !errors.As(err, &merr) {
		t.Fatalf("expected *MissingAssetsError, got %v", err)
	}
	if _, ok := mfs.GetFile("/prefix/share/jupyter/nbextensions/appmode/main.js"); ok {
		t.Error("main.js was staged despite a missing sibling")
	}
}

func TestStage_Errors(t *testing.T) {
	ctx := context.Background()
	d := descriptor.Appmode("1.0.0")

	if _, err := NewStager(core.NewMockFileSystem()).Stage(ctx, "/src", "", d); err == nil {
		t.Error("expected error for empty prefix")
	}

	mfs := core.NewMockFileSystem()
	mfs.SetFile("/src/appmode/static/main.js", nil)
	mfs.SetFile("/src/appmode/static/gears.svg", nil)
	mfs.MkdirErr = errors.New("read-only")
	if _, err := NewStager(mfs).Stage(ctx, "/src", "/prefix", d); err == nil {
		t.Error("expected mkdir error")
	}
}

func TestStage_OnDisk(t *testing.T) {
	root := t.TempDir()
	static := filepath.Join(root, "appmode", "static")
	if err := os.MkdirAll(static, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"main.js", "gears.svg"} {
		if err := os.WriteFile(filepath.Join(static, name), []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	prefix := t.TempDir()
	if _, err := NewStager(core.NewOSFileSystem()).Stage(context.Background(), root, prefix, descriptor.Appmode("1.0.0")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(prefix, "share", "jupyter", "nbextensions", "appmode", "gears.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "gears.svg" {
		t.Errorf("got %q", data)
	}
}
