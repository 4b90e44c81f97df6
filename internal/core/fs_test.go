package core

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_RoundTrip(t *testing.T) {
	ctx := context.Background()
	osfs := NewOSFileSystem()
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := osfs.MkdirAll(ctx, dir, PermDir); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	path := filepath.Join(dir, "file.txt")
	if err := osfs.WriteFile(ctx, path, []byte("hello"), PermOwnerRW); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := osfs.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("got %q, want %q", data, "hello")
	}

	info, err := osfs.Stat(ctx, dir)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected directory")
	}
}

func TestOSFileSystem_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewOSFileSystem().ReadFile(ctx, filepath.Join(t.TempDir(), "x"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestMockFileSystem(t *testing.T) {
	ctx := context.Background()
	m := NewMockFileSystem()
	m.SetFile("/root/pkg/file.py", []byte("x = 1\n"))

	t.Run("read missing", func(t *testing.T) {
		_, err := m.ReadFile(ctx, "/root/missing")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected fs.ErrNotExist, got %v", err)
		}
	})

	t.Run("implicit directory", func(t *testing.T) {
		info, err := m.Stat(ctx, "/root/pkg")
		if err != nil {
			t.Fatalf("Stat: %v", err)
		}
		if !info.IsDir() {
			t.Error("expected /root/pkg to be a directory")
		}
	})

	t.Run("file stat", func(t *testing.T) {
		info, err := m.Stat(ctx, "/root/pkg/file.py")
		if err != nil {
			t.Fatalf("Stat: %v", err)
		}
		if info.IsDir() || info.Size() != 6 {
			t.Errorf("unexpected info: dir=%v size=%d", info.IsDir(), info.Size())
		}
	})

	t.Run("injected error", func(t *testing.T) {
		boom := errors.New("boom")
		m.WriteErr = boom
		defer func() { m.WriteErr = nil }()
		if err := m.WriteFile(ctx, "/root/out", nil, PermOwnerRW); !errors.Is(err, boom) {
			t.Errorf("expected injected error, got %v", err)
		}
	})
}
