package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests.
type MockFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
	perms map[string]os.FileMode
	dirs  map[string]bool

	// Injected errors, returned when non-nil.
	ReadErr  error
	WriteErr error
	StatErr  error
	MkdirErr error
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		perms: make(map[string]os.FileMode),
		dirs:  make(map[string]bool),
	}
}

var _ FileSystem = (*MockFileSystem)(nil)

// SetFile stores data at path, creating parent directories implicitly.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = data
}

// GetFile returns the stored data and whether path exists.
func (m *MockFileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[filepath.Clean(path)]
	return data, ok
}

// GetPerm returns the mode passed to the last WriteFile for path.
func (m *MockFileSystem) GetPerm(path string) (os.FileMode, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	perm, ok := m.perms[filepath.Clean(path)]
	return perm, ok
}

func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	data, ok := m.GetFile(path)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.WriteErr != nil {
		return m.WriteErr
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.SetFile(path, buf)
	m.mu.Lock()
	m.perms[filepath.Clean(path)] = perm
	m.mu.Unlock()
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.StatErr != nil {
		return nil, m.StatErr
	}

	clean := filepath.Clean(path)

	m.mu.RLock()
	defer m.mu.RUnlock()

	if data, ok := m.files[clean]; ok {
		return &mockFileInfo{name: filepath.Base(clean), size: int64(len(data))}, nil
	}
	if m.dirs[clean] {
		return &mockFileInfo{name: filepath.Base(clean), dir: true}, nil
	}
	prefix := clean + string(filepath.Separator)
	for p := range m.files {
		if strings.HasPrefix(p, prefix) {
			return &mockFileInfo{name: filepath.Base(clean), dir: true}, nil
		}
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *MockFileSystem) MkdirAll(ctx context.Context, path string, _ os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.MkdirErr != nil {
		return m.MkdirErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[filepath.Clean(path)] = true
	return nil
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i *mockFileInfo) Name() string       { return i.name }
func (i *mockFileInfo) Size() int64        { return i.size }
func (i *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i *mockFileInfo) IsDir() bool        { return i.dir }
func (i *mockFileInfo) Sys() any           { return nil }

func (i *mockFileInfo) Mode() os.FileMode {
	if i.dir {
		return fs.ModeDir | PermDir
	}
	return PermOwnerRW
}
