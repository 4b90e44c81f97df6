// Package testutils holds helpers for nbpack command tests.
package testutils

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/appmode/nbpack/internal/config"
	"github.com/urfave/cli/v3"
)

// CaptureStdout runs fn while capturing everything written to os.Stdout.
func CaptureStdout(fn func()) (string, error) {
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	var copyErr error
	go func() {
		_, copyErr = io.Copy(&buf, r)
		close(done)
	}()

	func() {
		defer func() {
			_ = w.Close()
			os.Stdout = orig
		}()
		fn()
	}()

	<-done
	_ = r.Close()
	return buf.String(), copyErr
}

// WriteTempInitModule creates <dir>/appmode/__init__.py with content.
func WriteTempInitModule(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "appmode", "__init__.py")
	WriteFile(t, path, content)
	return path
}

// WriteTempAssets creates the two appmode static assets under dir.
func WriteTempAssets(t *testing.T, dir string) {
	t.Helper()
	WriteFile(t, filepath.Join(dir, "appmode", "static", "main.js"), "define([], function() {});\n")
	WriteFile(t, filepath.Join(dir, "appmode", "static", "gears.svg"), "<svg xmlns=\"http://www.w3.org/2000/svg\"/>\n")
}

// WriteTempConfig writes .nbpack.yaml into dir.
func WriteTempConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	WriteFile(t, path, content)
	return path
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// RunCLITest runs app with args inside dir and fails the test on error.
func RunCLITest(t *testing.T, app *cli.Command, args []string, dir string) {
	t.Helper()
	if err := RunCLITestAllowError(t, app, args, dir); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

// RunCLITestAllowError runs app with args inside dir and returns its error.
func RunCLITestAllowError(t *testing.T, app *cli.Command, args []string, dir string) error {
	t.Helper()
	Chdir(t, dir)
	return app.Run(context.Background(), args)
}

// Chdir changes the working directory to dir and restores it when the test
// finishes (equivalent of testing.T.Chdir for toolchains before Go 1.24).
func Chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}
