package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/appmode/nbpack/internal/resolver"
	"github.com/appmode/nbpack/internal/testutils"
)

func TestRunCLI_Version(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteTempInitModule(t, dir, "# appmode\n__version__ = \"0.8.0\"\n")
	testutils.Chdir(t, dir)

	output, err := testutils.CaptureStdout(func() {
		if err := runCLI([]string{"nbpack", "--no-color", "version"}); err != nil {
			t.Errorf("runCLI: %v", err)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(output) != "0.8.0" {
		t.Errorf("got %q, want 0.8.0", output)
	}
}

func TestRunCLI_ConfigError(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteTempConfig(t, dir, "unknown-key: 1\n")
	testutils.Chdir(t, dir)

	if err := runCLI([]string{"nbpack", "version"}); err == nil {
		t.Fatal("expected config error")
	}
}

func TestRunCLI_MalformedInitModule(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteTempInitModule(t, dir, "version = '1'\n")
	testutils.Chdir(t, dir)

	err := runCLI([]string{"nbpack", "describe"})
	if !errors.Is(err, resolver.ErrVersionPatternNotMatched) {
		t.Fatalf("expected ErrVersionPatternNotMatched, got %v", err)
	}
}
