package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGetTheme(t *testing.T) {
	for _, name := range ValidThemes {
		if GetTheme(name) == nil {
			t.Errorf("GetTheme(%q) returned nil", name)
		}
		if !IsValidTheme(name) {
			t.Errorf("IsValidTheme(%q) = false", name)
		}
	}
	if GetTheme("neon") != nil || IsValidTheme("neon") {
		t.Error("unknown theme accepted")
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("")

	SetTheme("dracula")
	if currentTheme == nil {
		t.Fatal("expected dracula to be selected")
	}

	SetTheme("neon")
	if currentTheme != nil {
		t.Error("unknown theme should reset to default")
	}
	if themeOrDefault() == nil {
		t.Error("default theme missing")
	}
}

func TestNbpackTheme(t *testing.T) {
	theme := nbpackTheme()
	if !theme.Focused.Title.GetBold() {
		t.Error("focused title should be bold")
	}
	if theme.Focused.Base.GetBorderStyle() != lipgloss.RoundedBorder() {
		t.Error("focused base should have a rounded border")
	}
	_, right, _, left := theme.Focused.FocusedButton.GetPadding()
	if left != 1 || right != 1 {
		t.Errorf("button padding = %d/%d, want 1/1", left, right)
	}
}

func TestIsInteractive(t *testing.T) {
	orig := isTerminal
	defer func() { isTerminal = orig }()

	isTerminal = func() bool { return false }
	if IsInteractive() {
		t.Error("non-terminal must not be interactive")
	}

	isTerminal = func() bool { return true }
	t.Setenv("CI", "true")
	if IsInteractive() {
		t.Error("CI must not be interactive")
	}
}
