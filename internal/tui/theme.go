// Package tui wraps the interactive prompts nbpack shows in a terminal.
package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ValidThemes lists the accepted theme names.
var ValidThemes = []string{"nbpack", "base", "base16", "catppuccin", "charm", "dracula"}

var currentTheme *huh.Theme

// IsValidTheme reports whether name is a known theme.
func IsValidTheme(name string) bool {
	return slices.Contains(ValidThemes, name)
}

// GetTheme returns the huh theme called name, or nil.
func GetTheme(name string) *huh.Theme {
	switch name {
	case "nbpack":
		return nbpackTheme()
	case "base":
		return huh.ThemeBase()
	case "base16":
		return huh.ThemeBase16()
	case "catppuccin":
		return huh.ThemeCatppuccin()
	case "charm":
		return huh.ThemeCharm()
	case "dracula":
		return huh.ThemeDracula()
	default:
		return nil
	}
}

// SetTheme selects the prompt theme. Unknown or empty names select the default.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

func themeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return nbpackTheme()
	}
	return currentTheme
}

// nbpackTheme is the base theme with Jupyter orange accents.
func nbpackTheme() *huh.Theme {
	t := huh.ThemeBase()
	accent := lipgloss.AdaptiveColor{Light: "#E46E2E", Dark: "#F37726"}

	t.Focused.Base = t.Focused.Base.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(accent)
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(accent).Bold(true).Padding(0, 1)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Padding(0, 1)
	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	return t
}
