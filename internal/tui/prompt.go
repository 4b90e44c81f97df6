package tui

import "github.com/charmbracelet/huh"

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	Confirm(title, description string) (bool, error)
}

// HuhPrompter shows prompts with huh.
type HuhPrompter struct{}

// NewPrompter returns the terminal Prompter.
func NewPrompter() Prompter {
	return &HuhPrompter{}
}

// Confirm shows a yes/no prompt defaulting to no.
func (p *HuhPrompter) Confirm(title, description string) (bool, error) {
	var ok bool
	confirm := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)
	err := huh.NewForm(huh.NewGroup(confirm)).
		WithTheme(themeOrDefault()).
		Run()
	return ok, err
}
