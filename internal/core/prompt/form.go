package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// FormAsker shows each question as its own terminal form.
type FormAsker struct {
	theme *huh.Theme
}

// NewFormAsker returns a FormAsker with the babelkit theme.
func NewFormAsker() *FormAsker {
	return &FormAsker{theme: newTheme()}
}

func (a *FormAsker) run(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).
		WithTheme(a.theme).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	if err != nil {
		return fmt.Errorf("prompt error: %w", err)
	}
	return nil
}

// Select shows a single-choice list.
func (a *FormAsker) Select(message string, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no choices for '%s'", message)
	}

	opts := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		opts[i] = huh.NewOption(c.Label, c.Value)
	}

	selected := choices[0].Value
	field := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected)
	if err := a.run(field); err != nil {
		return "", err
	}
	return selected, nil
}

// Confirm shows a yes/no toggle defaulting to yes.
func (a *FormAsker) Confirm(message string) (bool, error) {
	answer := true
	field := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)
	if err := a.run(field); err != nil {
		return false, err
	}
	return answer, nil
}

// newTheme colours the forms in babel yellow.
func newTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#F5DA55"}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("› ")
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#1F2937")).
		Background(primary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
