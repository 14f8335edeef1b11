package tui

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs action while a spinner titled title is shown.
// When the terminal is not interactive the action runs without a spinner.
func RunWithSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	if !IsInteractive() {
		return action(ctx)
	}

	spinStyle, titleStyle := spinnerStyles(activeTheme())

	var actionErr error
	err := spinner.New().
		Type(spinner.Dots).
		Title(" " + title).
		Style(spinStyle).
		TitleStyle(titleStyle).
		Context(ctx).
		Action(func() { actionErr = action(ctx) }).
		Run()
	if actionErr != nil {
		return actionErr
	}
	return err
}
