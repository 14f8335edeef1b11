package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user leaves a form without submitting.
var ErrAborted = errors.New("aborted by user")

// keyMap returns the form key bindings: esc quits alongside ctrl+c.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "cancel"),
	)
	return km
}

// runForm runs f with the selected theme and key map.
func runForm(f *huh.Form) error {
	err := f.WithTheme(activeTheme()).WithKeyMap(keyMap()).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Confirm shows a yes/no confirmation prompt.
func Confirm(title, description string) (bool, error) {
	var ok bool
	field := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)
	if err := runForm(huh.NewForm(huh.NewGroup(field))); err != nil {
		return false, err
	}
	return ok, nil
}

// Select shows a single-select prompt.
func Select(title, description string, options []huh.Option[string]) (string, error) {
	var choice string
	field := huh.NewSelect[string]().
		Title(title).
		Description(description).
		Options(options...).
		Value(&choice)
	if err := runForm(huh.NewForm(huh.NewGroup(field))); err != nil {
		return "", err
	}
	return choice, nil
}

// PackageForm holds the values edited by the package metadata form.
type PackageForm struct {
	ID          string
	Version     string
	Authors     string
	Description string
	Format      string
}

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	EditPackage(form *PackageForm, formats []string) error
	Confirm(title, description string) (bool, error)
	Select(title, description string, options []huh.Option[string]) (string, error)
}

// TUIPrompter implements Prompter with huh forms.
type TUIPrompter struct{}

// NewPrompter creates a new TUIPrompter.
func NewPrompter() Prompter {
	return &TUIPrompter{}
}

// Confirm shows a yes/no confirmation prompt.
func (p *TUIPrompter) Confirm(title, description string) (bool, error) {
	return Confirm(title, description)
}

// Select shows a single-select prompt.
func (p *TUIPrompter) Select(title, description string, options []huh.Option[string]) (string, error) {
	return Select(title, description, options)
}

// EditPackage shows the package metadata form, pre-filled with the values in
// form. Fields are updated in place only when the form is submitted.
func (p *TUIPrompter) EditPackage(form *PackageForm, formats []string) error {
	edited := *form
	if edited.Format == "" && len(formats) > 0 {
		edited.Format = formats[0]
	}

	f := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Package ID").
				Placeholder("Company.Product").
				Value(&edited.ID).
				Validate(required("package ID")),
			huh.NewInput().
				Title("Version").
				Placeholder("1.0.0").
				Value(&edited.Version).
				Validate(required("version")),
			huh.NewInput().
				Title("Authors").
				Placeholder("Unknown").
				Value(&edited.Authors),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Description").
				Description("Leave empty to generate one from the file list.").
				Lines(4).
				Value(&edited.Description),
			huh.NewSelect[string]().
				Title("Manifest format").
				Options(huh.NewOptions(formats...)...).
				Value(&edited.Format),
		),
	)
	if err := runForm(f); err != nil {
		return err
	}

	*form = edited
	return nil
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
