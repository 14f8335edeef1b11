package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette for the default form theme.
var (
	nupackBluePrimary = lipgloss.AdaptiveColor{Light: "#004880", Dark: "#3b82c4"}
	nupackBlueBright  = lipgloss.AdaptiveColor{Light: "#0369a1", Dark: "#60a5fa"}
	nupackAccent      = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}

	nupackTextStrong = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f9fafb"}
	nupackTextNormal = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#d1d5db"}
	nupackTextMuted  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	nupackTextFaint  = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}

	nupackBorderFocused = lipgloss.AdaptiveColor{Light: "#004880", Dark: "#3b82c4"}
	nupackBorderNormal  = lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#374151"}

	nupackButtonBg          = lipgloss.AdaptiveColor{Light: "#004880", Dark: "#3b82c4"}
	nupackButtonBgBlurred   = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#374151"}
	nupackButtonText        = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"}
	nupackButtonTextBlurred = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#d1d5db"}

	nupackError = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
)

// nupackTheme is the default theme for forms.
func nupackTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(nupackBorderFocused)
	t.Focused.Title = t.Focused.Title.Foreground(nupackBluePrimary).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(nupackBluePrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(nupackTextMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(nupackError)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(nupackError)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(nupackAccent)
	t.Focused.Option = t.Focused.Option.Foreground(nupackTextNormal)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(nupackBlueBright)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(nupackAccent)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(nupackTextFaint)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(nupackAccent)
	t.Focused.TextInput.Text = t.Focused.TextInput.Text.Foreground(nupackTextStrong)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(nupackButtonText).
		Background(nupackButtonBg).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(nupackButtonTextBlurred).
		Background(nupackButtonBgBlurred).
		Padding(0, 1)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderForeground(nupackBorderNormal)
	t.Blurred.Title = t.Blurred.Title.Foreground(nupackTextMuted)

	t.Help.ShortKey = t.Help.ShortKey.Foreground(nupackTextMuted)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(nupackTextFaint)
	t.Help.ShortSeparator = t.Help.ShortSeparator.Foreground(nupackTextFaint)
	t.Help.FullKey = t.Help.FullKey.Foreground(nupackTextMuted)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(nupackTextFaint)
	t.Help.FullSeparator = t.Help.FullSeparator.Foreground(nupackTextFaint)

	return t
}
