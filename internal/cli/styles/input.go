package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "/ "
	return ti
}

// NewAliasInput creates the alias field of a link row.
func NewAliasInput(theme *Theme, width int) textinput.Model {
	ti := NewStyledInput(theme, "alias")
	ti.Prompt = ""
	ti.CharLimit = 128
	ti.Width = max(width-1, 0)
	return ti
}

// FieldBox renders a single-row field padded to width.
func (t *Theme) FieldBox(input string, width int, focused bool) string {
	style := t.Field
	if focused {
		style = t.FieldFocused
	}
	if width > 0 {
		style = style.Width(width).MaxWidth(width)
	}
	return style.Render(input)
}
