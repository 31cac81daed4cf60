package typeahead

import "github.com/charmbracelet/lipgloss"

// Styles controls how the input and the dropdown render.
type Styles struct {
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Text         lipgloss.Style
	Placeholder  lipgloss.Style
	Hint         lipgloss.Style
	Menu         lipgloss.Style
	Item         lipgloss.Style
	ActiveItem   lipgloss.Style
	EmptyItem    lipgloss.Style
}

// DefaultStyles returns styles usable without a theme.
func DefaultStyles() Styles {
	return Styles{
		Input:        lipgloss.NewStyle(),
		InputFocused: lipgloss.NewStyle().Underline(true),
		Text:         lipgloss.NewStyle(),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Hint:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Menu:         lipgloss.NewStyle(),
		Item:         lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1),
		ActiveItem:   lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).Reverse(true),
		EmptyItem:    lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).Faint(true).Italic(true),
	}
}
