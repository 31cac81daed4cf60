package typeahead

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type inputIntent int

const (
	intentNone inputIntent = iota
	intentBlur
	intentComplete
	intentRemove
)

// inputSurface is the single-line text field. It shows the selection's
// label or the query, renders the completion hint after the cursor and
// turns esc, right and backspace into intents for the controller.
type inputSurface struct {
	ti     textinput.Model
	keys   KeyMap
	styles Styles
	width  int
	x, y   int
	reg    *Registration
}

func newInputSurface(placeholder string, width int, keys KeyMap, styles Styles) inputSurface {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.Width = max(width-1, 0)
	ti.ShowSuggestions = true
	ti.KeyMap.AcceptSuggestion = key.NewBinding()
	ti.KeyMap.NextSuggestion = key.NewBinding()
	ti.KeyMap.PrevSuggestion = key.NewBinding()
	ti.TextStyle = styles.Text
	ti.PlaceholderStyle = styles.Placeholder
	ti.CompletionStyle = styles.Hint

	in := inputSurface{ti: ti, keys: keys, styles: styles, width: width}
	in.fit("")
	return in
}

func (in *inputSurface) completion() string {
	if s := in.ti.AvailableSuggestions(); len(s) > 0 {
		return s[0]
	}
	return ""
}

// fit grows an unsized field to its placeholder, value and completion.
// textinput clips the placeholder to Width, so 0 would show one cell.
func (in *inputSurface) fit(completion string) {
	if in.width > 0 {
		return
	}
	// one spare cell keeps the next typed rune from scrolling the field
	in.ti.Width = max(
		lipgloss.Width(in.ti.Placeholder),
		lipgloss.Width(in.ti.Value())+1,
		lipgloss.Width(completion),
	)
	in.ti.SetCursor(in.ti.Position())
}

func (in *inputSurface) focus() tea.Cmd {
	return in.ti.Focus()
}

func (in *inputSurface) blur() {
	in.ti.Blur()
}

func (in *inputSurface) focused() bool {
	return in.ti.Focused()
}

func (in *inputSurface) value() string {
	return in.ti.Value()
}

// setDisplay shows value with the cursor at its end. completion is the
// full label the hint completes to, or empty for no hint.
func (in *inputSurface) setDisplay(value, completion string) {
	if in.ti.Value() != value {
		in.ti.SetValue(value)
		in.ti.CursorEnd()
	}
	if completion != "" {
		in.ti.SetSuggestions([]string{completion})
	} else {
		in.ti.SetSuggestions(nil)
	}
	in.fit(completion)
}

// intent classifies msg. complete only applies while a hint is showing
// and nothing is selected; remove only while something is selected.
func (in *inputSurface) intent(msg tea.KeyMsg, hasSelection, hintVisible bool) inputIntent {
	switch {
	case key.Matches(msg, in.keys.Close):
		return intentBlur
	case key.Matches(msg, in.keys.Complete) && hintVisible && !hasSelection:
		return intentComplete
	case key.Matches(msg, in.keys.Remove) && hasSelection:
		return intentRemove
	}
	return intentNone
}

// update feeds msg to the text field and reports whether its value changed.
func (in *inputSurface) update(msg tea.Msg) (tea.Cmd, bool) {
	before := in.ti.Value()
	var cmd tea.Cmd
	in.ti, cmd = in.ti.Update(msg)
	in.fit(in.completion())
	return cmd, in.ti.Value() != before
}

func (in *inputSurface) view() string {
	style := in.styles.Input
	if in.focused() {
		style = in.styles.InputFocused
	}
	if in.width > 0 {
		style = style.Width(in.width).MaxWidth(in.width)
	}
	return style.Render(in.ti.View())
}

// bounds is the whole rendered line; a press anywhere on it focuses.
func (in *inputSurface) bounds() Rect {
	w := max(lipgloss.Width(in.view()), in.width)
	return Rect{X: in.x, Y: in.y, Width: max(w, 1), Height: 1}
}
