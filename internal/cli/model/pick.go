package model

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bessdsv/kitematic/internal/cli/styles"
	"github.com/bessdsv/kitematic/internal/infrastructure/config"
	"github.com/bessdsv/kitematic/internal/ui/typeahead"
)

// pickHeaderRows is the prompt line above the field.
const pickHeaderRows = 1

// PickItem is one line read by the picker. JSON object lines are matched
// on a field; any other line labels itself.
type PickItem struct {
	Raw    string
	Fields map[string]any
}

// Label implements typeahead.Labeler.
func (p PickItem) Label(key string) (string, bool) {
	if p.Fields == nil {
		return p.Raw, true
	}
	return typeahead.LabelOf(p.Fields, key)
}

// ReadPickItems reads one item per non-blank line of r.
func ReadPickItems(r io.Reader) ([]PickItem, error) {
	var items []PickItem
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		item := PickItem{Raw: line}
		if strings.HasPrefix(strings.TrimSpace(line), "{") {
			var fields map[string]any
			if err := json.Unmarshal([]byte(line), &fields); err == nil {
				item.Fields = fields
			}
		}
		items = append(items, item)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}
	return items, nil
}

// PickModelConfig holds configuration for the pick model.
type PickModelConfig struct {
	Items     []PickItem
	Prompt    string
	Typeahead config.TypeaheadConfig
}

// PickModel is a full-screen typeahead over arbitrary lines.
type PickModel struct {
	// UI components
	widget  *typeahead.Model[PickItem]
	tracker *typeahead.Tracker
	help    help.Model
	keys    styles.PickKeyMap

	// State
	selected  *PickItem
	done      bool
	cancelled bool
	height    int

	// Config
	prompt  string
	options config.TypeaheadConfig

	theme *styles.Theme
}

// NewPickModel creates a picker over cfg.Items.
func NewPickModel(ctx context.Context, theme *styles.Theme, cfg PickModelConfig) (*PickModel, error) {
	m := &PickModel{
		tracker: typeahead.NewTracker(),
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultPickKeyMap(),
		prompt:  cfg.Prompt,
		options: cfg.Typeahead,
		theme:   theme,
	}

	typeaheadStyles := theme.TypeaheadStyles()
	widget, err := typeahead.New(ctx, typeahead.Config[PickItem]{
		ID:          "pick",
		Options:     cfg.Items,
		LabelKey:    cfg.Typeahead.LabelKey,
		EmptyLabel:  cfg.Typeahead.EmptyLabel,
		MaxHeight:   cfg.Typeahead.MaxHeight,
		Placeholder: cfg.Typeahead.Placeholder,
		Width:       cfg.Typeahead.Width,
		OnChange:    m.handleChange,
		Styles:      &typeaheadStyles,
	})
	if err != nil {
		return nil, fmt.Errorf("create typeahead: %w", err)
	}
	widget.Mount(m.tracker)
	widget.SetOrigin(0, pickHeaderRows)
	m.widget = widget
	return m, nil
}

// Init implements tea.Model.
func (m *PickModel) Init() tea.Cmd {
	return m.widget.Focus()
}

// Update implements tea.Model.
func (m *PickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		rows := m.options.MaxHeight
		if rows <= 0 {
			rows = typeahead.DefaultMaxHeight
		}
		m.widget.SetMaxHeight(min(rows, max(msg.Height-pickHeaderRows-3, 1)))
		return m, nil

	case tea.MouseMsg:
		m.tracker.HandleMouse(msg)
		cmd := m.widget.Update(msg)
		if m.done {
			return m, tea.Quit
		}
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			return m, tea.Quit
		}
		cmd, consumed := m.widget.HandleKey(msg)
		if m.done {
			return m, tea.Quit
		}
		if consumed {
			return m, cmd
		}
		// esc closes the menu first and cancels once the field is closed
		if key.Matches(msg, m.keys.Cancel) {
			m.cancelled = true
			return m, tea.Quit
		}
		if !m.widget.Focused() {
			focusCmd := m.widget.Focus()
			cmd, _ = m.widget.HandleKey(msg)
			return m, tea.Batch(focusCmd, cmd)
		}
		return m, cmd
	}

	return m, m.widget.Update(msg)
}

func (m *PickModel) handleChange(sel []PickItem) {
	m.widget.SetSelected(sel)
	if len(sel) == 0 {
		m.selected = nil
		return
	}
	item := sel[0]
	m.selected = &item
	m.done = true
}

// View implements tea.Model.
func (m *PickModel) View() string {
	prompt := m.prompt
	if prompt == "" {
		prompt = "Pick"
	}
	header := m.theme.Highlight.Render(styles.IconCursor) + " " + m.theme.Title.Render(prompt)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.widget.View(),
		"",
		m.help.View(m.keys),
	)
}

// Selection returns the picked line, or false when nothing was picked.
func (m *PickModel) Selection() (string, bool) {
	if m.cancelled || m.selected == nil {
		return "", false
	}
	return m.selected.Raw, true
}

// Ensure interface compliance.
var _ tea.Model = (*PickModel)(nil)
