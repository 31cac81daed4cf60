// Package typeahead implements a single-select autocomplete field for
// Bubble Tea programs: a text input that filters caller-supplied options,
// a dropdown menu with keyboard and mouse selection, an inline completion
// hint and outside-press dismissal through a shared Tracker.
package typeahead

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/bessdsv/kitematic/internal/logging"
)

const (
	// DefaultEmptyLabel is shown when no option matches.
	DefaultEmptyLabel = "No matches found."
	// DefaultMaxHeight caps the dropdown, in rows.
	DefaultMaxHeight = 300
)

// ErrMissingOnChange is returned by New when Config.OnChange is nil.
var ErrMissingOnChange = errors.New("typeahead: OnChange is required")

// State is the interaction state of a Model.
type State int

const (
	// StateIdle: menu closed, no editing session.
	StateIdle State = iota
	// StateEditing: focused with the menu open and filtering live.
	StateEditing
)

func (s State) String() string {
	if s == StateEditing {
		return "editing"
	}
	return "idle"
}

// Config configures a Model.
type Config[T any] struct {
	ID      string
	Options []T
	// LabelKey names the field shown and matched; defaults to "label".
	LabelKey string
	// Selected is the controlled selection (zero or one option).
	Selected []T
	// DefaultSelected seeds the selection when non-empty, else Selected does.
	DefaultSelected []T
	EmptyLabel      string
	// MaxHeight caps the dropdown in rows.
	MaxHeight   int
	Placeholder string
	// Width of the input in cells; 0 fits the content.
	Width int
	// OnKeyDown receives keys the input surface did not act on.
	OnKeyDown func(tea.KeyMsg)
	// DisableOnClickOutside mounts without listening for outside presses.
	DisableOnClickOutside bool
	// OnChange receives the new selection: one option on commit, none on removal.
	OnChange func(selected []T)
	KeyMap   *KeyMap
	Styles   *Styles
}

// Model is a single-select typeahead. It must be used through a pointer
// once mounted since the tracker holds callbacks bound to it.
type Model[T any] struct {
	id         string
	options    []T
	labelKey   string
	emptyLabel string
	onChange   func([]T)
	onKeyDown  func(tea.KeyMsg)
	keys       KeyMap
	styles     Styles
	log        zerolog.Logger

	selected    []T
	lastProp    []T
	query       string
	activeIndex int
	menuVisible bool

	input inputSurface
	menu  menuSurface

	tracker         *Tracker
	reg             *Registration
	outsideDisabled bool
	unmounted       bool
}

// New builds a Model from cfg.
func New[T any](ctx context.Context, cfg Config[T]) (*Model[T], error) {
	if cfg.OnChange == nil {
		return nil, ErrMissingOnChange
	}
	if cfg.LabelKey == "" {
		cfg.LabelKey = DefaultLabelKey
	}
	if cfg.EmptyLabel == "" {
		cfg.EmptyLabel = DefaultEmptyLabel
	}
	if cfg.MaxHeight <= 0 {
		cfg.MaxHeight = DefaultMaxHeight
	}
	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}
	styles := DefaultStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}

	m := &Model[T]{
		id:              cfg.ID,
		options:         slices.Clone(cfg.Options),
		labelKey:        cfg.LabelKey,
		emptyLabel:      cfg.EmptyLabel,
		onChange:        cfg.OnChange,
		onKeyDown:       cfg.OnKeyDown,
		keys:            keys,
		styles:          styles,
		log:             logging.FromContext(ctx).With().Str("component", "typeahead").Str("id", cfg.ID).Logger(),
		lastProp:        slices.Clone(cfg.Selected),
		outsideDisabled: cfg.DisableOnClickOutside,
		input:           newInputSurface(cfg.Placeholder, cfg.Width, keys, styles),
		menu:            newMenuSurface(cfg.MaxHeight, styles),
	}

	if len(cfg.DefaultSelected) > 0 {
		m.selected = first(cfg.DefaultSelected)
	} else {
		m.selected = first(cfg.Selected)
	}
	if len(m.selected) > 0 {
		m.query = label(m.selected[0], m.labelKey)
	}
	m.sync()
	return m, nil
}

// Mount registers the controller and the input surface with t. The input
// blurs on outside presses; the controller blurs and closes the menu.
func (m *Model[T]) Mount(t *Tracker) {
	if m.unmounted || m.tracker != nil || t == nil {
		return
	}
	m.tracker = t

	var opts []RegisterOption
	if m.outsideDisabled {
		opts = append(opts, WithSuspended())
	}
	m.reg = t.Register(BoundsFunc(m.Bounds), m.handleClickOutside, opts...)
	m.input.reg = t.Register(BoundsFunc(m.input.bounds), func(tea.MouseMsg) {
		m.input.blur()
		m.sync()
	}, opts...)
}

// Unmount releases both registrations. Every later call is a no-op.
func (m *Model[T]) Unmount() {
	if m.unmounted {
		return
	}
	m.unmounted = true
	m.reg.Unregister()
	m.input.reg.Unregister()
	m.reg, m.input.reg = nil, nil
	m.tracker = nil
}

// EnableOnClickOutside resumes outside-press handling.
func (m *Model[T]) EnableOnClickOutside() {
	m.outsideDisabled = false
	m.reg.Resume()
	m.input.reg.Resume()
}

// DisableOnClickOutside suspends outside-press handling for this widget.
func (m *Model[T]) DisableOnClickOutside() {
	m.outsideDisabled = true
	m.reg.Suspend()
	m.input.reg.Suspend()
}

// Focus gives the input text focus and opens the menu.
func (m *Model[T]) Focus() tea.Cmd {
	if m.unmounted || m.input.focused() {
		return nil
	}
	cmd := m.input.focus()
	m.handleFocus()
	return cmd
}

// Blur removes text focus and closes the menu without committing.
func (m *Model[T]) Blur() {
	if m.unmounted {
		return
	}
	m.input.blur()
	m.hideMenu()
}

// SetOrigin places the widget at cell (x, y); the menu opens below it.
func (m *Model[T]) SetOrigin(x, y int) {
	m.input.x, m.input.y = x, y
	m.menu.x, m.menu.y = x, y+1
}

// SetMaxHeight caps the dropdown at rows, e.g. to fit the terminal.
func (m *Model[T]) SetMaxHeight(rows int) {
	m.menu.setMaxRows(rows)
	m.menu.reveal(m.activeIndex, len(m.Filtered()))
}

// SetOptions replaces the searchable options.
func (m *Model[T]) SetOptions(options []T) {
	m.options = slices.Clone(options)
	m.activeIndex = 0
	m.menu.reset()
	m.sync()
}

// SetSelected is the controlled selection channel. When selected differs
// from the previous value passed in, it replaces the selection whatever
// the current state, discarding edits. A non-empty selection also resets
// the query to its label and, with it, the active row.
func (m *Model[T]) SetSelected(selected []T) {
	if m.unmounted || sameSelection(m.lastProp, selected) {
		return
	}
	m.lastProp = slices.Clone(selected)
	m.selected = first(selected)
	if len(m.selected) > 0 {
		m.query = label(m.selected[0], m.labelKey)
	}
	m.activeIndex = 0
	m.menu.reset()
	m.sync()
}

// Update handles key, mouse and cursor messages. Keys are ignored unless
// the input has focus.
func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	if m.unmounted {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, _ := m.HandleKey(msg)
		return cmd
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	cmd, _ := m.input.update(msg)
	return cmd
}

// HandleKey processes a key press and reports whether the widget consumed
// it. Parents should not act on consumed keys: esc in particular never
// reaches ancestor handlers, and tab only cycles focus while the menu is
// closed.
func (m *Model[T]) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if m.unmounted || !m.input.focused() {
		return nil, false
	}

	filtered := m.Filtered()
	_, hintVisible := m.hint(filtered)

	switch m.input.intent(msg, len(m.selected) > 0, hintVisible) {
	case intentBlur:
		m.Blur()
		return nil, true
	case intentComplete:
		m.commit(filtered[0])
		return nil, true
	case intentRemove:
		m.remove()
		return nil, true
	}

	if m.onKeyDown != nil {
		m.onKeyDown(msg)
	}

	n := len(filtered)
	switch {
	case key.Matches(msg, m.keys.Prev):
		if m.menuVisible && n > 0 {
			m.move(-1, n)
			return nil, true
		}
		return nil, false
	case key.Matches(msg, m.keys.Next):
		if m.menuVisible && n > 0 {
			m.move(1, n)
			return nil, true
		}
		return nil, false
	case key.Matches(msg, m.keys.Commit):
		if m.menuVisible && m.activeIndex < n {
			m.commit(filtered[m.activeIndex])
			return nil, true
		}
		return nil, false
	}

	cmd, changed := m.input.update(msg)
	if changed {
		m.handleTextChange(m.input.value())
	}
	return cmd, changed || editingKey(msg)
}

// View renders the input and, while open, the menu below it.
func (m *Model[T]) View() string {
	line := m.input.view()
	if !m.menuVisible {
		return line
	}
	m.menu.width = lipgloss.Width(line)
	return lipgloss.JoinVertical(lipgloss.Left, line, m.menu.view(m.labels(m.Filtered()), m.activeIndex, m.emptyLabel))
}

// Height is the number of rows View occupies.
func (m *Model[T]) Height() int {
	if !m.menuVisible {
		return 1
	}
	return 1 + m.menu.visibleRows(len(m.Filtered()))
}

// Bounds covers the input and, while open, the menu.
func (m *Model[T]) Bounds() Rect {
	r := m.input.bounds()
	if m.menuVisible {
		m.menu.width = r.Width
		r = r.Union(m.menu.bounds(m.labels(m.Filtered()), m.emptyLabel))
	}
	return r
}

// ID returns the configured identifier.
func (m *Model[T]) ID() string { return m.id }

// Query returns the raw typed text.
func (m *Model[T]) Query() string { return m.query }

// Selected returns a copy of the selection.
func (m *Model[T]) Selected() []T { return slices.Clone(m.selected) }

// ActiveIndex returns the highlighted row of the filtered list.
func (m *Model[T]) ActiveIndex() int { return m.activeIndex }

// MenuVisible reports whether the dropdown is open.
func (m *Model[T]) MenuVisible() bool { return m.menuVisible }

// Focused reports whether the input holds text focus.
func (m *Model[T]) Focused() bool { return m.input.focused() }

// Value returns the displayed text: the selection's label, else the query.
func (m *Model[T]) Value() string {
	if len(m.selected) > 0 {
		return label(m.selected[0], m.labelKey)
	}
	return m.query
}

// Filtered returns the options matching the query.
func (m *Model[T]) Filtered() []T {
	return Filter(m.options, m.query, m.labelKey)
}

// Hint returns the completion shown after the cursor, if any.
func (m *Model[T]) Hint() string {
	h, _ := m.hint(m.Filtered())
	return h
}

// State reports Editing while focused with the menu open.
func (m *Model[T]) State() State {
	if m.input.focused() && m.menuVisible {
		return StateEditing
	}
	return StateIdle
}

// hint returns the remainder of the first option's label beyond the query.
// The prefix test is case-sensitive while filtering is not, so a match
// found by filtering does not always produce a hint.
func (m *Model[T]) hint(filtered []T) (string, bool) {
	if !m.input.focused() || m.query == "" || len(filtered) == 0 {
		return "", false
	}
	l := label(filtered[0], m.labelKey)
	if !strings.HasPrefix(l, m.query) {
		return "", false
	}
	return l[len(m.query):], true
}

func (m *Model[T]) handleFocus() {
	if !m.menuVisible {
		m.activeIndex = 0
		m.menu.reset()
	}
	m.menuVisible = true
	m.sync()
}

func (m *Model[T]) handleTextChange(text string) {
	m.query = text
	m.activeIndex = 0
	m.menu.reset()
	m.menuVisible = true
	m.sync()
}

func (m *Model[T]) handleClickOutside(tea.MouseMsg) {
	if !m.input.focused() && !m.menuVisible {
		return
	}
	m.input.blur()
	m.hideMenu()
}

func (m *Model[T]) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !isPrimaryPress(msg) {
		return nil
	}
	if m.menuVisible {
		filtered := m.Filtered()
		m.menu.width = m.input.bounds().Width
		if idx, ok := m.menu.rowAt(msg.X, msg.Y, m.labels(filtered), m.emptyLabel); ok {
			m.activeIndex = idx
			m.commit(filtered[idx])
			return nil
		}
	}
	if m.input.bounds().Contains(msg.X, msg.Y) {
		return m.Focus()
	}
	return nil
}

func (m *Model[T]) move(delta, n int) {
	m.activeIndex += delta
	if m.activeIndex < 0 {
		m.activeIndex = n - 1
	}
	if m.activeIndex >= n {
		m.activeIndex = 0
	}
	m.menu.reveal(m.activeIndex, n)
}

func (m *Model[T]) commit(option T) {
	m.selected = []T{option}
	m.query = label(option, m.labelKey)
	m.activeIndex = 0
	m.menuVisible = false
	m.menu.reset()
	m.sync()

	m.log.Debug().Str("label", m.query).Msg("option selected")
	m.onChange([]T{option})
}

func (m *Model[T]) remove() {
	m.selected = nil
	m.activeIndex = 0
	m.menuVisible = false
	m.menu.reset()
	m.sync()

	m.log.Debug().Msg("selection removed")
	m.onChange([]T{})
}

func (m *Model[T]) hideMenu() {
	m.activeIndex = 0
	m.menuVisible = false
	m.menu.reset()
	m.sync()
}

// sync pushes the display value and hint into the text field.
func (m *Model[T]) sync() {
	completion := ""
	if len(m.selected) == 0 {
		if rest, ok := m.hint(m.Filtered()); ok && rest != "" {
			completion = m.query + rest
		}
	}
	m.input.setDisplay(m.Value(), completion)
}

func (m *Model[T]) labels(options []T) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = label(o, m.labelKey)
	}
	return out
}

func first[T any](list []T) []T {
	if len(list) == 0 {
		return nil
	}
	return []T{list[0]}
}
