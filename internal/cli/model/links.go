// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/bessdsv/kitematic/internal/application/usecase"
	"github.com/bessdsv/kitematic/internal/cli/styles"
	"github.com/bessdsv/kitematic/internal/domain/entity"
	"github.com/bessdsv/kitematic/internal/infrastructure/config"
	"github.com/bessdsv/kitematic/internal/logging"
	"github.com/bessdsv/kitematic/internal/ui/typeahead"
)

// Fields of a link row, in focus order.
const (
	colContainer = iota
	colAlias
	colAction
	numCols
)

const (
	containerColWidth = 24
	aliasColWidth     = 20

	// title, blank line, column header
	linksHeaderRows = 3
	// blank line, status, help
	linksFooterRows = 3
)

// ConfigChangedMsg carries a configuration reloaded from disk.
type ConfigChangedMsg struct {
	Config *config.Config
}

type linksLoadedMsg struct {
	out        *usecase.LoadLinksOutput
	candidates []*entity.Container
	err        error
}

type linksSavedMsg struct {
	out *usecase.SaveLinksOutput
	err error
}

// linkRow is one editable link: a container typeahead, an alias field and
// an add/remove action.
type linkRow struct {
	id        string
	container string
	picker    *typeahead.Model[*entity.Container]
	alias     textinput.Model
	y         int
}

// LinksModelConfig holds configuration for the links model.
type LinksModelConfig struct {
	LinksUC   *usecase.ManageLinksUseCase
	Container string
	Typeahead config.TypeaheadConfig
}

// LinksModel is the Bubble Tea model for editing a container's links.
type LinksModel struct {
	// UI components
	help    help.Model
	keys    styles.LinksKeyMap
	spinner spinner.Model
	tracker *typeahead.Tracker
	// removes the full help from the tracker's ignore zones
	unignoreHelp func()

	// State
	container  *entity.Container
	candidates []*entity.Container
	rows       []*linkRow
	footerY    int
	focus      int
	loading    bool
	saving     bool
	status     string
	err        error
	width      int
	height     int

	// Config
	name    string
	options config.TypeaheadConfig

	// Dependencies
	ctx     context.Context
	linksUC *usecase.ManageLinksUseCase
	theme   *styles.Theme
}

// NewLinksModel creates a links panel for cfg.Container.
func NewLinksModel(ctx context.Context, theme *styles.Theme, cfg LinksModelConfig) *LinksModel {
	return &LinksModel{
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultLinksKeyMap(),
		spinner: styles.NewDefaultSpinner(theme),
		tracker: typeahead.NewTracker(),
		loading: true,
		width:   80,
		height:  24,
		name:    cfg.Container,
		options: cfg.Typeahead,
		ctx:     logging.WithContainer(logging.WithComponent(ctx, "links"), cfg.Container),
		linksUC: cfg.LinksUC,
		theme:   theme,
	}
}

// Init implements tea.Model.
func (m *LinksModel) Init() tea.Cmd {
	return tea.Batch(m.load, m.spinner.Tick)
}

// load fetches the container's rows and the link candidates.
func (m *LinksModel) load() tea.Msg {
	var (
		out        *usecase.LoadLinksOutput
		candidates []*entity.Container
	)

	g, ctx := errgroup.WithContext(m.ctx)
	g.Go(func() (err error) {
		out, err = m.linksUC.Load(ctx, m.name)
		return err
	})
	g.Go(func() (err error) {
		candidates, err = m.linksUC.Candidates(ctx, m.name)
		return err
	})
	if err := g.Wait(); err != nil {
		return linksLoadedMsg{err: err}
	}
	return linksLoadedMsg{out: out, candidates: candidates}
}

// Update implements tea.Model.
func (m *LinksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.applyMaxHeight()
		return m, nil

	case linksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.container = msg.out.Container
		m.candidates = msg.candidates
		m.setRows(msg.out.Rows)
		return m, m.focusField(0)

	case linksSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Saved %d links", len(msg.out.Links))
		if m.container.HostConfig == nil {
			m.container.HostConfig = &entity.HostConfig{}
		}
		m.container.HostConfig.Links = msg.out.Links
		m.setRows(msg.out.Rows)
		return m, m.focusField(min(m.focus, len(m.rows)*numCols-1))

	case ConfigChangedMsg:
		return m, m.applyConfig(msg.Config)

	case spinner.TickMsg:
		if !m.loading && !m.saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	// Cursor blinks go to the focused field
	return m, m.updateFocused(msg)
}

func (m *LinksModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if len(m.rows) == 0 {
		if key.Matches(msg, m.keys.Quit) {
			return tea.Quit
		}
		return nil
	}

	idx, col := m.focus/numCols, m.focus%numCols
	row := m.rows[idx]

	if col == colContainer {
		cmd, consumed := row.picker.HandleKey(msg)
		if consumed {
			m.layout()
			return cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.NextField):
		return m.focusField(m.focus + 1)
	case key.Matches(msg, m.keys.PrevField):
		return m.focusField(m.focus - 1)
	case key.Matches(msg, m.keys.Save):
		return m.save()
	}

	switch col {
	case colContainer:
		// Typing into a closed picker reopens it
		if row.picker.Focused() {
			return nil
		}
		focusCmd := row.picker.Focus()
		cmd, _ := row.picker.HandleKey(msg)
		m.layout()
		return tea.Batch(focusCmd, cmd)

	case colAlias:
		var cmd tea.Cmd
		row.alias, cmd = row.alias.Update(msg)
		return cmd

	case colAction:
		switch {
		case key.Matches(msg, m.keys.Action):
			return m.toggleRow(idx)
		case key.Matches(msg, m.keys.Help):
			m.toggleHelp()
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		}
	}
	return nil
}

// handleMouse dispatches a press to the tracker first, then to each row
// using the geometry the user saw when pressing.
func (m *LinksModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	m.tracker.HandleMouse(msg)

	var cmds []tea.Cmd
	handled := false
	for i, r := range m.rows {
		wasFocused := r.picker.Focused()
		cmds = append(cmds, r.picker.Update(msg))
		if !wasFocused && r.picker.Focused() {
			m.claimFocus(i*numCols + colContainer)
			handled = true
		}
	}

	if !handled && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		cmds = append(cmds, m.pressRowField(msg.X, msg.Y))
	}

	m.layout()
	return tea.Batch(cmds...)
}

// pressRowField focuses the alias or fires the action under (x, y).
func (m *LinksModel) pressRowField(x, y int) tea.Cmd {
	aliasX := containerColWidth + 1
	actionX := aliasX + aliasColWidth + 1
	for i, r := range m.rows {
		if r.y != y {
			continue
		}
		switch {
		case x >= aliasX && x < aliasX+aliasColWidth:
			return m.focusField(i*numCols + colAlias)
		case x >= actionX && x < actionX+lipgloss.Width(actionLabel(i == len(m.rows)-1)):
			m.focusField(i*numCols + colAction)
			return m.toggleRow(i)
		}
	}
	return nil
}

func (m *LinksModel) updateFocused(msg tea.Msg) tea.Cmd {
	if len(m.rows) == 0 {
		return nil
	}
	row := m.rows[m.focus/numCols]
	switch m.focus % numCols {
	case colContainer:
		return row.picker.Update(msg)
	case colAlias:
		var cmd tea.Cmd
		row.alias, cmd = row.alias.Update(msg)
		return cmd
	}
	return nil
}

// focusField moves focus to field i, wrapping around the table.
func (m *LinksModel) focusField(i int) tea.Cmd {
	total := len(m.rows) * numCols
	if total == 0 {
		return nil
	}
	i = ((i % total) + total) % total

	m.claimFocus(i)
	r := m.rows[i/numCols]

	var cmd tea.Cmd
	switch i % numCols {
	case colContainer:
		cmd = r.picker.Focus()
	case colAlias:
		cmd = r.alias.Focus()
	}
	m.layout()
	return cmd
}

// claimFocus records field i as focused and blurs every other field.
func (m *LinksModel) claimFocus(i int) {
	m.focus = i
	for j, r := range m.rows {
		if j*numCols+colContainer != i {
			r.picker.Blur()
		}
		if j*numCols+colAlias != i {
			r.alias.Blur()
		}
	}
}

// toggleRow adds a row after the last one, or removes row i otherwise.
func (m *LinksModel) toggleRow(i int) tea.Cmd {
	if i == len(m.rows)-1 {
		m.rows = append(m.rows, m.newRow(usecase.NewLinkRow()))
		m.applyMaxHeight()
		return m.focusField((len(m.rows) - 1) * numCols)
	}

	m.rows[i].picker.Unmount()
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return m.focusField(min(m.focus, len(m.rows)*numCols-1))
}

func (m *LinksModel) save() tea.Cmd {
	if m.saving || m.container == nil {
		return nil
	}
	if m.container.State.Updating {
		m.status = "Container is updating, links are read-only"
		return nil
	}

	m.saving = true
	m.status = ""
	input := usecase.SaveLinksInput{Name: m.container.Name, Rows: m.snapshot()}
	ctx, linksUC := m.ctx, m.linksUC

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		out, err := linksUC.Save(ctx, input)
		return linksSavedMsg{out: out, err: err}
	})
}

// snapshot returns the rows as edited so far.
func (m *LinksModel) snapshot() []usecase.LinkRow {
	rows := make([]usecase.LinkRow, len(m.rows))
	for i, r := range m.rows {
		rows[i] = usecase.LinkRow{
			ID:        r.id,
			Container: r.container,
			Alias:     strings.TrimSpace(r.alias.Value()),
		}
	}
	return rows
}

// setRows replaces every row, releasing the old pickers.
func (m *LinksModel) setRows(rows []usecase.LinkRow) {
	for _, r := range m.rows {
		r.picker.Unmount()
	}
	m.rows = make([]*linkRow, 0, len(rows))
	for _, lr := range rows {
		m.rows = append(m.rows, m.newRow(lr))
	}
	if len(m.rows) == 0 {
		m.rows = append(m.rows, m.newRow(usecase.NewLinkRow()))
	}
	m.applyMaxHeight()
	m.layout()
}

func (m *LinksModel) newRow(lr usecase.LinkRow) *linkRow {
	r := &linkRow{id: lr.ID, container: lr.Container}

	r.alias = styles.NewAliasInput(m.theme, aliasColWidth)
	r.alias.SetValue(lr.Alias)

	var selected []*entity.Container
	if lr.Container != "" {
		selected = []*entity.Container{m.candidate(lr.Container)}
	}

	typeaheadStyles := m.theme.TypeaheadStyles()
	picker, err := typeahead.New(m.ctx, typeahead.Config[*entity.Container]{
		ID:          lr.ID,
		Options:     m.candidates,
		LabelKey:    "Name",
		Selected:    selected,
		EmptyLabel:  m.options.EmptyLabel,
		MaxHeight:   m.options.MaxHeight,
		Placeholder: m.options.Placeholder,
		Width:       containerColWidth,
		OnChange: func(sel []*entity.Container) {
			m.handleContainerChange(r, sel)
		},
		Styles: &typeaheadStyles,
	})
	if err != nil {
		// OnChange is always set above
		panic(err)
	}
	picker.Mount(m.tracker)
	r.picker = picker
	return r
}

// candidate returns the stored container called name. Links to containers
// that no longer exist keep a bare entry so the row still shows its name.
func (m *LinksModel) candidate(name string) *entity.Container {
	for _, c := range m.candidates {
		if c.Name == name {
			return c
		}
	}
	return &entity.Container{Name: name}
}

// handleContainerChange keeps the row in step with its picker. Choosing a
// container fills an empty alias with its name; removal clears the row's
// container but keeps the alias.
func (m *LinksModel) handleContainerChange(r *linkRow, sel []*entity.Container) {
	r.picker.SetSelected(sel)
	if len(sel) == 0 {
		r.container = ""
		return
	}
	r.container = sel[0].Name
	if strings.TrimSpace(r.alias.Value()) == "" {
		r.alias.SetValue(sel[0].Name)
	}
	m.status = ""
}

func (m *LinksModel) applyConfig(cfg *config.Config) tea.Cmd {
	if cfg == nil {
		return nil
	}
	logging.FromContext(m.ctx).Debug().Msg("config reloaded")

	m.theme = styles.NewTheme(cfg)
	m.options = cfg.Typeahead
	width := m.help.Width
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = width
	m.spinner.Style = lipgloss.NewStyle().Foreground(m.theme.Accent)

	if m.container == nil {
		return nil
	}
	m.setRows(m.snapshot())
	return m.focusField(m.focus)
}

// toggleHelp shows or hides the full help. While shown, presses on it
// leave open menus alone.
func (m *LinksModel) toggleHelp() {
	m.help.ShowAll = !m.help.ShowAll
	if m.help.ShowAll {
		m.unignoreHelp = m.tracker.Ignore(typeahead.BoundsFunc(m.helpBounds))
		return
	}
	if m.unignoreHelp != nil {
		m.unignoreHelp()
		m.unignoreHelp = nil
	}
}

// helpBounds is the help block below the blank line and the status line.
func (m *LinksModel) helpBounds() typeahead.Rect {
	return typeahead.Rect{
		Y:      m.footerY + 2,
		Width:  m.width,
		Height: lipgloss.Height(m.help.View(m.keys)),
	}
}

// applyMaxHeight caps every dropdown to the configured height and to the
// space left on screen.
func (m *LinksModel) applyMaxHeight() {
	rows := m.options.MaxHeight
	if rows <= 0 {
		rows = typeahead.DefaultMaxHeight
	}
	if m.height > 0 {
		rows = min(rows, max(m.height-linksHeaderRows-linksFooterRows-1, 1))
	}
	for _, r := range m.rows {
		r.picker.SetMaxHeight(rows)
	}
}

// layout places every row below the previous one; an open menu pushes the
// rows under it down.
func (m *LinksModel) layout() {
	y := linksHeaderRows
	for _, r := range m.rows {
		r.y = y
		r.picker.SetOrigin(0, y)
		y += r.picker.Height()
	}
	m.footerY = y
}

// View implements tea.Model.
func (m *LinksModel) View() string {
	t := m.theme

	if m.loading {
		return "\n  " + m.spinner.View() + " " + t.Subtle.Render("Loading links...") + "\n"
	}
	if m.container == nil {
		return t.ErrorStyle.Render("Error: "+errString(m.err)) + "\n"
	}

	title := fmt.Sprintf("%s %s", t.Highlight.Render(styles.IconLink), t.Title.Render("Links of "+m.container.Name))
	if m.container.State.Updating {
		title += " " + t.Badge.Render("updating")
	}
	header := t.Subtitle.Width(containerColWidth+1).Render("CONTAINER") +
		t.Subtitle.Width(aliasColWidth+1).Render("ALIAS")

	lines := make([]string, 0, len(m.rows)+linksHeaderRows+linksFooterRows)
	lines = append(lines, title, "", header)
	for i, r := range m.rows {
		lines = append(lines, m.renderRow(i, r))
	}
	lines = append(lines, "", m.statusLine(), m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *LinksModel) renderRow(i int, r *linkRow) string {
	t := m.theme
	focused := m.focus/numCols == i

	picker := lipgloss.NewStyle().MaxWidth(containerColWidth).Render(r.picker.View())
	alias := t.FieldBox(r.alias.View(), aliasColWidth, focused && m.focus%numCols == colAlias)

	label := actionLabel(i == len(m.rows)-1)
	action := t.Subtle.Render(label)
	if focused && m.focus%numCols == colAction {
		action = t.MenuItemActive.UnsetPadding().Render(label)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, picker, " ", alias, " ", action)
}

func (m *LinksModel) statusLine() string {
	t := m.theme
	switch {
	case m.saving:
		return m.spinner.View() + " " + t.Subtle.Render("Saving...")
	case m.err != nil:
		return t.ErrorStyle.Render("Error: " + m.err.Error())
	case m.status != "":
		return t.SuccessStyle.Render(m.status)
	}
	return ""
}

func actionLabel(last bool) string {
	if last {
		return "[" + styles.IconPlus + "]"
	}
	return "[" + styles.IconMinus + "]"
}

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// Links returns the links as currently edited, complete rows only.
func (m *LinksModel) Links() []entity.Link {
	var out []entity.Link
	for _, r := range m.snapshot() {
		if r.Complete() {
			out = append(out, entity.Link{Container: r.Container, Alias: r.Alias})
		}
	}
	return out
}

// Ensure interface compliance.
var _ tea.Model = (*LinksModel)(nil)
