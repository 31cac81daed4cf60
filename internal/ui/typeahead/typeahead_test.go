package typeahead_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bessdsv/kitematic/internal/ui/typeahead"
)

var fleet = []container{{"db"}, {"web"}, {"worker"}}

type changes struct {
	calls [][]container
}

func (c *changes) record(selected []container) {
	c.calls = append(c.calls, selected)
}

func (c *changes) last() []container {
	if len(c.calls) == 0 {
		return nil
	}
	return c.calls[len(c.calls)-1]
}

func newWidget(t *testing.T, cfg typeahead.Config[container]) (*typeahead.Model[container], *changes) {
	t.Helper()
	ch := &changes{}
	if cfg.OnChange == nil {
		cfg.OnChange = ch.record
	}
	if cfg.LabelKey == "" {
		cfg.LabelKey = "Name"
	}
	m, err := typeahead.New(testCtx(), cfg)
	require.NoError(t, err)
	return m, ch
}

func typeText[T any](m *typeahead.Model[T], s string) {
	for _, r := range s {
		m.Update(keyPress(string(r)))
	}
}

func TestNew_RequiresOnChange(t *testing.T) {
	_, err := typeahead.New(testCtx(), typeahead.Config[container]{Options: fleet})
	assert.ErrorIs(t, err, typeahead.ErrMissingOnChange)
}

func TestNew_Defaults(t *testing.T) {
	m, err := typeahead.New(testCtx(), typeahead.Config[map[string]any]{
		Options:  []map[string]any{{"label": "alpha"}},
		OnChange: func([]map[string]any) {},
	})
	require.NoError(t, err)

	m.Focus()
	typeText(m, "zz")
	assert.Contains(t, m.View(), typeahead.DefaultEmptyLabel)
	assert.Equal(t, typeahead.StateEditing, m.State())
}

func TestNew_InitialSelection(t *testing.T) {
	m, _ := newWidget(t, typeahead.Config[container]{
		Options:  fleet,
		Selected: []container{{"db"}},
	})
	assert.Equal(t, []container{{"db"}}, m.Selected())
	assert.Equal(t, "db", m.Value())
	assert.Equal(t, typeahead.StateIdle, m.State())

	m, _ = newWidget(t, typeahead.Config[container]{
		Options:         fleet,
		Selected:        []container{{"db"}},
		DefaultSelected: []container{{"web"}},
	})
	assert.Equal(t, []container{{"web"}}, m.Selected())
	assert.Equal(t, "web", m.Value())
}

func TestFocus_OpensMenu(t *testing.T) {
	m, _ := newWidget(t, typeahead.Config[container]{Options: fleet})
	assert.False(t, m.MenuVisible())

	m.Focus()
	assert.True(t, m.Focused())
	assert.True(t, m.MenuVisible())
	assert.Equal(t, typeahead.StateEditing, m.State())
	assert.Equal(t, 0, m.ActiveIndex())
	assert.Equal(t, 4, m.Height())
}

func TestTextChange_ResetsActiveIndex(t *testing.T) {
	m, _ := newWidget(t, typeahead.Config[container]{Options: fleet})
	m.Focus()
	m.Update(keyPress("down"))
	m.Update(keyPress("down"))
	assert.Equal(t, 2, m.ActiveIndex())

	typeText(m, "w")
	assert.Equal(t, "w", m.Query())
	assert.Equal(t, 0, m.ActiveIndex())
	assert.True(t, m.MenuVisible())
	assert.Equal(t, []container{{"web"}, {"worker"}}, m.Filtered())
}

func TestNavigation_Wraparound(t *testing.T) {
	m, _ := newWidget(t, typeahead.Config[container]{Options: fleet})
	m.Focus()

	_, consumed := m.HandleKey(keyPress("up"))
	assert.True(t, consumed)
	assert.Equal(t, 2, m.ActiveIndex())

	m.HandleKey(keyPress("down"))
	assert.Equal(t, 0, m.ActiveIndex())

	_, consumed = m.HandleKey(keyPress("tab"))
	assert.True(t, consumed)
	assert.Equal(t, 1, m.ActiveIndex())
	assert.True(t, m.Focused())
}

func TestNavigation_IgnoredWithoutOptions(t *testing.T) {
	m, _ := newWidget(t, typeahead.Config[container]{})
	m.Focus()

	_, consumed := m.HandleKey(keyPress("down"))
	assert.False(t, consumed)
	assert.Equal(t, 0, m.ActiveIndex())
}

func TestScenario_TypeDownEnterCommitsWorker(t *testing.T) {
	m, ch := newWidget(t, typeahead.Config[container]{Options: fleet})
	m.Focus()

	typeText(m, "w")
	assert.Equal(t, []container{{"web"}, {"worker"}}, m.Filtered())

	m.Update(keyPress("down"))
	_, consumed := m.HandleKey(keyPress("enter"))
	assert.True(t, consumed)

	require.Len(t, ch.calls, 1)
	assert.Equal(t, []container{{"worker"}}, ch.last())
	assert.Equal(t, []container{{"worker"}}, m.Selected())
	assert.Equal(t, "worker", m.Value())
	assert.Equal(t, "worker", m.Query())
	assert.False(t, m.MenuVisible())
	assert.Equal(t, 0, m.ActiveIndex())
	assert.Equal(t, typeahead.StateIdle, m.State())
	assert.True(t, m.Focused())
}

func TestEnter_WithMenuClosedPassesThrough(t *testing.T) {
	m, ch := newWidget(t, typeahead.Config[container]{Options: fleet})
	m.Focus()
	m.Update(keyPress("enter"))
	require.Len(t, ch.calls, 1)

	_, consumed := m.HandleKey(keyPress("enter"))
	assert.False(t, consumed)
	assert.Len(t, ch.calls, 1)

	_, consumed = m.HandleKey(keyPress("tab"))
	assert.False(t, consumed)
}

func TestEscape_ClosesWithoutCommit(t *testing.T) {
	m, ch := newWidget(t, typeahead.Config[container]{Options: fleet, Selected: []container{{"db"}}})
	m.Focus()
	typeText(m, "w")

	_, consumed := m.HandleKey(keyPress("esc"))
	assert.True(t, consumed)
	assert.False(t, m.MenuVisible())
	assert.False(t, m.Focused())
	assert.Equal(t, 0, m.ActiveIndex())
	assert.Equal(t, []container{{"db"}}, m.Selected())
	assert.Empty(t, ch.calls)
}

func TestCommit_DisplayMatchesLabel(t *testing.T) {
	for i, o := range fleet {
		m, ch := newWidget(t, typeahead.Config[container]{Options: fleet})
		m.Focus()
		for range i {
			m.Update(keyPress("down"))
		}
		m.Update(keyPress("enter"))

		assert.Equal(t, o.Name, m.Value())
		assert.Equal(t, []container{o}, m.Selected())
		assert.Equal(t, []container{o}, ch.last())
	}
}

func TestRemove_AlwaysEmptiesSelection(t *testing.T) {
	for _, query := range []string{"", "w", "worker", "nothing"} {
		m, ch := newWidget(t, typeahead.Config[container]{Options: fleet, Selected: []container{{"web"}}})
		m.Focus()
		typeText(m, query)
		require.Equal(t, []container{{"web"}}, m.Selected())

		_, consumed := m.HandleKey(keyPress("backspace"))
		assert.True(t, consumed)

		assert.Empty(t, m.Selected())
		require.Len(t, ch.calls, 1)
		assert.Equal(t, []container{}, ch.last())
		assert.False(t, m.MenuVisible())
		assert.Equal(t, 0, m.ActiveIndex())
	}
}

func TestRemove_KeepsTextAndSuppressesDeletion(t *testing.T) {
	m, _ := newWidget(t, typeahead.Config[container]{Options: fleet})
	m.Focus()
	typeText(m, "wor")
	m.Update(keyPress("enter"))
	require.Equal(t, "worker", m.Value())

	m.Update(keyPress("backspace"))
	assert.Equal(t, "worker", m.Value())
	assert.Equal(t, "worker", m.Query())

	m.Update(keyPress("backspace"))
	assert.Equal(t, "worke", m.Value())
	assert.True(t, m.MenuVisible())
}

func TestTypingWithSelectionKeepsLabelDisplayed(t *testing.T) {
	m, ch := newWidget(t, typeahead.Config[container]{Options: fleet, Selected: []container{{"web"}}})
	m.Focus()
	typeText(m, "x")

	assert.Equal(t, "web", m.Value())
	assert.Equal(t, "webx", m.Query())
	assert.Equal(t, []container{{"web"}}, m.Selected())
	assert.Empty(t, ch.calls)
}

func TestHint(t *testing.T) {
	m, _ := newWidget(t, typeahead.Config[container]{Options: fleet})
	assert.Empty(t, m.Hint())

	m.Focus()
	assert.Empty(t, m.Hint())

	typeText(m, "w")
	assert.Equal(t, "eb", m.Hint())

	typeText(m, "o")
	assert.Equal(t, "rker", m.Hint())

	m.Blur()
	assert.Empty(t, m.Hint())
}

func TestHint_IsCaseSensitive(t *testing.T) {
	m, _ := newWidget(t, typeahead.Config[container]{Options: fleet})
	m.Focus()
	typeText(m, "W")

	assert.Len(t, m.Filtered(), 2)
	assert.Empty(t, m.Hint())

	_, consumed := m.HandleKey(keyPress("right"))
	assert.True(t, consumed)
	assert.Empty(t, m.Selected())
}

func TestRightArrow_AcceptsHint(t *testing.T) {
	m, ch := newWidget(t, typeahead.Config[container]{Options: fleet})
	m.Focus()
	typeText(m, "wo")

	_, consumed := m.HandleKey(keyPress("right"))
	assert.True(t, consumed)
	assert.Equal(t, []container{{"worker"}}, ch.last())
	assert.Equal(t, "worker", m.Value())
}

func TestRightArrow_ExactLabelStillAccepts(t *testing.T) {
	m, ch := newWidget(t, typeahead.Config[container]{Options: fleet})
	m.Focus()
	typeText(m, "db")
	assert.Empty(t, m.Hint())

	m.Update(keyPress("right"))
	assert.Equal(t, []container{{"db"}}, ch.last())
}

func TestRightArrow_IgnoredWithSelection(t *testing.T) {
	m, ch := newWidget(t, typeahead.Config[container]{Options: fleet, Selected: []container{{"web"}}})
	m.Focus()
	m.Update(keyPress("right"))
	assert.Empty(t, ch.calls)
}

func TestOnKeyDown_ReceivesUnhandledKeys(t *testing.T) {
	var keys []string
	m, _ := newWidget(t, typeahead.Config[container]{
		Options:   fleet,
		OnKeyDown: func(msg tea.KeyMsg) { keys = append(keys, msg.String()) },
	})
	m.Focus()
	typeText(m, "w")
	m.Update(keyPress("down"))
	m.Update(keyPress("esc"))

	assert.Equal(t, []string{"w", "down"}, keys)
}

func TestKeysIgnoredWhileBlurred(t *testing.T) {
	m, _ := newWidget(t, typeahead.Config[container]{Options: fleet})
	_, consumed := m.HandleKey(keyPress("w"))
	assert.False(t, consumed)
	assert.Empty(t, m.Query())
}

func TestControlledOverride(t *testing.T) {
	m, ch := newWidget(t, typeahead.Config[container]{Options: fleet})

	m.SetSelected([]container{{"db"}})
	assert.Equal(t, "db", m.Value())

	m.Focus()
	m.Update(keyPress("backspace"))
	typeText(m, "xyz")
	require.Empty(t, m.Selected())

	m.SetSelected([]container{{"web"}})
	assert.Equal(t, "web", m.Value())
	assert.Equal(t, "web", m.Query())
	assert.Equal(t, []container{{"web"}}, m.Selected())
	assert.Len(t, ch.calls, 1)
}

func TestControlledOverride_ResetsActiveRowWhileOpen(t *testing.T) {
	m, ch := newWidget(t, typeahead.Config[container]{Options: fleet})
	m.Focus()
	m.Update(keyPress("down"))
	m.Update(keyPress("down"))
	require.Equal(t, 2, m.ActiveIndex())

	m.SetSelected([]container{{"db"}})

	require.True(t, m.MenuVisible())
	assert.Equal(t, []container{{"db"}}, m.Filtered())
	assert.Equal(t, 0, m.ActiveIndex())

	m.Update(keyPress("enter"))
	assert.Equal(t, []container{{"db"}}, ch.last())
	assert.False(t, m.MenuVisible())
}

func TestControlledOverride_SameValueIsIgnored(t *testing.T) {
	m, _ := newWidget(t, typeahead.Config[container]{Options: fleet, Selected: []container{{"db"}}})
	m.Focus()
	m.Update(keyPress("backspace"))
	require.Empty(t, m.Selected())

	m.SetSelected([]container{{"db"}})
	assert.Empty(t, m.Selected())

	m.SetSelected(nil)
	m.SetSelected([]container{{"db"}})
	assert.Equal(t, []container{{"db"}}, m.Selected())
}

func TestControlledOverride_EmptyClearsSelection(t *testing.T) {
	m, _ := newWidget(t, typeahead.Config[container]{Options: fleet, Selected: []container{{"db"}}})
	m.SetSelected([]container{})
	assert.Empty(t, m.Selected())
	assert.Equal(t, "db", m.Value())
}

func TestOutsidePress_ClosesWithoutChangingSelection(t *testing.T) {
	tr := typeahead.NewTracker()
	m, ch := newWidget(t, typeahead.Config[container]{Options: fleet, Selected: []container{{"db"}}})
	m.Mount(tr)
	m.SetOrigin(0, 0)

	m.Focus()
	m.Update(keyPress("backspace"))
	ch.calls = nil
	before := m.Selected()

	typeText(m, "abc")
	require.True(t, m.MenuVisible())

	tr.HandleMouse(press(60, 30))

	assert.False(t, m.MenuVisible())
	assert.False(t, m.Focused())
	assert.Equal(t, before, m.Selected())
	assert.Equal(t, "dbabc", m.Query())
	assert.Empty(t, ch.calls)
}

func TestPressInsideWidgetIsNotOutside(t *testing.T) {
	tr := typeahead.NewTracker()
	m, ch := newWidget(t, typeahead.Config[container]{Options: fleet})
	m.Mount(tr)
	m.SetOrigin(0, 0)
	m.Focus()
	typeText(m, "w")

	click := press(1, 2)
	tr.HandleMouse(click)
	assert.True(t, m.MenuVisible())

	m.Update(click)
	assert.Equal(t, []container{{"worker"}}, ch.last())
	assert.False(t, m.MenuVisible())
}

func TestPressOnInputFocuses(t *testing.T) {
	tr := typeahead.NewTracker()
	m, _ := newWidget(t, typeahead.Config[container]{Options: fleet, Placeholder: "pick one"})
	m.Mount(tr)
	m.SetOrigin(4, 3)

	m.Update(press(0, 0))
	assert.False(t, m.Focused())

	cmd := m.Update(press(5, 3))
	assert.NotNil(t, cmd)
	assert.True(t, m.Focused())
	assert.True(t, m.MenuVisible())
}

func TestUnsizedInput_FitsPlaceholder(t *testing.T) {
	m, _ := newWidget(t, typeahead.Config[container]{Options: fleet, Placeholder: "pick one"})
	m.SetOrigin(0, 0)

	assert.Contains(t, m.View(), "pick one")
	assert.GreaterOrEqual(t, m.Bounds().Width, len("pick one"))

	m.Focus()
	typeText(m, "workerx")
	assert.Contains(t, m.View(), "workerx")
	assert.GreaterOrEqual(t, m.Bounds().Width, len("workerx"))
}

func TestEmptyOptions_RendersOnlyEmptyLabel(t *testing.T) {
	m, ch := newWidget(t, typeahead.Config[container]{EmptyLabel: "Nothing to link"})
	m.SetOrigin(0, 0)
	m.Focus()

	view := m.View()
	assert.Contains(t, view, "Nothing to link")
	assert.Empty(t, m.Filtered())
	assert.Equal(t, 2, m.Height())

	m.Update(press(1, 1))
	m.Update(keyPress("enter"))
	assert.Empty(t, ch.calls)
	assert.Empty(t, m.Selected())
}

func TestMaxHeight_ScrollsActiveRowIntoView(t *testing.T) {
	options := []container{{"alpha"}, {"bravo"}, {"charlie"}, {"delta"}, {"echo"}}
	m, ch := newWidget(t, typeahead.Config[container]{Options: options, MaxHeight: 2})
	m.SetOrigin(0, 0)
	m.Focus()
	assert.Equal(t, 3, m.Height())

	for range 3 {
		m.Update(keyPress("down"))
	}
	view := m.View()
	assert.Contains(t, view, "charlie")
	assert.Contains(t, view, "delta")
	assert.NotContains(t, view, "alpha")

	m.Update(press(1, 2))
	assert.Equal(t, []container{{"delta"}}, ch.last())
}

func TestUnmount_ReleasesRegistrations(t *testing.T) {
	tr := typeahead.NewTracker()
	m, ch := newWidget(t, typeahead.Config[container]{Options: fleet})
	m.Mount(tr)
	assert.Equal(t, 2, tr.Len())

	m.Unmount()
	m.Unmount()
	assert.Equal(t, 0, tr.Len())

	assert.Nil(t, m.Focus())
	m.Update(keyPress("w"))
	tr.HandleMouse(press(50, 50))
	assert.False(t, m.Focused())
	assert.Empty(t, ch.calls)
}

func TestDisableOnClickOutside(t *testing.T) {
	tr := typeahead.NewTracker()
	m, _ := newWidget(t, typeahead.Config[container]{Options: fleet, DisableOnClickOutside: true})
	m.Mount(tr)
	m.SetOrigin(0, 0)
	m.Focus()

	tr.HandleMouse(press(50, 50))
	assert.True(t, m.MenuVisible())
	assert.True(t, m.Focused())

	m.EnableOnClickOutside()
	tr.HandleMouse(press(50, 50))
	assert.False(t, m.MenuVisible())
	assert.False(t, m.Focused())
}

func TestSetOptions_ResetsActiveIndex(t *testing.T) {
	m, _ := newWidget(t, typeahead.Config[container]{Options: fleet})
	m.Focus()
	m.Update(keyPress("down"))
	require.Equal(t, 1, m.ActiveIndex())

	m.SetOptions([]container{{"api"}})
	assert.Equal(t, 0, m.ActiveIndex())
	assert.Equal(t, []container{{"api"}}, m.Filtered())
}

func TestPointerOptions(t *testing.T) {
	a, b := &container{"db"}, &container{"web"}
	var got [][]*container
	m, err := typeahead.New(testCtx(), typeahead.Config[*container]{
		Options:  []*container{a, b},
		LabelKey: "Name",
		OnChange: func(sel []*container) { got = append(got, sel) },
	})
	require.NoError(t, err)

	m.Focus()
	m.Update(keyPress("down"))
	m.Update(keyPress("enter"))
	require.Len(t, got, 1)
	assert.Same(t, b, got[0][0])
}
