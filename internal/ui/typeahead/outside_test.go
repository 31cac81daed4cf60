package typeahead_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bessdsv/kitematic/internal/ui/typeahead"
)

func fixed(r typeahead.Rect) typeahead.Bounder {
	return typeahead.BoundsFunc(func() typeahead.Rect { return r })
}

type proxyZone struct {
	own    typeahead.Rect
	target typeahead.Bounder
}

func (p proxyZone) Bounds() typeahead.Rect        { return p.own }
func (p proxyZone) Correspond() typeahead.Bounder { return p.target }

func TestRect_Contains(t *testing.T) {
	r := typeahead.Rect{X: 2, Y: 1, Width: 3, Height: 2}
	assert.True(t, r.Contains(2, 1))
	assert.True(t, r.Contains(4, 2))
	assert.False(t, r.Contains(5, 1))
	assert.False(t, r.Contains(2, 3))
	assert.False(t, r.Contains(1, 1))
	assert.False(t, typeahead.Rect{X: 0, Y: 0}.Contains(0, 0))
}

func TestRect_Union(t *testing.T) {
	a := typeahead.Rect{X: 0, Y: 0, Width: 4, Height: 1}
	b := typeahead.Rect{X: 0, Y: 1, Width: 8, Height: 3}
	assert.Equal(t, typeahead.Rect{X: 0, Y: 0, Width: 8, Height: 4}, a.Union(b))
	assert.Equal(t, a, a.Union(typeahead.Rect{}))
	assert.Equal(t, b, typeahead.Rect{}.Union(b))
}

func TestTracker_DispatchesOnlyOutsidePresses(t *testing.T) {
	tr := typeahead.NewTracker()
	var outside []tea.MouseMsg
	tr.Register(fixed(typeahead.Rect{X: 0, Y: 0, Width: 10, Height: 2}), func(msg tea.MouseMsg) {
		outside = append(outside, msg)
	})

	tr.HandleMouse(press(3, 1))
	assert.Empty(t, outside)

	tr.HandleMouse(press(20, 5))
	assert.Len(t, outside, 1)

	tr.HandleMouse(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	tr.HandleMouse(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	tr.HandleMouse(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionMotion})
	assert.Len(t, outside, 1)
}

func TestTracker_RegisterPanicsWithoutCallback(t *testing.T) {
	tr := typeahead.NewTracker()
	assert.Panics(t, func() {
		tr.Register(fixed(typeahead.Rect{Width: 1, Height: 1}), nil)
	})
	assert.Panics(t, func() {
		tr.Register(nil, func(tea.MouseMsg) {})
	})
	assert.Equal(t, 0, tr.Len())
}

func TestTracker_UnregisterLeavesNothingBehind(t *testing.T) {
	tr := typeahead.NewTracker()
	calls := 0
	reg := tr.Register(fixed(typeahead.Rect{Width: 1, Height: 1}), func(tea.MouseMsg) { calls++ })
	assert.Equal(t, 1, tr.Len())
	assert.True(t, tr.Listening())

	reg.Unregister()
	reg.Unregister()
	assert.Equal(t, 0, tr.Len())
	assert.False(t, tr.Listening())
	assert.False(t, reg.Active())

	tr.HandleMouse(press(5, 5))
	assert.Zero(t, calls)
}

func TestTracker_SuspendIsPerRegistration(t *testing.T) {
	tr := typeahead.NewTracker()
	var a, b int
	regA := tr.Register(fixed(typeahead.Rect{Width: 1, Height: 1}), func(tea.MouseMsg) { a++ })
	tr.Register(fixed(typeahead.Rect{X: 2, Width: 1, Height: 1}), func(tea.MouseMsg) { b++ })

	regA.Suspend()
	tr.HandleMouse(press(9, 9))
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)

	regA.Resume()
	tr.HandleMouse(press(9, 9))
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestTracker_WithSuspended(t *testing.T) {
	tr := typeahead.NewTracker()
	calls := 0
	reg := tr.Register(fixed(typeahead.Rect{Width: 1, Height: 1}), func(tea.MouseMsg) { calls++ }, typeahead.WithSuspended())

	assert.False(t, reg.Active())
	assert.False(t, tr.Listening())
	tr.HandleMouse(press(9, 9))
	assert.Zero(t, calls)

	reg.Resume()
	tr.HandleMouse(press(9, 9))
	assert.Equal(t, 1, calls)
}

func TestTracker_IgnoreZones(t *testing.T) {
	tr := typeahead.NewTracker()
	calls := 0
	tr.Register(fixed(typeahead.Rect{Width: 1, Height: 1}), func(tea.MouseMsg) { calls++ })

	overlay := typeahead.Rect{X: 10, Y: 10, Width: 5, Height: 5}
	remove := tr.Ignore(fixed(overlay))
	tr.HandleMouse(press(12, 12))
	assert.Zero(t, calls)

	remove()
	tr.HandleMouse(press(12, 12))
	assert.Equal(t, 1, calls)
}

func TestTracker_IgnoreFollowsOneIndirection(t *testing.T) {
	tr := typeahead.NewTracker()
	calls := 0
	tr.Register(fixed(typeahead.Rect{Width: 1, Height: 1}), func(tea.MouseMsg) { calls++ })

	marked := typeahead.Rect{X: 20, Y: 0, Width: 2, Height: 2}
	further := typeahead.Rect{X: 40, Y: 0, Width: 2, Height: 2}
	tr.Ignore(proxyZone{
		own:    typeahead.Rect{X: 30, Y: 30, Width: 1, Height: 1},
		target: proxyZone{own: marked, target: fixed(further)},
	})

	tr.HandleMouse(press(20, 1))
	assert.Zero(t, calls)

	tr.HandleMouse(press(40, 1))
	assert.Equal(t, 1, calls)
}

func TestTracker_CallbacksMayMutateRegistry(t *testing.T) {
	tr := typeahead.NewTracker()
	var order []string
	var regB *typeahead.Registration

	tr.Register(fixed(typeahead.Rect{Width: 1, Height: 1}), func(tea.MouseMsg) {
		order = append(order, "a")
		regB.Unregister()
		tr.Register(fixed(typeahead.Rect{Width: 1, Height: 1}), func(tea.MouseMsg) {
			order = append(order, "late")
		})
	})
	regB = tr.Register(fixed(typeahead.Rect{Width: 1, Height: 1}), func(tea.MouseMsg) {
		order = append(order, "b")
	})
	tr.Register(fixed(typeahead.Rect{Width: 1, Height: 1}), func(tea.MouseMsg) {
		order = append(order, "c")
	})

	tr.HandleMouse(press(5, 5))
	assert.Equal(t, []string{"a", "c"}, order)
	assert.Equal(t, 3, tr.Len())
}
