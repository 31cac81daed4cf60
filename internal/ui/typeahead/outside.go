package typeahead

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return r.Width > 0 && r.Height > 0 &&
		x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Union returns the smallest rectangle covering r and o. Empty
// rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Width <= 0 || r.Height <= 0 {
		return o
	}
	if o.Width <= 0 || o.Height <= 0 {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1 := max(r.X+r.Width, o.X+o.Width)
	y1 := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Bounder reports the area a component occupied in the last layout pass.
type Bounder interface {
	Bounds() Rect
}

// BoundsFunc adapts a function to Bounder.
type BoundsFunc func() Rect

func (f BoundsFunc) Bounds() Rect { return f() }

// Corresponder is implemented by ignore zones that stand in for the zone
// of another component, like an overlay drawn on its behalf. Only one
// level of indirection is followed.
type Corresponder interface {
	Correspond() Bounder
}

// Tracker dispatches presses that land outside registered components.
// It is owned by the root model and only used from its Update.
type Tracker struct {
	regs   []*Registration
	ignore []*ignoreZone
}

// Registration is a component's slot in a Tracker.
type Registration struct {
	tracker   *Tracker
	handle    Bounder
	onOutside func(tea.MouseMsg)
	suspended bool
	removed   bool
}

type ignoreZone struct {
	zone Bounder
}

// RegisterOption configures a registration.
type RegisterOption func(*Registration)

// WithSuspended registers without listening until Resume is called.
func WithSuspended() RegisterOption {
	return func(r *Registration) { r.suspended = true }
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Register starts tracking handle. onOutside runs for every primary press
// outside handle's bounds and outside every ignore zone.
// Register panics if handle or onOutside is nil.
func (t *Tracker) Register(handle Bounder, onOutside func(tea.MouseMsg), opts ...RegisterOption) *Registration {
	if handle == nil {
		panic("typeahead: Register called without a handle")
	}
	if onOutside == nil {
		panic("typeahead: Register called without an outside-press handler")
	}

	r := &Registration{tracker: t, handle: handle, onOutside: onOutside}
	for _, opt := range opts {
		opt(r)
	}
	t.regs = append(t.regs, r)
	return r
}

// Ignore marks zone as inside for every registration. The returned
// function removes the zone.
func (t *Tracker) Ignore(zone Bounder) func() {
	z := &ignoreZone{zone: zone}
	t.ignore = append(t.ignore, z)
	return func() {
		t.ignore = slices.DeleteFunc(t.ignore, func(o *ignoreZone) bool { return o == z })
	}
}

// Len reports the number of live registrations.
func (t *Tracker) Len() int {
	return len(t.regs)
}

// Listening reports whether any registration is currently listening.
func (t *Tracker) Listening() bool {
	for _, r := range t.regs {
		if !r.suspended {
			return true
		}
	}
	return false
}

// HandleMouse dispatches msg to the registrations it lies outside of.
// Registrations added or removed by a callback take effect for the next
// press; removed ones are skipped immediately.
func (t *Tracker) HandleMouse(msg tea.MouseMsg) {
	if !isPrimaryPress(msg) || len(t.regs) == 0 {
		return
	}
	if t.ignored(msg.X, msg.Y) {
		return
	}

	snapshot := slices.Clone(t.regs)
	for _, r := range snapshot {
		if r.removed || r.suspended {
			continue
		}
		if r.handle.Bounds().Contains(msg.X, msg.Y) {
			continue
		}
		r.onOutside(msg)
	}
}

func (t *Tracker) ignored(x, y int) bool {
	for _, z := range t.ignore {
		if z.zone.Bounds().Contains(x, y) {
			return true
		}
		if c, ok := z.zone.(Corresponder); ok {
			if other := c.Correspond(); other != nil && other.Bounds().Contains(x, y) {
				return true
			}
		}
	}
	return false
}

// Unregister removes the registration. Calling it twice is a no-op.
func (r *Registration) Unregister() {
	if r == nil || r.removed {
		return
	}
	r.removed = true
	t := r.tracker
	t.regs = slices.DeleteFunc(t.regs, func(o *Registration) bool { return o == r })
}

// Suspend stops outside dispatch for this registration only.
func (r *Registration) Suspend() {
	if r != nil {
		r.suspended = true
	}
}

// Resume restarts outside dispatch after Suspend or WithSuspended.
func (r *Registration) Resume() {
	if r != nil && !r.removed {
		r.suspended = false
	}
}

// Active reports whether the registration is live and listening.
func (r *Registration) Active() bool {
	return r != nil && !r.removed && !r.suspended
}

func isPrimaryPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
