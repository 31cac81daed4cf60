package typeahead

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// menuSurface renders the dropdown below the input. Rows are capped at
// maxRows and scroll so the active row stays visible.
type menuSurface struct {
	styles  Styles
	maxRows int
	offset  int
	x, y    int
	width   int
}

func newMenuSurface(maxRows int, styles Styles) menuSurface {
	return menuSurface{styles: styles, maxRows: max(maxRows, 1)}
}

func (mn *menuSurface) setMaxRows(n int) {
	mn.maxRows = max(n, 1)
}

// reset scrolls back to the top.
func (mn *menuSurface) reset() {
	mn.offset = 0
}

// reveal scrolls until row active of n is visible. This is the row's
// navigation focus; text focus stays in the input.
func (mn *menuSurface) reveal(active, n int) {
	if n <= mn.maxRows {
		mn.offset = 0
		return
	}
	if active < mn.offset {
		mn.offset = active
	}
	if active >= mn.offset+mn.maxRows {
		mn.offset = active - mn.maxRows + 1
	}
	mn.offset = min(max(mn.offset, 0), n-mn.maxRows)
}

// visibleRows is the number of rows drawn for n options; an empty list
// still draws its empty-state row.
func (mn *menuSurface) visibleRows(n int) int {
	if n == 0 {
		return 1
	}
	return min(n, mn.maxRows)
}

func (mn *menuSurface) view(labels []string, active int, emptyLabel string) string {
	if len(labels) == 0 {
		return mn.styles.Menu.Render(mn.styles.EmptyItem.Width(mn.rowWidth([]string{emptyLabel})).Render(emptyLabel))
	}

	width := mn.rowWidth(labels)
	end := min(mn.offset+mn.maxRows, len(labels))
	rows := make([]string, 0, end-mn.offset)
	for i := mn.offset; i < end; i++ {
		style := mn.styles.Item
		if i == active {
			style = mn.styles.ActiveItem
		}
		rows = append(rows, style.Width(width).Render(labels[i]))
	}
	return mn.styles.Menu.Render(strings.Join(rows, "\n"))
}

// rowWidth is the widest label plus item padding, at least the input width.
func (mn *menuSurface) rowWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w = max(w, lipgloss.Width(l))
	}
	w += mn.styles.Item.GetHorizontalFrameSize()
	return max(w, mn.width)
}

func (mn *menuSurface) bounds(labels []string, emptyLabel string) Rect {
	w := mn.rowWidth(labels)
	if len(labels) == 0 {
		w = mn.rowWidth([]string{emptyLabel})
	}
	return Rect{X: mn.x, Y: mn.y, Width: w, Height: mn.visibleRows(len(labels))}
}

// rowAt returns the option index under (x, y). The empty-state row is
// not selectable.
func (mn *menuSurface) rowAt(x, y int, labels []string, emptyLabel string) (int, bool) {
	if len(labels) == 0 {
		return 0, false
	}
	if !mn.bounds(labels, emptyLabel).Contains(x, y) {
		return 0, false
	}
	idx := mn.offset + (y - mn.y)
	if idx >= len(labels) {
		return 0, false
	}
	return idx, true
}
