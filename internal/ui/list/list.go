// Package list provides a generic scrollable list component.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/ui/render"
	"github.com/llehouerou/setlist/internal/ui/styles"
)

// ScrollMargin is the number of items kept visible above/below the cursor.
const ScrollMargin = 3

// RenderFunc renders one item into at most width cells.
type RenderFunc[T any] func(item T, width int) string

// Model is a scrollable list with a cursor. The parent owns the items and
// handles actions; the list only navigates and renders.
type Model[T any] struct {
	items  []T
	render RenderFunc[T]
	empty  string

	pos    int // cursor position
	offset int // first visible item
	margin int

	width, height int
}

// New creates a list rendering items with render. empty is shown when the
// list has no items.
func New[T any](render RenderFunc[T], empty string) Model[T] {
	return Model[T]{render: render, empty: empty, margin: ScrollMargin}
}

// SetSize sets the viewport dimensions.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

// SetItems replaces all items and clamps the cursor to bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	if len(items) == 0 {
		m.pos, m.offset = 0, 0
		return
	}
	m.pos = clamp(m.pos, len(items)-1)
	m.ensureVisible()
}

// Items returns the current items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor, or false if empty.
func (m Model[T]) Selected() (T, bool) {
	if m.pos >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.pos], true
}

// SelectedIndex returns the cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.pos
}

// Select moves the cursor to index i, clamped.
func (m *Model[T]) Select(i int) {
	if len(m.items) == 0 {
		return
	}
	m.pos = clamp(i, len(m.items)-1)
	m.ensureVisible()
}

// Update handles navigation keys and reports whether msg was consumed.
// Supported keys: j/down, k/up, g/home, G/end, ctrl+d, ctrl+u.
func (m *Model[T]) Update(msg tea.Msg) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	switch keyMsg.String() {
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "g", "home":
		m.pos, m.offset = 0, 0
	case "G", "end":
		m.move(len(m.items))
	case "ctrl+d":
		m.move(m.height / 2)
	case "ctrl+u":
		m.move(-m.height / 2)
	default:
		return false
	}
	return true
}

// VisibleRange returns the [start, end) indices on screen.
func (m Model[T]) VisibleRange() (start, end int) {
	if len(m.items) == 0 || m.height <= 0 {
		return 0, 0
	}
	return m.offset, min(m.offset+m.height, len(m.items))
}

// View renders the visible rows, the cursor row highlighted.
func (m Model[T]) View() string {
	if m.height <= 0 || m.width <= 0 {
		return ""
	}
	s := styles.T().S()
	if len(m.items) == 0 {
		return s.Subtle.Render(render.Truncate(m.empty, m.width))
	}

	start, end := m.VisibleRange()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := render.TruncateAndPad(m.render(m.items[i], m.width), m.width)
		if i == m.pos {
			row = s.Cursor.Render(row)
		} else {
			row = s.Base.Render(row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (m *Model[T]) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.pos = clamp(m.pos+delta, len(m.items)-1)
	m.ensureVisible()
}

func (m *Model[T]) ensureVisible() {
	if m.height <= 0 || len(m.items) == 0 {
		return
	}
	margin := min(m.margin, (m.height-1)/2)

	if m.pos < m.offset+margin {
		m.offset = max(m.pos-margin, 0)
	}
	if m.pos >= m.offset+m.height-margin {
		m.offset = m.pos - m.height + margin + 1
	}
	m.offset = clamp(m.offset, max(len(m.items)-m.height, 0))
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
