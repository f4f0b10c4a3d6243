package list

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newList(n, height int) Model[string] {
	m := New(func(s string, _ int) string { return s }, "nothing here")
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i)
	}
	m.SetItems(items)
	m.SetSize(20, height)
	return m
}

func TestUpdate_Navigation(t *testing.T) {
	m := newList(5, 10)

	assert.True(t, m.Update(keyMsg("j")))
	assert.True(t, m.Update(keyMsg("down")))
	assert.Equal(t, 2, m.SelectedIndex())

	assert.True(t, m.Update(keyMsg("k")))
	assert.Equal(t, 1, m.SelectedIndex())

	m.Update(keyMsg("G"))
	assert.Equal(t, 4, m.SelectedIndex())
	m.Update(keyMsg("j"))
	assert.Equal(t, 4, m.SelectedIndex(), "clamped at the end")

	m.Update(keyMsg("g"))
	assert.Equal(t, 0, m.SelectedIndex())
	m.Update(keyMsg("up"))
	assert.Equal(t, 0, m.SelectedIndex(), "clamped at the start")
}

func TestUpdate_IgnoresOtherKeys(t *testing.T) {
	m := newList(5, 10)
	assert.False(t, m.Update(keyMsg("a")))
	assert.False(t, m.Update(tea.WindowSizeMsg{Width: 10, Height: 10}))
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	m := newList(50, 10)

	for range 20 {
		m.Update(keyMsg("j"))
	}
	start, end := m.VisibleRange()
	assert.Equal(t, 20, m.SelectedIndex())
	assert.Less(t, m.SelectedIndex(), end-ScrollMargin+1)
	assert.GreaterOrEqual(t, m.SelectedIndex(), start)
	assert.Equal(t, 10, end-start)

	m.Update(keyMsg("G"))
	start, end = m.VisibleRange()
	assert.Equal(t, 40, start)
	assert.Equal(t, 50, end)
}

func TestHalfPage(t *testing.T) {
	m := newList(50, 10)
	m.Update(keyMsg("ctrl+d"))
	assert.Equal(t, 5, m.SelectedIndex())
}

func TestSetItems_ClampsCursor(t *testing.T) {
	m := newList(5, 10)
	m.Select(4)
	m.SetItems([]string{"a", "b"})
	assert.Equal(t, 1, m.SelectedIndex())

	m.SetItems(nil)
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, m.SelectedIndex())
}

func TestSelected(t *testing.T) {
	m := newList(3, 10)
	m.Select(2)
	item, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, "item 2", item)

	m.Select(99)
	assert.Equal(t, 2, m.SelectedIndex())
}

func TestView(t *testing.T) {
	m := newList(3, 2)
	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "item 0")
	assert.Contains(t, lines[1], "item 1")

	empty := New(func(s string, _ int) string { return s }, "nothing here")
	empty.SetSize(20, 5)
	assert.Contains(t, empty.View(), "nothing here")

	var zero Model[string]
	assert.Empty(t, zero.View())
}
