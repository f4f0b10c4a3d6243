// internal/app/input.go
package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputMode identifies what the text prompt is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputNewPlaylist
	inputRenamePlaylist
	inputSong
	inputEntry
	inputSearch
	inputAccent
)

func (m Model) startInput(mode inputMode, title, placeholder, value string) (tea.Model, tea.Cmd) {
	m.inputMode = mode
	m.input.Reset()
	m.input.Prompt = "> "
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.inputTitle = title
	return m, tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m Model) endInput() Model {
	m.inputMode = inputNone
	m.inputTarget = ""
	m.inputTitle = ""
	m.input.Blur()
	m.input.Reset()
	return m
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // Only handling prompt keys
	case tea.KeyEsc:
		return m.endInput(), nil

	case tea.KeyEnter:
		mode := m.inputMode
		target := m.inputTarget
		value := m.input.Value()
		m = m.endInput()
		return m.submitInput(mode, target, value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitInput(mode inputMode, target, value string) (tea.Model, tea.Cmd) {
	switch mode {
	case inputNewPlaylist:
		return m.createPlaylist(value)
	case inputRenamePlaylist:
		return m.renamePlaylist(target, value)
	case inputSong:
		return m.addSong(value)
	case inputEntry:
		return m.addEntry(value)
	case inputSearch:
		return m.searchPlaces(value)
	case inputAccent:
		return m.setAccent(value)
	case inputNone:
	}
	return m, nil
}
