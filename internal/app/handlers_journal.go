// internal/app/handlers_journal.go
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/editor"
	"github.com/llehouerou/setlist/internal/journal"
	"github.com/llehouerou/setlist/internal/keymap"
)

func (m Model) handleJournalAction(action keymap.Action) (tea.Model, tea.Cmd) {
	switch action { //nolint:exhaustive // Only handling journal actions
	case keymap.ActionAdd:
		return m.startInput(inputEntry, "How do you feel? "+strings.Join(journal.Moods, " "),
			"mood (1-6 or emoji) then a note", "")

	case keymap.ActionDelete:
		e, ok := m.entryList.Selected()
		if !ok {
			return m, nil
		}
		next, cmd := m.applyJournal(m.Journal.Dispatch(journal.Remove{ID: e.ID}))
		nm := next.(Model)
		nm.setStatus("Entry deleted (u to undo)")
		return nm, cmd

	case keymap.ActionStats:
		m.showStats = true
		return m, nil

	case keymap.ActionUndo:
		return m.applyJournal(m.Journal.Undo())

	case keymap.ActionRedo:
		return m.applyJournal(m.Journal.Redo())
	}
	return m, nil
}

func (m Model) applyJournal(w *editor.Write) (tea.Model, tea.Cmd) {
	m.entryList.SetItems(m.Journal.Items())
	return m, ExecCmd(w)
}

func (m Model) addEntry(input string) (tea.Model, tea.Cmd) {
	mood, note := parseEntryInput(input)
	next, cmd := m.applyJournal(m.Journal.Dispatch(journal.Add{Entry: journal.NewEntry(mood, note, m.now())}))
	nm := next.(Model)
	nm.entryList.Select(0)
	return nm, cmd
}

// parseEntryInput reads "<mood> <note>". Without a leading mood the whole
// input is the note and the default mood is used.
func parseEntryInput(input string) (mood, note string) {
	input = strings.TrimSpace(input)
	first, rest, _ := strings.Cut(input, " ")
	if mood, err := journal.ParseMood(first); err == nil {
		return mood, strings.TrimSpace(rest)
	}
	return journal.DefaultMood, input
}
