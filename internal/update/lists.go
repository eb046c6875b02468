package update

import (
	"github.com/sandeepkv93/rem/internal/input"
	"github.com/sandeepkv93/rem/internal/model"
	"github.com/sandeepkv93/rem/internal/views"
)

func (m Model) handleListsCommand(cmd input.Command) Model {
	switch cmd.Type {
	case input.CmdMoveUp:
		m.ListsIndex = clampIndex(m.ListsIndex-1, len(m.Lists))
	case input.CmdMoveDown:
		m.ListsIndex = clampIndex(m.ListsIndex+1, len(m.Lists))
	case input.CmdSelect:
		sel, ok := m.SelectedList()
		if !ok {
			return m
		}
		m = m.enterReminders(sel.ID)
		m.setLoading("loading " + sel.Name)
		m.emit(model.SelectList{ListID: sel.ID})
	case input.CmdOpenCreateForm:
		preselect := ""
		if sel, ok := m.SelectedList(); ok {
			preselect = sel.ID
		}
		m = m.openForm(preselect)
	case input.CmdRefresh:
		m.setLoading("refreshing lists")
		m.emit(model.Refresh{})
	case input.CmdStartSearch:
		m = m.enterReminders(GlobalListID)
		m.Search = SearchState{Active: true}
		m.syncSearchInput()
		m.setLoading("searching all lists")
		m.emit(model.GlobalSearch{Query: ""})
	}
	return m
}

// enterReminders switches to a Reminders view with an empty snapshot. The
// previous view's data never leaks into the new one.
func (m Model) enterReminders(listID string) Model {
	m.Current = RemindersView(listID)
	m.Reminders = nil
	m.ListNames = nil
	m.RemindersIndex = 0
	m.Search = SearchState{}
	m.syncSearchInput()
	m.Chord = input.ChordState{}
	return m
}

func (m Model) renderListsView() string {
	rows := make([]views.ListRowData, 0, len(m.Lists))
	for i, l := range m.Lists {
		rows = append(rows, views.ListRowData{
			Name:     l.Name,
			Color:    l.Color,
			Count:    l.Count,
			Selected: i == m.ListsIndex,
		})
	}
	return views.RenderListsPanel(views.ListsPanelData{Rows: rows})
}
