package update

import (
	"strings"
	"unicode/utf8"

	"github.com/sandeepkv93/rem/internal/input"
	"github.com/sandeepkv93/rem/internal/model"
	"github.com/sandeepkv93/rem/internal/views"
)

func (m Model) handleRemindersCommand(cmd input.Command, chordDelete bool) Model {
	visible := len(m.visibleIndices())
	switch cmd.Type {
	case input.CmdMoveUp:
		m.RemindersIndex = clampIndex(m.RemindersIndex-1, visible)
	case input.CmdMoveDown:
		m.RemindersIndex = clampIndex(m.RemindersIndex+1, visible)
	case input.CmdToggleComplete:
		sel, _, ok := m.SelectedReminder()
		if !ok {
			return m
		}
		m.setLoading("updating reminder")
		m.emit(model.ToggleReminder{ReminderID: sel.ID})
	case input.CmdDelete:
		target := m.chordTarget
		if !chordDelete || target == "" {
			sel, _, ok := m.SelectedReminder()
			if !ok {
				return m
			}
			target = sel.ID
		}
		m.chordTarget = ""
		m.setLoading("deleting reminder")
		m.emit(model.DeleteReminder{ReminderID: target})
	case input.CmdOpenCreateForm:
		preselect := m.Current.ListID
		if m.Current.IsGlobal() {
			preselect = ""
			if sel, ok := m.SelectedList(); ok {
				preselect = sel.ID
			}
		}
		m = m.openForm(preselect)
	case input.CmdBack:
		if m.Search.Query != "" {
			m.Search = SearchState{}
			m.syncSearchInput()
			m.RemindersIndex = 0
			m.Status = StatusBar{Text: "filter cleared"}
			return m
		}
		m.Current = ListsView()
		m.Reminders = nil
		m.ListNames = nil
		m.RemindersIndex = 0
		m.Search = SearchState{}
		m.syncSearchInput()
		m.Loading = ""
		m.emit(model.Back{})
	case input.CmdRefresh:
		if m.Current.IsGlobal() {
			m.setLoading("searching all lists")
			m.emit(model.GlobalSearch{Query: m.Search.Query})
			return m
		}
		m.setLoading("refreshing reminders")
		m.emit(model.Refresh{})
	case input.CmdToggleCompletedVisibility:
		m.ShowCompleted = !m.ShowCompleted
		m.RemindersIndex = clampIndex(m.RemindersIndex, len(m.visibleIndices()))
		if m.ShowCompleted {
			m.Status = StatusBar{Text: "showing completed reminders"}
		} else {
			m.Status = StatusBar{Text: "hiding completed reminders"}
		}
		m.emit(model.ToggleCompletedVisibility{})
	case input.CmdStartSearch:
		m.Search.Active = true
		m.syncSearchInput()
	}
	return m
}

func (m Model) handleSearchCommand(cmd input.Command) Model {
	switch cmd.Type {
	case input.CmdInputChar:
		if limit := m.searchInput.CharLimit; limit > 0 && utf8.RuneCountInString(m.Search.Query) >= limit {
			break
		}
		m.Search.Query += string(cmd.Char)
		m.RemindersIndex = 0
	case input.CmdBackspace:
		runes := []rune(m.Search.Query)
		if len(runes) > 0 {
			m.Search.Query = string(runes[:len(runes)-1])
		}
		m.RemindersIndex = 0
	case input.CmdSearchCommit:
		m.Search.Active = false
	case input.CmdMoveUp:
		m.RemindersIndex = clampIndex(m.RemindersIndex-1, len(m.visibleIndices()))
	case input.CmdMoveDown:
		m.RemindersIndex = clampIndex(m.RemindersIndex+1, len(m.visibleIndices()))
	}
	m.syncSearchInput()
	return m
}

func (m *Model) syncSearchInput() {
	m.searchInput.SetValue(m.Search.Query)
	m.searchInput.CursorEnd()
	if m.Search.Active {
		m.searchInput.Focus()
	} else {
		m.searchInput.Blur()
	}
}

// refreshDetail re-renders the notes preview only when the highlighted
// reminder or its notes change, never on a redraw tick.
func (m *Model) refreshDetail() {
	sel, _, ok := m.SelectedReminder()
	key := ""
	if ok && m.Current.Kind == ViewReminders {
		key = sel.ID + "\x00" + sel.NotesText()
	}
	if key == m.detailFor {
		return
	}
	m.detailFor = key
	m.notesPreview = ""
	if key != "" && strings.TrimSpace(sel.NotesText()) != "" {
		m.notesPreview = views.RenderMarkdown(sel.NotesText())
	}
	m.detailView.SetContent(m.notesPreview)
	m.detailView.GotoTop()
}

func (m Model) renderRemindersView() string {
	idx := m.visibleIndices()
	rows := make([]views.ReminderRowData, 0, len(idx))
	for pos, i := range idx {
		r := m.Reminders[i]
		row := views.ReminderRowData{
			Title:     r.Title,
			Notes:     r.NotesText(),
			DueDate:   r.DueText(),
			Priority:  r.Priority,
			Completed: r.Completed,
			Selected:  pos == m.RemindersIndex,
		}
		if i < len(m.ListNames) {
			row.ListName = m.ListNames[i]
		}
		rows = append(rows, row)
	}

	hidden := 0
	if !m.ShowCompleted {
		for _, r := range m.Reminders {
			if r.Completed {
				hidden++
			}
		}
	}

	data := views.RemindersPanelData{
		Title:         m.headerTitle(),
		Rows:          rows,
		Query:         m.Search.Query,
		ShowCompleted: m.ShowCompleted,
		HiddenCount:   hidden,
	}
	if m.Search.Active {
		data.SearchView = m.searchInput.View()
	}
	return views.RenderRemindersPanel(data)
}

func (m Model) renderDetailView() string {
	sel, listName, ok := m.SelectedReminder()
	if !ok {
		return views.RenderDetailPanel(views.DetailPanelData{})
	}
	if listName == "" && !m.Current.IsGlobal() {
		listName = m.listName(m.Current.ListID)
	}
	preview := ""
	if m.notesPreview != "" {
		preview = m.detailView.View()
	}
	return views.RenderDetailPanel(views.DetailPanelData{
		Title:        sel.Title,
		ListName:     listName,
		Priority:     sel.Priority,
		DueDate:      sel.DueText(),
		Completed:    sel.Completed,
		NotesPreview: preview,
	})
}
