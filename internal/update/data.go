package update

import (
	"github.com/sandeepkv93/rem/internal/model"
)

// dataView is the view that injected data is meant for: the active view,
// or the view an open form returns to.
func (m Model) dataView() AppView {
	if m.Current.Kind == ViewCreateForm && m.Current.Return != nil {
		return *m.Current.Return
	}
	return m.Current
}

// SetLists replaces the lists snapshot and clamps the Lists selection.
func (m *Model) SetLists(lists []model.ReminderList) {
	m.Lists = append([]model.ReminderList(nil), lists...)
	m.ListsIndex = clampIndex(m.ListsIndex, len(m.Lists))
	if m.dataView().Kind == ViewLists {
		m.Loading = ""
	}
}

// SetReminders injects the reminders of the list being shown. It fails
// without touching the model when no list view is waiting for data.
func (m *Model) SetReminders(reminders []model.Reminder) error {
	v := m.dataView()
	if v.Kind != ViewReminders || v.IsGlobal() {
		return &model.DataAccessError{Message: "no list reminders view is active (view " + m.Current.String() + ")"}
	}
	m.Reminders = append([]model.Reminder(nil), reminders...)
	m.ListNames = nil
	m.afterInjection("reminders loaded")
	return nil
}

// SetGlobalReminders injects cross-list search results. Reminders and list
// names pair by position; the longer slice is truncated.
func (m *Model) SetGlobalReminders(reminders []model.Reminder, listNames []string) error {
	if !m.dataView().IsGlobal() {
		return &model.DataAccessError{Message: "no global search view is active (view " + m.Current.String() + ")"}
	}
	n := min(len(reminders), len(listNames))
	m.Reminders = append([]model.Reminder(nil), reminders[:n]...)
	m.ListNames = append([]string(nil), listNames[:n]...)
	m.afterInjection("global search completed")
	return nil
}

func (m *Model) afterInjection(status string) {
	m.RemindersIndex = clampIndex(m.RemindersIndex, len(m.visibleIndices()))
	m.Loading = ""
	if m.Current.Kind == ViewReminders {
		m.Status = StatusBar{Text: status}
	}
	m.refreshDetail()
}

// ReportError shows msg as an error status and drops the loading banner.
// Hosts call it when the data a yield asked for cannot be delivered.
func (m *Model) ReportError(msg string) {
	m.Loading = ""
	m.Status = StatusBar{Text: msg, IsError: true}
}
