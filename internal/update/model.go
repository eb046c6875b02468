package update

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/rem/internal/form"
	"github.com/sandeepkv93/rem/internal/input"
	"github.com/sandeepkv93/rem/internal/model"
)

// GlobalListID is the pseudo list id of the cross-list search view.
const GlobalListID = "global"

type ViewKind int

const (
	ViewLists ViewKind = iota
	ViewReminders
	ViewCreateForm
)

func (k ViewKind) String() string {
	switch k {
	case ViewLists:
		return "Lists"
	case ViewReminders:
		return "Reminders"
	case ViewCreateForm:
		return "CreateForm"
	default:
		return "Unknown"
	}
}

// AppView is the active screen. Return is only set for CreateForm and
// names the view the form goes back to.
type AppView struct {
	Kind   ViewKind
	ListID string
	Return *AppView
}

func ListsView() AppView { return AppView{Kind: ViewLists} }

func RemindersView(listID string) AppView {
	return AppView{Kind: ViewReminders, ListID: listID}
}

func CreateFormView(ret AppView) AppView {
	ret.Return = nil
	return AppView{Kind: ViewCreateForm, Return: &ret}
}

func (v AppView) IsGlobal() bool {
	return v.Kind == ViewReminders && v.ListID == GlobalListID
}

// Equal compares views by kind, list and return target.
func (v AppView) Equal(o AppView) bool {
	if v.Kind != o.Kind || v.ListID != o.ListID {
		return false
	}
	if v.Return == nil || o.Return == nil {
		return v.Return == nil && o.Return == nil
	}
	return v.Return.Equal(*o.Return)
}

func (v AppView) String() string {
	switch v.Kind {
	case ViewReminders:
		return "Reminders{" + v.ListID + "}"
	case ViewCreateForm:
		if v.Return != nil {
			return "CreateForm{" + v.Return.String() + "}"
		}
		return "CreateForm{}"
	default:
		return v.Kind.String()
	}
}

type StatusBar struct {
	Text    string
	IsError bool
}

// SearchState is the reminders filter. Active means the query is being
// typed; a committed query stays applied after typing stops.
type SearchState struct {
	Active bool
	Query  string
}

// Model is the whole session state. It is a bubbletea model that lives
// across many programs: each slice runs one program over the model kept
// from the previous slice.
type Model struct {
	Current        AppView
	Lists          []model.ReminderList
	Reminders      []model.Reminder
	ListNames      []string
	ListsIndex     int
	RemindersIndex int
	ShowCompleted  bool
	Search         SearchState
	Form           *form.Form
	Chord          input.ChordState
	Status         StatusBar
	Loading        string
	Quitting       bool
	Keys           input.KeyMap
	Config         RuntimeConfig

	interpreter  input.Interpreter
	now          func() time.Time
	queue        Queue
	yielded      bool
	chordTarget  string
	searchInput  textinput.Model
	loadSpinner  spinner.Model
	helpModel    help.Model
	detailView   viewport.Model
	detailFor    string
	notesPreview string
}

// NewModel builds a session model at the Lists view. A nil clock means
// time.Now.
func NewModel(lists []model.ReminderList, cfg RuntimeConfig, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	interp := input.NewInterpreter(cfg.ChordWindow)
	m := Model{
		Current:       ListsView(),
		Lists:         append([]model.ReminderList(nil), lists...),
		ShowCompleted: cfg.ShowCompleted,
		Keys:          interp.Keys,
		Config:        cfg,
		interpreter:   interp,
		now:           now,
	}

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "/"
	m.searchInput.CharLimit = 128
	m.searchInput.Width = 40

	m.loadSpinner = spinner.New()
	m.loadSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.detailView = viewport.New(40, 10)
	return m
}

// InputContext reports which key table applies to the current state.
func (m Model) InputContext() input.Context {
	switch m.Current.Kind {
	case ViewReminders:
		if m.Search.Active {
			return input.Search
		}
		return input.Reminders
	case ViewCreateForm:
		if m.Form != nil && m.Form.Current().IsText() {
			return input.FormText
		}
		return input.FormChoice
	default:
		return input.Lists
	}
}

// visibleIndices maps positions in the displayed collection to positions
// in m.Reminders.
func (m Model) visibleIndices() []int {
	query := strings.ToLower(strings.TrimSpace(m.Search.Query))
	out := make([]int, 0, len(m.Reminders))
	for i, r := range m.Reminders {
		if r.Completed && !m.ShowCompleted {
			continue
		}
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func matchesQuery(r model.Reminder, lowered string) bool {
	return strings.Contains(strings.ToLower(r.Title), lowered) ||
		strings.Contains(strings.ToLower(r.NotesText()), lowered)
}

// VisibleReminders returns the reminders the Reminders view shows after
// the completed filter and the search query.
func (m Model) VisibleReminders() []model.Reminder {
	idx := m.visibleIndices()
	out := make([]model.Reminder, 0, len(idx))
	for _, i := range idx {
		out = append(out, m.Reminders[i])
	}
	return out
}

// SelectedReminder returns the highlighted reminder and, in the global
// view, the name of its list.
func (m Model) SelectedReminder() (model.Reminder, string, bool) {
	idx := m.visibleIndices()
	if m.RemindersIndex < 0 || m.RemindersIndex >= len(idx) {
		return model.Reminder{}, "", false
	}
	i := idx[m.RemindersIndex]
	name := ""
	if i < len(m.ListNames) {
		name = m.ListNames[i]
	}
	return m.Reminders[i], name, true
}

func (m Model) SelectedList() (model.ReminderList, bool) {
	if m.ListsIndex < 0 || m.ListsIndex >= len(m.Lists) {
		return model.ReminderList{}, false
	}
	return m.Lists[m.ListsIndex], true
}

func (m Model) listName(id string) string {
	for _, l := range m.Lists {
		if l.ID == id {
			return l.Name
		}
	}
	return id
}

// Yielded reports whether the current slice has produced its action.
func (m Model) Yielded() bool { return m.yielded }
