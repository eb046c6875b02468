package update

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/rem/internal/input"
	"github.com/sandeepkv93/rem/internal/model"
	"github.com/sandeepkv93/rem/internal/views"
)

// tickMsg drives the periodic redraw and chord expiry.
type tickMsg time.Time

func (m Model) tick() tea.Cmd {
	interval := m.Config.TickInterval
	if interval <= 0 {
		interval = DefaultRuntimeConfig().TickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	if m.Loading != "" {
		return tea.Batch(m.tick(), m.loadSpinner.Tick)
	}
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.yielded {
			return m, nil
		}
		if typed.Paste && !m.acceptsText() {
			return m, nil
		}
		for _, k := range splitRunes(typed) {
			m = m.handleKey(k)
			if m.yielded {
				return m, tea.Quit
			}
		}
		return m, nil
	case tickMsg:
		m.Chord = m.Chord.Expire(m.now())
		return m, m.tick()
	case spinner.TickMsg:
		if m.Loading != "" {
			var cmd tea.Cmd
			m.loadSpinner, cmd = m.loadSpinner.Update(typed)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.helpModel.Width = typed.Width
		return m, nil
	}
	return m, nil
}

// BeginSlice clears the queue before the model is handed to a new program.
func (m *Model) BeginSlice() {
	m.queue.Reset()
	m.yielded = false
}

// Drain returns the actions of the finished slice.
func (m *Model) Drain() []model.Action {
	return m.queue.Drain()
}

// emit queues a and ends the slice. ToggleCompletedVisibility never ends
// a slice.
func (m *Model) emit(a model.Action) {
	if m.queue.Push(a) {
		m.yielded = true
	}
}

func (m *Model) setLoading(msg string) {
	m.Loading = msg
	m.Status = StatusBar{}
}

func (m Model) acceptsText() bool {
	ctx := m.InputContext()
	return ctx == input.Search || ctx == input.FormText
}

// splitRunes breaks a burst of runes delivered as one key message into
// single-rune keys so each is decoded in order.
func splitRunes(msg tea.KeyMsg) []tea.KeyMsg {
	if msg.Type != tea.KeyRunes || len(msg.Runes) <= 1 {
		return []tea.KeyMsg{msg}
	}
	out := make([]tea.KeyMsg, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt})
	}
	return out
}

func (m Model) handleKey(msg tea.KeyMsg) Model {
	wasArmed := m.Chord.Armed()
	cmd, chord := m.interpreter.Interpret(m.InputContext(), msg, m.Chord, m.now())
	m.Chord = chord
	if chord.Armed() {
		m.chordTarget = ""
		if r, _, ok := m.SelectedReminder(); ok {
			m.chordTarget = r.ID
		}
	}
	chordDelete := wasArmed && cmd.Type == input.CmdDelete && msg.Type == tea.KeyRunes

	if cmd.Type == input.CmdQuit {
		m.Quitting = true
		m.emit(model.Quit{})
		return m
	}

	switch m.Current.Kind {
	case ViewLists:
		m = m.handleListsCommand(cmd)
	case ViewReminders:
		if m.Search.Active {
			m = m.handleSearchCommand(cmd)
		} else {
			m = m.handleRemindersCommand(cmd, chordDelete)
		}
	case ViewCreateForm:
		m = m.handleFormCommand(cmd)
	}
	m.refreshDetail()
	return m
}

func (m Model) View() string {
	status := m.Status.Text
	if status != "" {
		if m.Status.IsError {
			status = "error: " + status
		}
		status = "status: " + status
	}

	left, right := "", ""
	switch m.Current.Kind {
	case ViewLists:
		left = m.renderListsView()
		right = m.renderFullHelp()
	case ViewReminders:
		left = m.renderRemindersView()
		right = m.renderDetailView()
	case ViewCreateForm:
		left = m.renderFormView()
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("rem | view: %s", m.headerTitle()),
		LeftPane:     left,
		RightPane:    right,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: views.RenderLoading(m.loadSpinner.View(), m.Loading),
		Footer:       m.renderHelpFooter(),
	})
}

func (m Model) headerTitle() string {
	switch m.Current.Kind {
	case ViewReminders:
		if m.Current.IsGlobal() {
			return "Search all lists"
		}
		return m.listName(m.Current.ListID)
	case ViewCreateForm:
		return "New Reminder"
	default:
		return "Lists"
	}
}
