package session

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/rem/internal/model"
	"github.com/sandeepkv93/rem/internal/update"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// script stands in for a bubbletea program: each run feeds the next batch
// of messages to the model until it yields or the batch runs out.
type script struct {
	slices [][]tea.Msg
	calls  int
	failAt int
	err    error
}

func (s *script) run(m tea.Model, _ ...tea.ProgramOption) (tea.Model, error) {
	s.calls++
	if s.err != nil && s.calls >= s.failAt {
		return m, s.err
	}
	var msgs []tea.Msg
	if s.calls-1 < len(s.slices) {
		msgs = s.slices[s.calls-1]
	}
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next
		if m.(update.Model).Yielded() {
			break
		}
	}
	return m, nil
}

func keys(msgs ...tea.Msg) []tea.Msg { return msgs }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func home() []model.ReminderList {
	return []model.ReminderList{{ID: "L1", Name: "Home", Color: "#00AAFF", Count: 2}}
}

func alwaysTerminal(io.Reader) bool { return true }

func startScripted(t *testing.T, lists []model.ReminderList, sc *script, extra ...Option) (*Session, []model.Action) {
	t.Helper()
	opts := append([]Option{withTerminalCheck(alwaysTerminal), withProgramRunner(sc.run)}, extra...)
	s, actions, err := Start(lists, opts...)
	require.NoError(t, err)
	t.Cleanup(s.Shutdown)
	return s, actions
}

func requireTUIError(t *testing.T, err error) *model.TUIError {
	t.Helper()
	var tuiErr *model.TUIError
	require.ErrorAs(t, err, &tuiErr)
	return tuiErr
}

func TestStartRejectsNonTerminal(t *testing.T) {
	_, _, err := Start(home(), withTerminalCheck(func(io.Reader) bool { return false }))
	tuiErr := requireTUIError(t, err)
	require.Contains(t, tuiErr.Error(), "not an interactive terminal")
	require.False(t, active.Load(), "a failed start must not hold the terminal")
}

func TestStartThenSelectList(t *testing.T) {
	sc := &script{slices: [][]tea.Msg{nil, keys(enter())}}
	s, actions := startScripted(t, home(), sc)
	require.Empty(t, actions)

	actions, err := s.Continue()
	require.NoError(t, err)
	require.Equal(t, []model.Action{model.SelectList{ListID: "L1"}}, actions)
	require.True(t, s.model.Current.Equal(update.RemindersView("L1")))
}

func TestOnlyOneSessionPerProcess(t *testing.T) {
	s, _ := startScripted(t, home(), &script{})

	_, _, err := Start(home(), withTerminalCheck(alwaysTerminal), withProgramRunner((&script{}).run))
	tuiErr := requireTUIError(t, err)
	require.Contains(t, tuiErr.Error(), "already active")

	s.Shutdown()
	again, _, err := Start(home(), withTerminalCheck(alwaysTerminal), withProgramRunner((&script{}).run))
	require.NoError(t, err)
	again.Shutdown()
}

func TestShutdownIsIdempotent(t *testing.T) {
	s, _ := startScripted(t, home(), &script{})
	s.Shutdown()
	s.Shutdown()

	_, err := s.Continue()
	requireTUIError(t, err)
	requireTUIError(t, s.SetReminders(nil))
	requireTUIError(t, s.SetGlobalReminders(nil, nil))
	requireTUIError(t, s.SetLists(nil))
	requireTUIError(t, s.ReportError("x"))
}

func TestQuitEndsSession(t *testing.T) {
	sc := &script{slices: [][]tea.Msg{keys(runes("qj"))}}
	s, actions := startScripted(t, home(), sc)
	require.Equal(t, []model.Action{model.Quit{}}, actions)

	_, err := s.Continue()
	tuiErr := requireTUIError(t, err)
	require.Contains(t, tuiErr.Error(), "ended by quit")
	require.False(t, active.Load(), "quit frees the terminal")
}

func TestProgramFailureKillsSession(t *testing.T) {
	boom := errors.New("tty vanished")
	sc := &script{slices: [][]tea.Msg{nil}, failAt: 2, err: boom}
	s, _ := startScripted(t, home(), sc)

	_, err := s.Continue()
	tuiErr := requireTUIError(t, err)
	require.ErrorIs(t, tuiErr, boom)
	require.False(t, active.Load())

	_, err = s.Continue()
	tuiErr = requireTUIError(t, err)
	require.Contains(t, tuiErr.Error(), "died")
}

func TestStartFailureReleasesTerminal(t *testing.T) {
	_, _, err := Start(home(),
		withTerminalCheck(alwaysTerminal),
		withProgramRunner((&script{failAt: 1, err: tea.ErrProgramKilled}).run))
	tuiErr := requireTUIError(t, err)
	require.Contains(t, tuiErr.Error(), "interrupted")
	require.False(t, active.Load())
}

func TestOverlappingCallsRejected(t *testing.T) {
	s, _ := startScripted(t, home(), &script{})
	s.mu.Lock()
	_, err := s.Continue()
	s.mu.Unlock()
	tuiErr := requireTUIError(t, err)
	require.Contains(t, tuiErr.Error(), "busy")
	require.ErrorIs(t, err, model.ErrSessionBusy)

	_, err = s.Continue()
	require.NoError(t, err, "the session stays usable after a rejected call")
}

func TestSetRemindersWrongViewIsNotFatal(t *testing.T) {
	sc := &script{slices: [][]tea.Msg{nil, keys(enter())}}
	s, _ := startScripted(t, home(), sc)

	err := s.SetReminders([]model.Reminder{{ID: "R1", Title: "Buy milk"}})
	var dataErr *model.DataAccessError
	require.ErrorAs(t, err, &dataErr)

	actions, err := s.Continue()
	require.NoError(t, err)
	require.Len(t, actions, 1)
}

func TestToggleAndCreateThroughSession(t *testing.T) {
	sc := &script{slices: [][]tea.Msg{
		keys(enter()),
		keys(tea.KeyMsg{Type: tea.KeySpace}),
		keys(runes("c"), runes("Call dentist"), tea.KeyMsg{Type: tea.KeyCtrlS}),
	}}
	s, actions := startScripted(t, home(), sc)
	require.Equal(t, []model.Action{model.SelectList{ListID: "L1"}}, actions)

	require.NoError(t, s.SetReminders([]model.Reminder{{ID: "R1", Title: "Buy milk"}}))
	actions, err := s.Continue()
	require.NoError(t, err)
	require.Equal(t, []model.Action{model.ToggleReminder{ReminderID: "R1"}}, actions)

	actions, err = s.Continue()
	require.NoError(t, err)
	require.Equal(t, []model.Action{model.CreateReminder{NewReminder: model.NewReminder{
		Title:  "Call dentist",
		ListID: "L1",
	}}}, actions)
	require.True(t, s.model.Current.Equal(update.RemindersView("L1")))
}

func TestDeleteChordAcrossSlicesUsesInjectedClock(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	sc := &script{slices: [][]tea.Msg{keys(enter()), keys(runes("dd"))}}
	s, _ := startScripted(t, home(), sc, WithClock(clock))

	require.NoError(t, s.SetReminders([]model.Reminder{{ID: "R1", Title: "Buy milk"}, {ID: "R2", Title: "Rent"}}))
	actions, err := s.Continue()
	require.NoError(t, err)
	require.Equal(t, []model.Action{model.DeleteReminder{ReminderID: "R1"}}, actions)
}

func TestGlobalSearchTruncationIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	sc := &script{slices: [][]tea.Msg{keys(runes("/"))}}
	s, actions := startScripted(t, home(), sc, WithLogger(zap.New(core)))
	require.Equal(t, []model.Action{model.GlobalSearch{Query: ""}}, actions)

	err := s.SetGlobalReminders(
		[]model.Reminder{{ID: "R1", Title: "a"}, {ID: "R2", Title: "b"}},
		[]string{"Home"},
	)
	require.NoError(t, err)
	require.Len(t, s.model.Reminders, 1)
	require.Equal(t, 1, logs.FilterMessageSnippet("truncating").Len())
}

func TestSetListsReplacesSnapshot(t *testing.T) {
	s, _ := startScripted(t, home(), &script{})
	require.NoError(t, s.SetLists([]model.ReminderList{{ID: "L9", Name: "New"}}))
	require.Equal(t, "L9", s.model.Lists[0].ID)
}

func TestRealProgramSlice(t *testing.T) {
	cfg := update.DefaultRuntimeConfig()
	cfg.AltScreen = false
	s, actions, err := Start(home(),
		WithInput(strings.NewReader("\r")),
		WithOutput(io.Discard),
		WithConfig(cfg),
	)
	require.NoError(t, err)
	t.Cleanup(s.Shutdown)
	require.Equal(t, []model.Action{model.SelectList{ListID: "L1"}}, actions)
}

func TestReportErrorClearsLoadingBanner(t *testing.T) {
	sc := &script{slices: [][]tea.Msg{keys(enter())}}
	s, actions := startScripted(t, home(), sc)
	require.Equal(t, []model.Action{model.SelectList{ListID: "L1"}}, actions)
	require.NotEmpty(t, s.model.Loading)

	require.NoError(t, s.ReportError("could not load Home"))
	require.Empty(t, s.model.Loading)
	require.True(t, s.model.Status.IsError)
	require.NotContains(t, s.model.View(), "loading Home")
}
