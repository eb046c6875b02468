// Package session is the boundary a host drives the terminal UI through.
// Each call runs the UI until the user does something that needs the host
// (open a list, toggle, delete, create, refresh, search, back, quit) and
// returns the resulting actions. The host does the work, injects fresh
// data and calls Continue.
package session

import (
	"errors"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/rem/internal/model"
	"github.com/sandeepkv93/rem/internal/update"
	"go.uber.org/zap"
)

// active is set while a session holds the terminal. A process runs at most
// one session at a time.
var active atomic.Bool

type state int

const (
	stateRunning state = iota
	stateEnded
	stateDead
	stateClosed
)

type Session struct {
	mu       sync.Mutex
	opts     options
	logger   *zap.Logger
	model    update.Model
	state    state
	released bool
	slices   int
}

// Start acquires the terminal, shows the Lists view and runs the first
// slice.
func Start(lists []model.ReminderList, opts ...Option) (*Session, []model.Action, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !o.isTerminal(o.input) {
		return nil, nil, &model.TUIError{Message: "not an interactive terminal"}
	}
	if !active.CompareAndSwap(false, true) {
		return nil, nil, &model.TUIError{Message: "a session is already active"}
	}

	s := &Session{
		opts:   o,
		logger: o.logger.Named("session"),
		model:  update.NewModel(lists, o.config, o.clock),
	}
	s.logger.Info("session started", zap.Int("lists", len(lists)))

	s.mu.Lock()
	defer s.mu.Unlock()
	actions, err := s.runSlice()
	if err != nil {
		return nil, nil, err
	}
	return s, actions, nil
}

// Continue resumes the UI on the retained state.
func (s *Session) Continue() ([]model.Action, error) {
	if !s.mu.TryLock() {
		return nil, s.busy("continue")
	}
	defer s.mu.Unlock()
	if err := s.checkUsable(); err != nil {
		return nil, err
	}
	return s.runSlice()
}

// SetReminders injects the reminders of the list being shown. A
// *model.DataAccessError leaves the session usable.
func (s *Session) SetReminders(reminders []model.Reminder) error {
	if !s.mu.TryLock() {
		return s.busy("set_reminders")
	}
	defer s.mu.Unlock()
	if err := s.checkUsable(); err != nil {
		return err
	}
	if err := s.model.SetReminders(reminders); err != nil {
		s.logger.Warn("reminders rejected", zap.Error(err))
		return err
	}
	s.logger.Debug("reminders injected", zap.Int("count", len(reminders)))
	return nil
}

// SetGlobalReminders injects cross-list search results paired with the
// name of each reminder's list.
func (s *Session) SetGlobalReminders(reminders []model.Reminder, listNames []string) error {
	if !s.mu.TryLock() {
		return s.busy("set_global_reminders")
	}
	defer s.mu.Unlock()
	if err := s.checkUsable(); err != nil {
		return err
	}
	if len(reminders) != len(listNames) {
		s.logger.Warn("global search results and list names differ in length; truncating",
			zap.Int("reminders", len(reminders)),
			zap.Int("list_names", len(listNames)))
	}
	if err := s.model.SetGlobalReminders(reminders, listNames); err != nil {
		s.logger.Warn("global reminders rejected", zap.Error(err))
		return err
	}
	s.logger.Debug("global reminders injected", zap.Int("count", min(len(reminders), len(listNames))))
	return nil
}

// SetLists replaces the lists snapshot.
func (s *Session) SetLists(lists []model.ReminderList) error {
	if !s.mu.TryLock() {
		return s.busy("set_lists")
	}
	defer s.mu.Unlock()
	if err := s.checkUsable(); err != nil {
		return err
	}
	s.model.SetLists(lists)
	s.logger.Debug("lists injected", zap.Int("count", len(lists)))
	return nil
}

// ReportError shows msg as an error status on the next slice and clears
// the loading banner. Hosts use it when a yielded action could not be
// carried out.
func (s *Session) ReportError(msg string) error {
	if !s.mu.TryLock() {
		return s.busy("report_error")
	}
	defer s.mu.Unlock()
	if err := s.checkUsable(); err != nil {
		return err
	}
	s.model.ReportError(msg)
	s.logger.Debug("error reported", zap.String("message", msg))
	return nil
}

// Shutdown discards the session state and frees the terminal. It is safe
// to call more than once.
func (s *Session) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == stateClosed {
		return
	}
	s.state = stateClosed
	s.model = update.Model{}
	s.release()
	s.logger.Info("session shut down", zap.Int("slices", s.slices))
}

func (s *Session) runSlice() ([]model.Action, error) {
	s.slices++
	s.model.BeginSlice()
	s.logger.Debug("slice started", zap.Int("slice", s.slices), zap.String("view", s.model.Current.String()))

	final, err := s.opts.run(s.model, s.programOptions()...)
	if err != nil {
		return nil, s.die("terminal failure", err)
	}
	m, ok := final.(update.Model)
	if !ok {
		return nil, s.die("unexpected program model", nil)
	}
	s.model = m

	actions := s.model.Drain()
	s.logger.Debug("slice yielded",
		zap.Int("slice", s.slices),
		zap.Strings("actions", model.Kinds(actions)),
		zap.String("view", s.model.Current.String()))
	if s.model.Quitting {
		s.state = stateEnded
		s.release()
		s.logger.Info("session ended by quit", zap.Int("slices", s.slices))
	}
	return actions, nil
}

func (s *Session) programOptions() []tea.ProgramOption {
	var opts []tea.ProgramOption
	if s.opts.input != nil {
		opts = append(opts, tea.WithInput(s.opts.input))
	}
	if s.opts.output != nil {
		opts = append(opts, tea.WithOutput(s.opts.output))
	}
	if s.opts.config.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return append(opts, s.opts.programOpts...)
}

func (s *Session) checkUsable() error {
	switch s.state {
	case stateClosed:
		return &model.TUIError{Message: "session has been shut down"}
	case stateEnded:
		return &model.TUIError{Message: "session ended by quit"}
	case stateDead:
		return &model.TUIError{Message: "session died after a terminal error"}
	default:
		return nil
	}
}

func (s *Session) die(msg string, err error) error {
	s.state = stateDead
	s.release()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		msg = "terminal program interrupted"
	}
	s.logger.Error("session died", zap.String("reason", msg), zap.Error(err))
	return &model.TUIError{Message: msg, Err: err}
}

func (s *Session) busy(op string) error {
	s.logger.Warn("rejected overlapping call", zap.String("op", op))
	return &model.TUIError{Message: "overlapping " + op + " rejected", Err: model.ErrSessionBusy}
}

func (s *Session) release() {
	if s.released {
		return
	}
	s.released = true
	active.Store(false)
}
