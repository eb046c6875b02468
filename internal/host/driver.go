// Package host drives a terminal session against a reminder store: it
// starts the session, carries out each yielded action and injects fresh
// data before resuming.
package host

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/rem/internal/model"
	"github.com/sandeepkv93/rem/internal/storage"
	"go.uber.org/zap"
)

// Store is the part of storage.Repository the driver needs.
type Store interface {
	ListLists(ctx context.Context) ([]storage.List, error)
	CreateReminder(ctx context.Context, in storage.Reminder) error
	ToggleReminder(ctx context.Context, id string, at time.Time) (storage.Reminder, error)
	DeleteReminder(ctx context.Context, id string) error
	ListReminders(ctx context.Context, filter storage.ReminderListFilter) ([]storage.Reminder, error)
	SearchReminders(ctx context.Context, query string) ([]storage.SearchHit, error)
}

// UI is the session boundary. *session.Session implements it.
type UI interface {
	Continue() ([]model.Action, error)
	SetReminders(reminders []model.Reminder) error
	SetGlobalReminders(reminders []model.Reminder, listNames []string) error
	SetLists(lists []model.ReminderList) error
	ReportError(msg string) error
	Shutdown()
}

// Starter opens a session showing lists and returns its first actions.
type Starter func(lists []model.ReminderList) (UI, []model.Action, error)

type Driver struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
	newID  func() string

	ui     UI
	listID string
	global bool
	query  string
	done   bool
}

type Option func(*Driver)

func WithLogger(logger *zap.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		if now != nil {
			d.now = now
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(d *Driver) {
		if newID != nil {
			d.newID = newID
		}
	}
}

func NewDriver(store Store, opts ...Option) *Driver {
	d := &Driver{
		store:  store,
		logger: zap.NewNop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.Named("host")
	return d
}

// Run starts a session and serves it until the user quits, the context is
// cancelled or a fatal error occurs. The session is always shut down.
func (d *Driver) Run(ctx context.Context, start Starter) error {
	lists, err := d.loadLists(ctx)
	if err != nil {
		return err
	}
	ui, actions, err := start(lists)
	if err != nil {
		return err
	}
	d.ui = ui
	defer ui.Shutdown()

	for {
		for _, action := range actions {
			d.logger.Debug("dispatch", zap.String("action", string(action.Kind())))
			if err := Dispatch(action, d.handlers(ctx)); err != nil {
				if fatal(err) {
					d.logger.Error("action failed", zap.String("action", string(action.Kind())), zap.Error(err))
					return err
				}
				d.logger.Warn("action failed", zap.String("action", string(action.Kind())), zap.Error(err))
				if reportErr := ui.ReportError(failureText(action, err)); reportErr != nil {
					return reportErr
				}
			}
			if d.done {
				d.logger.Info("user quit")
				return nil
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		actions, err = ui.Continue()
		if err != nil {
			return err
		}
	}
}

func fatal(err error) bool {
	if errors.Is(err, model.ErrSessionBusy) {
		return false
	}
	var tuiErr *model.TUIError
	return errors.Is(err, model.ErrPermissionDenied) || errors.As(err, &tuiErr) || errors.Is(err, context.Canceled)
}

func failureText(action model.Action, err error) string {
	switch action.(type) {
	case model.SelectList:
		return "could not load reminders: " + err.Error()
	case model.ToggleReminder:
		return "could not update reminder: " + err.Error()
	case model.DeleteReminder:
		return "could not delete reminder: " + err.Error()
	case model.CreateReminder:
		return "could not create reminder: " + err.Error()
	case model.GlobalSearch:
		return "search failed: " + err.Error()
	default:
		return string(action.Kind()) + " failed: " + err.Error()
	}
}

func (d *Driver) handlers(ctx context.Context) Handlers {
	return Handlers{
		Quit: func() error {
			d.done = true
			return nil
		},
		SelectList: func(a model.SelectList) error {
			d.listID = a.ListID
			d.global = false
			d.query = ""
			return d.loadReminders(ctx)
		},
		ToggleReminder: func(a model.ToggleReminder) error {
			if _, err := d.store.ToggleReminder(ctx, a.ReminderID, d.now()); err != nil {
				return err
			}
			return d.reload(ctx)
		},
		DeleteReminder: func(a model.DeleteReminder) error {
			if err := d.store.DeleteReminder(ctx, a.ReminderID); err != nil {
				return err
			}
			return d.reload(ctx)
		},
		CreateReminder: func(a model.CreateReminder) error {
			in := a.NewReminder
			if err := in.Validate(); err != nil {
				return err
			}
			err := d.store.CreateReminder(ctx, storage.Reminder{
				ID:        d.newID(),
				ListID:    in.ListID,
				Title:     in.Title,
				Notes:     in.Notes,
				DueDate:   in.DueDate,
				Priority:  in.Priority,
				CreatedAt: d.now(),
			})
			if err != nil {
				return err
			}
			return d.reload(ctx)
		},
		Back: func() error {
			return d.pushLists(ctx)
		},
		Refresh: func() error {
			return d.reload(ctx)
		},
		GlobalSearch: func(a model.GlobalSearch) error {
			d.global = true
			d.query = a.Query
			return d.loadSearch(ctx)
		},
		Notice: func(a model.Action) error {
			d.logger.Debug("notice", zap.String("action", string(a.Kind())))
			return nil
		},
	}
}

// reload pushes fresh lists and the data of the reminders view last opened.
// The session may have left that view; its rejection is not an error.
func (d *Driver) reload(ctx context.Context) error {
	if err := d.pushLists(ctx); err != nil {
		return err
	}
	var err error
	switch {
	case d.global:
		err = d.loadSearch(ctx)
	case d.listID != "":
		err = d.loadReminders(ctx)
	}
	var dataErr *model.DataAccessError
	if errors.As(err, &dataErr) {
		d.logger.Debug("reload skipped", zap.Error(err))
		return nil
	}
	return err
}

func (d *Driver) pushLists(ctx context.Context) error {
	lists, err := d.loadLists(ctx)
	if err != nil {
		return err
	}
	return d.ui.SetLists(lists)
}

func (d *Driver) loadLists(ctx context.Context) ([]model.ReminderList, error) {
	lists, err := d.store.ListLists(ctx)
	if err != nil {
		return nil, err
	}
	return storage.ListsToModel(lists), nil
}

func (d *Driver) loadReminders(ctx context.Context) error {
	items, err := d.store.ListReminders(ctx, storage.ReminderListFilter{ListID: d.listID})
	if err != nil {
		return err
	}
	return d.ui.SetReminders(storage.RemindersToModel(items))
}

func (d *Driver) loadSearch(ctx context.Context) error {
	hits, err := d.store.SearchReminders(ctx, d.query)
	if err != nil {
		return err
	}
	reminders, names := storage.SplitHits(hits)
	return d.ui.SetGlobalReminders(reminders, names)
}
