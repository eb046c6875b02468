package storage

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	CreateList(ctx context.Context, in List) error
	GetList(ctx context.Context, id string) (List, error)
	ListLists(ctx context.Context) ([]List, error)
	DeleteList(ctx context.Context, id string) error

	CreateReminder(ctx context.Context, in Reminder) error
	GetReminder(ctx context.Context, id string) (Reminder, error)
	ToggleReminder(ctx context.Context, id string, at time.Time) (Reminder, error)
	DeleteReminder(ctx context.Context, id string) error
	ListReminders(ctx context.Context, filter ReminderListFilter) ([]Reminder, error)
	SearchReminders(ctx context.Context, query string) ([]SearchHit, error)
}
