package storage

import (
	"time"

	"github.com/sandeepkv93/rem/internal/model"
)

type List struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
	// Open is the number of incomplete reminders, filled in by ListLists.
	Open uint32
}

type Reminder struct {
	ID          string
	ListID      string
	Title       string
	Notes       *string
	DueDate     *string
	Priority    uint8
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// SearchHit is a reminder matched by a cross-list search together with the
// name of the list it belongs to.
type SearchHit struct {
	Reminder Reminder
	ListName string
}

type ReminderListFilter struct {
	ListID string
	Limit  int
	Offset int
}

func (l List) ToModel() model.ReminderList {
	return model.ReminderList{ID: l.ID, Name: l.Name, Color: l.Color, Count: l.Open}
}

func (r Reminder) ToModel() model.Reminder {
	return model.Reminder{
		ID:        r.ID,
		Title:     r.Title,
		Notes:     r.Notes,
		Completed: r.Completed,
		Priority:  r.Priority,
		DueDate:   r.DueDate,
	}
}

func ListsToModel(in []List) []model.ReminderList {
	out := make([]model.ReminderList, len(in))
	for i, l := range in {
		out[i] = l.ToModel()
	}
	return out
}

func RemindersToModel(in []Reminder) []model.Reminder {
	out := make([]model.Reminder, len(in))
	for i, r := range in {
		out[i] = r.ToModel()
	}
	return out
}

// SplitHits returns the reminders and list names of hits as parallel slices.
func SplitHits(hits []SearchHit) ([]model.Reminder, []string) {
	reminders := make([]model.Reminder, len(hits))
	names := make([]string, len(hits))
	for i, h := range hits {
		reminders[i] = h.Reminder.ToModel()
		names[i] = h.ListName
	}
	return reminders, names
}
