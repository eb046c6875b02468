package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPriority = errors.New("model: invalid reminder priority")

const (
	MinPriority uint8 = 0
	MaxPriority uint8 = 9
)

type ReminderList struct {
	ID    string
	Name  string
	Color string
	Count uint32
}

type Reminder struct {
	ID        string
	Title     string
	Notes     *string
	Completed bool
	Priority  uint8
	DueDate   *string
}

// NotesText returns the notes or "" when unset.
func (r Reminder) NotesText() string {
	if r.Notes == nil {
		return ""
	}
	return *r.Notes
}

func (r Reminder) DueText() string {
	if r.DueDate == nil {
		return ""
	}
	return *r.DueDate
}

// NewReminder is the payload of a creation request. It is only built by
// the creation form and is never mutated afterwards.
type NewReminder struct {
	Title    string
	Notes    *string
	DueDate  *string
	ListID   string
	Priority uint8
}

func (n NewReminder) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return errors.New("model: new reminder title is required")
	}
	if strings.TrimSpace(n.ListID) == "" {
		return errors.New("model: new reminder list_id is required")
	}
	if n.Priority > MaxPriority {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, n.Priority)
	}
	return nil
}

// OptionalString maps blank input to nil.
func OptionalString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
