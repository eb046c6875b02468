package form

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/rem/internal/model"
)

var ErrInvalid = errors.New("form: reminder title is required")

type Field int

const (
	FieldTitle Field = iota
	FieldNotes
	FieldDueDate
	FieldList
	FieldPriority
)

const fieldCount = 5

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldNotes:
		return "Notes"
	case FieldDueDate:
		return "Due date"
	case FieldList:
		return "List"
	case FieldPriority:
		return "Priority"
	default:
		return "?"
	}
}

// IsText reports whether the field accepts typed characters.
func (f Field) IsText() bool {
	return f == FieldTitle || f == FieldNotes || f == FieldDueDate
}

// Form is the state of the reminder creation dialog. Text fields are backed
// by textinput models so the renderer can draw cursors; the form itself
// only ever appends or removes single runes.
type Form struct {
	Title   textinput.Model
	Notes   textinput.Model
	DueDate textinput.Model

	Lists     []model.ReminderList
	ListIndex int
	Priority  uint8
	Valid     bool

	current Field
}

// New builds an empty form. The list selector starts on preselectID when
// it names a known list, otherwise on the first list.
func New(lists []model.ReminderList, preselectID string) *Form {
	f := &Form{
		Title:   newInput("title> ", 256),
		Notes:   newInput("notes> ", 1024),
		DueDate: newInput("due> ", 32),
		Lists:   append([]model.ReminderList(nil), lists...),
	}
	f.DueDate.Placeholder = "YYYY-MM-DD"
	for i, l := range f.Lists {
		if l.ID == preselectID {
			f.ListIndex = i
			break
		}
	}
	f.syncFocus()
	return f
}

func newInput(prompt string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = prompt
	in.CharLimit = limit
	in.Width = 42
	return in
}

func (f *Form) Current() Field { return f.current }

func (f *Form) AdvanceField() {
	f.current = (f.current + 1) % fieldCount
	f.syncFocus()
}

func (f *Form) RetreatField() {
	f.current = (f.current + fieldCount - 1) % fieldCount
	f.syncFocus()
}

// InputChar appends r to the focused text field. It is a no-op on the list
// and priority selectors.
func (f *Form) InputChar(r rune) {
	in := f.textField()
	if in == nil {
		return
	}
	if in.CharLimit > 0 && len([]rune(in.Value())) >= in.CharLimit {
		return
	}
	in.SetValue(in.Value() + string(r))
	in.CursorEnd()
}

// Backspace removes the last rune of the focused text field.
func (f *Form) Backspace() {
	in := f.textField()
	if in == nil {
		return
	}
	runes := []rune(in.Value())
	if len(runes) == 0 {
		return
	}
	in.SetValue(string(runes[:len(runes)-1]))
	in.CursorEnd()
}

// StepUp moves the list selector to the previous list or raises the
// priority. Priority is clamped to [0,9]; the list selector wraps.
func (f *Form) StepUp() {
	switch f.current {
	case FieldList:
		if n := len(f.Lists); n > 0 {
			f.ListIndex = (f.ListIndex + n - 1) % n
		}
	case FieldPriority:
		if f.Priority < model.MaxPriority {
			f.Priority++
		}
	}
}

func (f *Form) StepDown() {
	switch f.current {
	case FieldList:
		if n := len(f.Lists); n > 0 {
			f.ListIndex = (f.ListIndex + 1) % n
		}
	case FieldPriority:
		if f.Priority > model.MinPriority {
			f.Priority--
		}
	}
}

func (f *Form) ListID() string {
	if f.ListIndex < 0 || f.ListIndex >= len(f.Lists) {
		return ""
	}
	return f.Lists[f.ListIndex].ID
}

func (f *Form) ListName() string {
	if f.ListIndex < 0 || f.ListIndex >= len(f.Lists) {
		return ""
	}
	return f.Lists[f.ListIndex].Name
}

// Validate recomputes Valid and returns it.
func (f *Form) Validate() bool {
	f.Valid = strings.TrimSpace(f.Title.Value()) != ""
	return f.Valid
}

// Submit validates the form and builds the creation payload. Blank notes
// and due date become nil.
func (f *Form) Submit() (model.NewReminder, error) {
	if !f.Validate() {
		return model.NewReminder{}, ErrInvalid
	}
	out := model.NewReminder{
		Title:    strings.TrimSpace(f.Title.Value()),
		Notes:    model.OptionalString(f.Notes.Value()),
		DueDate:  model.OptionalString(f.DueDate.Value()),
		ListID:   f.ListID(),
		Priority: f.Priority,
	}
	if err := out.Validate(); err != nil {
		f.Valid = false
		return model.NewReminder{}, err
	}
	return out, nil
}

func (f *Form) textField() *textinput.Model {
	switch f.current {
	case FieldTitle:
		return &f.Title
	case FieldNotes:
		return &f.Notes
	case FieldDueDate:
		return &f.DueDate
	default:
		return nil
	}
}

func (f *Form) syncFocus() {
	f.Title.Blur()
	f.Notes.Blur()
	f.DueDate.Blur()
	if in := f.textField(); in != nil {
		in.Focus()
	}
}
