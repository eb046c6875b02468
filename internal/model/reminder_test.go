package model

import (
	"errors"
	"testing"
)

func TestNewReminderValidateSuccess(t *testing.T) {
	notes := "bring insurance card"
	in := NewReminder{
		Title:    "Call dentist",
		Notes:    &notes,
		ListID:   "L1",
		Priority: 5,
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("expected valid reminder, got error: %v", err)
	}
}

func TestNewReminderValidateRejectsBlankTitleAndList(t *testing.T) {
	if err := (NewReminder{Title: "   ", ListID: "L1"}).Validate(); err == nil {
		t.Fatal("expected error for blank title")
	}
	if err := (NewReminder{Title: "x"}).Validate(); err == nil {
		t.Fatal("expected error for missing list id")
	}
}

func TestNewReminderValidateInvalidPriority(t *testing.T) {
	err := NewReminder{Title: "x", ListID: "L1", Priority: 10}.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}
}

func TestOptionalString(t *testing.T) {
	if OptionalString("  ") != nil {
		t.Fatal("expected nil for blank input")
	}
	got := OptionalString(" 2026-03-01 ")
	if got == nil || *got != "2026-03-01" {
		t.Fatalf("unexpected optional value: %v", got)
	}
}

func TestReminderTextAccessors(t *testing.T) {
	r := Reminder{ID: "R1", Title: "Buy milk"}
	if r.NotesText() != "" || r.DueText() != "" {
		t.Fatalf("expected empty accessors for unset optionals: %+v", r)
	}
	notes, due := "2%", "2026-03-01"
	r.Notes, r.DueDate = &notes, &due
	if r.NotesText() != "2%" || r.DueText() != "2026-03-01" {
		t.Fatalf("unexpected accessor values: %q %q", r.NotesText(), r.DueText())
	}
}
