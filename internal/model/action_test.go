package model

import (
	"errors"
	"testing"
)

func TestActionKinds(t *testing.T) {
	cases := []struct {
		action Action
		want   ActionKind
	}{
		{Quit{}, KindQuit},
		{SelectList{ListID: "L1"}, KindSelectList},
		{ToggleReminder{ReminderID: "R1"}, KindToggleReminder},
		{DeleteReminder{ReminderID: "R1"}, KindDeleteReminder},
		{CreateReminder{NewReminder: NewReminder{Title: "x", ListID: "L1"}}, KindCreateReminder},
		{Back{}, KindBack},
		{Refresh{}, KindRefresh},
		{ToggleCompletedVisibility{}, KindToggleCompletedVisibility},
		{GlobalSearch{Query: "milk"}, KindGlobalSearch},
		{ShowLoading{Message: "loading"}, KindShowLoading},
		{DataLoaded{}, KindDataLoaded},
	}
	for _, tc := range cases {
		if got := tc.action.Kind(); got != tc.want {
			t.Fatalf("%T kind = %s, want %s", tc.action, got, tc.want)
		}
	}
}

func TestGlobalSearchCarriesQuery(t *testing.T) {
	var a Action = GlobalSearch{Query: "test query"}
	switch typed := a.(type) {
	case GlobalSearch:
		if typed.Query != "test query" {
			t.Fatalf("unexpected query: %q", typed.Query)
		}
	default:
		t.Fatalf("unexpected action type %T", a)
	}
}

func TestKinds(t *testing.T) {
	got := Kinds([]Action{SelectList{ListID: "L1"}, Quit{}})
	if len(got) != 2 || got[0] != "select_list" || got[1] != "quit" {
		t.Fatalf("unexpected kinds: %v", got)
	}
}

func TestBoundaryErrors(t *testing.T) {
	cause := errors.New("ioctl failed")
	tuiErr := &TUIError{Message: "not an interactive terminal", Err: cause}
	if tuiErr.Error() != "tui error: not an interactive terminal: ioctl failed" {
		t.Fatalf("unexpected message: %q", tuiErr.Error())
	}
	if !errors.Is(tuiErr, cause) {
		t.Fatal("expected TUIError to unwrap its cause")
	}

	dataErr := &DataAccessError{Message: "no reminders view is active"}
	if dataErr.Error() != "data access error: no reminders view is active" {
		t.Fatalf("unexpected message: %q", dataErr.Error())
	}
	var target *DataAccessError
	if !errors.As(error(dataErr), &target) {
		t.Fatal("expected errors.As to match DataAccessError")
	}
}
