package form

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/rem/internal/model"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func testLists() []model.ReminderList {
	return []model.ReminderList{
		{ID: "L1", Name: "Personal", Color: "#FF0000", Count: 3},
		{ID: "L2", Name: "Work", Color: "#00FF00", Count: 1},
		{ID: "L3", Name: "Errands", Color: "#0000FF", Count: 0},
	}
}

func typeString(f *Form, s string) {
	for _, r := range s {
		f.InputChar(r)
	}
}

func TestNew_PreselectsList(t *testing.T) {
	f := New(testLists(), "L2")
	require.Equal(t, "L2", f.ListID())
	require.Equal(t, FieldTitle, f.Current())
	require.False(t, f.Valid)

	f = New(testLists(), "missing")
	require.Equal(t, "L1", f.ListID())
}

func TestAdvanceAndRetreatWrap(t *testing.T) {
	f := New(testLists(), "")
	for i := 0; i < 5; i++ {
		f.AdvanceField()
	}
	require.Equal(t, FieldTitle, f.Current())

	f.RetreatField()
	require.Equal(t, FieldPriority, f.Current())
}

func TestInputCharOnlyEditsTextFields(t *testing.T) {
	f := New(testLists(), "")
	typeString(f, "Buy milk")
	require.Equal(t, "Buy milk", f.Title.Value())

	f.AdvanceField()
	typeString(f, "2%")
	require.Equal(t, "2%", f.Notes.Value())

	f.AdvanceField()
	f.AdvanceField()
	require.Equal(t, FieldList, f.Current())
	f.InputChar('x')
	require.Equal(t, "Buy milk", f.Title.Value())
	require.Equal(t, "2%", f.Notes.Value())
	require.Equal(t, "", f.DueDate.Value())
}

func TestBackspaceRemovesOneRune(t *testing.T) {
	f := New(testLists(), "")
	typeString(f, "café")
	f.Backspace()
	require.Equal(t, "caf", f.Title.Value())

	f.Backspace()
	f.Backspace()
	f.Backspace()
	f.Backspace()
	require.Equal(t, "", f.Title.Value())
}

func TestStepPriorityClamps(t *testing.T) {
	f := New(testLists(), "")
	f.RetreatField()
	require.Equal(t, FieldPriority, f.Current())

	f.StepDown()
	require.Equal(t, uint8(0), f.Priority)
	for i := 0; i < 12; i++ {
		f.StepUp()
	}
	require.Equal(t, uint8(9), f.Priority)
}

func TestStepListCycles(t *testing.T) {
	f := New(testLists(), "L1")
	f.AdvanceField()
	f.AdvanceField()
	f.AdvanceField()
	require.Equal(t, FieldList, f.Current())

	f.StepDown()
	require.Equal(t, "L2", f.ListID())
	f.StepUp()
	f.StepUp()
	require.Equal(t, "L3", f.ListID())
	f.StepDown()
	require.Equal(t, "L1", f.ListID())
}

func TestStepIsNoopOnTextFields(t *testing.T) {
	f := New(testLists(), "L1")
	f.StepUp()
	f.StepDown()
	require.Equal(t, "L1", f.ListID())
	require.Equal(t, uint8(0), f.Priority)
}

func TestSubmitInvalidTitle(t *testing.T) {
	f := New(testLists(), "L1")
	typeString(f, "   ")
	_, err := f.Submit()
	require.True(t, errors.Is(err, ErrInvalid))
	require.False(t, f.Valid)
}

func TestSubmitBuildsPayload(t *testing.T) {
	f := New(testLists(), "L1")
	typeString(f, "Buy milk")
	f.AdvanceField()
	typeString(f, "2%")
	f.AdvanceField()
	f.AdvanceField()
	f.StepDown()
	f.AdvanceField()
	f.StepUp()
	f.StepUp()

	got, err := f.Submit()
	require.NoError(t, err)
	require.True(t, f.Valid)
	require.Equal(t, "Buy milk", got.Title)
	require.NotNil(t, got.Notes)
	require.Equal(t, "2%", *got.Notes)
	require.Nil(t, got.DueDate)
	require.Equal(t, "L2", got.ListID)
	require.Equal(t, uint8(2), got.Priority)
}

func TestSubmitWithoutListsFails(t *testing.T) {
	f := New(nil, "")
	typeString(f, "orphan")
	_, err := f.Submit()
	require.Error(t, err)
	require.False(t, f.Valid)
}

func TestFieldNavigationProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := New(testLists(), "")
		steps := rapid.SliceOf(rapid.Bool()).Draw(rt, "steps")
		want := 0
		for _, forward := range steps {
			if forward {
				f.AdvanceField()
				want = (want + 1) % 5
			} else {
				f.RetreatField()
				want = (want + 4) % 5
			}
		}
		require.Equal(rt, Field(want), f.Current())
	})
}

func TestPriorityStaysInRangeProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := New(testLists(), "")
		f.RetreatField()
		for _, up := range rapid.SliceOf(rapid.Bool()).Draw(rt, "presses") {
			if up {
				f.StepUp()
			} else {
				f.StepDown()
			}
			require.LessOrEqual(rt, f.Priority, model.MaxPriority)
		}
	})
}
