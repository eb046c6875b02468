package host

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/rem/internal/model"
	"github.com/stretchr/testify/require"
)

func TestDispatchRoutesEveryAction(t *testing.T) {
	var got []string
	record := func(name string) func() error {
		return func() error {
			got = append(got, name)
			return nil
		}
	}
	handlers := Handlers{
		Quit: record("quit"),
		SelectList: func(a model.SelectList) error {
			got = append(got, "select:"+a.ListID)
			return nil
		},
		ToggleReminder: func(a model.ToggleReminder) error {
			got = append(got, "toggle:"+a.ReminderID)
			return nil
		},
		DeleteReminder: func(a model.DeleteReminder) error {
			got = append(got, "delete:"+a.ReminderID)
			return nil
		},
		CreateReminder: func(a model.CreateReminder) error {
			got = append(got, "create:"+a.NewReminder.Title)
			return nil
		},
		Back:    record("back"),
		Refresh: record("refresh"),
		GlobalSearch: func(a model.GlobalSearch) error {
			got = append(got, "search:"+a.Query)
			return nil
		},
		Notice: func(a model.Action) error {
			got = append(got, "notice:"+string(a.Kind()))
			return nil
		},
	}

	for _, a := range []model.Action{
		model.Quit{},
		model.SelectList{ListID: "L1"},
		model.ToggleReminder{ReminderID: "R1"},
		model.DeleteReminder{ReminderID: "R2"},
		model.CreateReminder{NewReminder: model.NewReminder{Title: "Call", ListID: "L1"}},
		model.Back{},
		model.Refresh{},
		model.GlobalSearch{Query: "milk"},
		model.ToggleCompletedVisibility{},
		model.ShowLoading{Message: "Loading"},
		model.DataLoaded{},
	} {
		require.NoError(t, Dispatch(a, handlers))
	}
	require.Equal(t, []string{
		"quit", "select:L1", "toggle:R1", "delete:R2", "create:Call", "back", "refresh",
		"search:milk", "notice:toggle_completed_visibility", "notice:show_loading", "notice:data_loaded",
	}, got)
}

func TestDispatchMissingHandler(t *testing.T) {
	err := Dispatch(model.Refresh{}, Handlers{})
	var de *DispatchError
	require.True(t, errors.As(err, &de))
	require.Equal(t, ErrCodeHandlerMissing, de.Code)
	require.Contains(t, de.Error(), "refresh handler not configured")
}

func TestDispatchNoticesAreOptional(t *testing.T) {
	require.NoError(t, Dispatch(model.DataLoaded{}, Handlers{}))
}

func TestDispatchUnknownAction(t *testing.T) {
	err := Dispatch(nil, Handlers{})
	var de *DispatchError
	require.True(t, errors.As(err, &de))
	require.Equal(t, ErrCodeUnknownAction, de.Code)
}

func TestDispatchPropagatesHandlerError(t *testing.T) {
	boom := errors.New("boom")
	err := Dispatch(model.Back{}, Handlers{Back: func() error { return boom }})
	require.ErrorIs(t, err, boom)
}
