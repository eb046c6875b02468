package host

import (
	"fmt"

	"github.com/sandeepkv93/rem/internal/model"
)

type ErrorCode string

const (
	ErrCodeHandlerMissing ErrorCode = "handler_missing"
	ErrCodeUnknownAction  ErrorCode = "unknown_action"
)

type DispatchError struct {
	Code    ErrorCode
	Message string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Handlers carries one function per action the host acts on. Notice
// receives the informational actions.
type Handlers struct {
	Quit           func() error
	SelectList     func(model.SelectList) error
	ToggleReminder func(model.ToggleReminder) error
	DeleteReminder func(model.DeleteReminder) error
	CreateReminder func(model.CreateReminder) error
	Back           func() error
	Refresh        func() error
	GlobalSearch   func(model.GlobalSearch) error
	Notice         func(model.Action) error
}

func Dispatch(action model.Action, handlers Handlers) error {
	switch a := action.(type) {
	case model.Quit:
		if handlers.Quit == nil {
			return missing(a)
		}
		return handlers.Quit()
	case model.SelectList:
		if handlers.SelectList == nil {
			return missing(a)
		}
		return handlers.SelectList(a)
	case model.ToggleReminder:
		if handlers.ToggleReminder == nil {
			return missing(a)
		}
		return handlers.ToggleReminder(a)
	case model.DeleteReminder:
		if handlers.DeleteReminder == nil {
			return missing(a)
		}
		return handlers.DeleteReminder(a)
	case model.CreateReminder:
		if handlers.CreateReminder == nil {
			return missing(a)
		}
		return handlers.CreateReminder(a)
	case model.Back:
		if handlers.Back == nil {
			return missing(a)
		}
		return handlers.Back()
	case model.Refresh:
		if handlers.Refresh == nil {
			return missing(a)
		}
		return handlers.Refresh()
	case model.GlobalSearch:
		if handlers.GlobalSearch == nil {
			return missing(a)
		}
		return handlers.GlobalSearch(a)
	case model.ToggleCompletedVisibility, model.ShowLoading, model.DataLoaded:
		if handlers.Notice == nil {
			return nil
		}
		return handlers.Notice(a)
	default:
		return &DispatchError{Code: ErrCodeUnknownAction, Message: fmt.Sprintf("unknown action type: %T", action)}
	}
}

func missing(a model.Action) error {
	return &DispatchError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", a.Kind())}
}
