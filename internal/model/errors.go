package model

import "errors"

// ErrPermissionDenied reports that the reminder store refused access.
var ErrPermissionDenied = errors.New("permission denied")

// ErrSessionBusy is wrapped by the TUIError returned for a call that
// overlapped another one. The session stays usable.
var ErrSessionBusy = errors.New("session is busy")

// DataAccessError reports a data operation that could not be carried out.
// It is never fatal to a session.
type DataAccessError struct {
	Message string
	Err     error
}

func (e *DataAccessError) Error() string {
	if e.Err != nil {
		return "data access error: " + e.Message + ": " + e.Err.Error()
	}
	return "data access error: " + e.Message
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// TUIError reports a terminal failure or misuse of the session boundary.
// A session that returned one is dead and only Start may be called again,
// unless the error wraps ErrSessionBusy.
type TUIError struct {
	Message string
	Err     error
}

func (e *TUIError) Error() string {
	if e.Err != nil {
		return "tui error: " + e.Message + ": " + e.Err.Error()
	}
	return "tui error: " + e.Message
}

func (e *TUIError) Unwrap() error { return e.Err }
