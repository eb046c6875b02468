package model

// ActionKind names an Action variant. It is stable and safe to log.
type ActionKind string

const (
	KindQuit                      ActionKind = "quit"
	KindSelectList                ActionKind = "select_list"
	KindToggleReminder            ActionKind = "toggle_reminder"
	KindDeleteReminder            ActionKind = "delete_reminder"
	KindCreateReminder            ActionKind = "create_reminder"
	KindBack                      ActionKind = "back"
	KindRefresh                   ActionKind = "refresh"
	KindToggleCompletedVisibility ActionKind = "toggle_completed_visibility"
	KindGlobalSearch              ActionKind = "global_search"
	KindShowLoading               ActionKind = "show_loading"
	KindDataLoaded                ActionKind = "data_loaded"
)

// Action is an outward-bound command for the host. The set of variants is
// closed: only the types in this file implement it.
type Action interface {
	Kind() ActionKind
	action()
}

type Quit struct{}

type SelectList struct {
	ListID string
}

type ToggleReminder struct {
	ReminderID string
}

type DeleteReminder struct {
	ReminderID string
}

type CreateReminder struct {
	NewReminder NewReminder
}

type Back struct{}

type Refresh struct{}

// ToggleCompletedVisibility is informational. The engine applies the
// filter locally and never hands it to the host.
type ToggleCompletedVisibility struct{}

type GlobalSearch struct {
	Query string
}

type ShowLoading struct {
	Message string
}

type DataLoaded struct{}

func (Quit) Kind() ActionKind                      { return KindQuit }
func (SelectList) Kind() ActionKind                { return KindSelectList }
func (ToggleReminder) Kind() ActionKind            { return KindToggleReminder }
func (DeleteReminder) Kind() ActionKind            { return KindDeleteReminder }
func (CreateReminder) Kind() ActionKind            { return KindCreateReminder }
func (Back) Kind() ActionKind                      { return KindBack }
func (Refresh) Kind() ActionKind                   { return KindRefresh }
func (ToggleCompletedVisibility) Kind() ActionKind { return KindToggleCompletedVisibility }
func (GlobalSearch) Kind() ActionKind              { return KindGlobalSearch }
func (ShowLoading) Kind() ActionKind               { return KindShowLoading }
func (DataLoaded) Kind() ActionKind                { return KindDataLoaded }

func (Quit) action()                      {}
func (SelectList) action()                {}
func (ToggleReminder) action()            {}
func (DeleteReminder) action()            {}
func (CreateReminder) action()            {}
func (Back) action()                      {}
func (Refresh) action()                   {}
func (ToggleCompletedVisibility) action() {}
func (GlobalSearch) action()              {}
func (ShowLoading) action()               {}
func (DataLoaded) action()                {}

// Kinds returns the kind of every action in order, for logging.
func Kinds(actions []Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, string(a.Kind()))
	}
	return out
}
