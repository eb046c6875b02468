package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the interpreter decodes. The same bindings feed
// the help footer, so the help text always matches behaviour.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Lists and reminders
	Select          key.Binding
	Toggle          key.Binding
	DeleteChord     key.Binding
	Delete          key.Binding
	Create          key.Binding
	Back            key.Binding
	Quit            key.Binding
	Refresh         key.Binding
	ToggleCompleted key.Binding
	Search          key.Binding

	// Search typing
	SearchDone key.Binding

	// Creation form
	NextField key.Binding
	PrevField key.Binding
	StepUp    key.Binding
	StepDown  key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	ChoiceQ   key.Binding

	// Shared
	Backspace key.Binding
	ForceQuit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open list"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle complete"),
		),
		DeleteChord: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("dd", "delete"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "delete"),
		),
		Create: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "new reminder"),
		),
		Back: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		ToggleCompleted: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "show/hide completed"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),

		SearchDone: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "done"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "enter"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		StepUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous option"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next option"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ChoiceQ: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "cancel"),
		),

		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete char"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the footer bindings for a context.
func (k KeyMap) ShortHelp(ctx Context) []key.Binding {
	switch ctx {
	case Lists:
		return []key.Binding{k.Up, k.Down, k.Select, k.Create, k.Refresh, k.Search, k.Quit}
	case Reminders:
		return []key.Binding{k.Up, k.Down, k.Toggle, k.DeleteChord, k.Create, k.ToggleCompleted, k.Search, k.Refresh, k.Back}
	case Search:
		return []key.Binding{k.Up, k.Down, k.SearchDone}
	case FormText, FormChoice:
		return []key.Binding{k.NextField, k.PrevField, k.StepUp, k.StepDown, k.Submit, k.Cancel}
	default:
		return nil
	}
}
