package input

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultChordWindow is how long a pending "d" waits for its partner.
const DefaultChordWindow = time.Second

// Context selects which key table a key is decoded against.
type Context int

const (
	Lists Context = iota
	Reminders
	Search
	FormText
	FormChoice
)

func (c Context) String() string {
	switch c {
	case Lists:
		return "lists"
	case Reminders:
		return "reminders"
	case Search:
		return "search"
	case FormText:
		return "form_text"
	case FormChoice:
		return "form_choice"
	default:
		return "unknown"
	}
}

type CommandType int

const (
	CmdNone CommandType = iota
	CmdMoveUp
	CmdMoveDown
	CmdSelect
	CmdToggleComplete
	CmdDelete
	CmdOpenCreateForm
	CmdBack
	CmdQuit
	CmdRefresh
	CmdToggleCompletedVisibility
	CmdStartSearch
	CmdSearchCommit
	CmdFormNext
	CmdFormPrev
	CmdStepUp
	CmdStepDown
	CmdSubmit
	CmdCancel
	CmdInputChar
	CmdBackspace
)

// Command is a decoded key. Char is only meaningful for CmdInputChar.
type Command struct {
	Type CommandType
	Char rune
}

// ChordState tracks the first half of a two-key chord. The zero value is
// idle.
type ChordState struct {
	PendingKey string
	Deadline   time.Time
}

func (c ChordState) Armed() bool { return c.PendingKey != "" }

// Expire drops a chord whose deadline has passed.
func (c ChordState) Expire(now time.Time) ChordState {
	if c.Armed() && now.After(c.Deadline) {
		return ChordState{}
	}
	return c
}

type Interpreter struct {
	Keys   KeyMap
	Window time.Duration
}

func NewInterpreter(window time.Duration) Interpreter {
	if window <= 0 {
		window = DefaultChordWindow
	}
	return Interpreter{Keys: DefaultKeyMap(), Window: window}
}

// Interpret decodes one key in a context. It never reads the clock; now is
// supplied by the caller.
func (in Interpreter) Interpret(ctx Context, msg tea.KeyMsg, chord ChordState, now time.Time) (Command, ChordState) {
	if key.Matches(msg, in.Keys.ForceQuit) {
		return Command{Type: CmdQuit}, ChordState{}
	}

	if chord.Armed() {
		pending, deadline := chord.PendingKey, chord.Deadline
		chord = ChordState{}
		if ctx == Reminders && msg.String() == pending && !now.After(deadline) {
			return Command{Type: CmdDelete}, chord
		}
	}

	switch ctx {
	case Lists:
		return in.decodeLists(msg), chord
	case Reminders:
		if key.Matches(msg, in.Keys.DeleteChord) {
			return Command{Type: CmdNone}, ChordState{PendingKey: msg.String(), Deadline: now.Add(in.Window)}
		}
		return in.decodeReminders(msg), chord
	case Search:
		return in.decodeSearch(msg), chord
	case FormText:
		return in.decodeFormText(msg), chord
	case FormChoice:
		return in.decodeFormChoice(msg), chord
	default:
		return Command{Type: CmdNone}, chord
	}
}

func (in Interpreter) decodeLists(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, in.Keys.Up):
		return Command{Type: CmdMoveUp}
	case key.Matches(msg, in.Keys.Down):
		return Command{Type: CmdMoveDown}
	case key.Matches(msg, in.Keys.Select):
		return Command{Type: CmdSelect}
	case key.Matches(msg, in.Keys.Create):
		return Command{Type: CmdOpenCreateForm}
	case key.Matches(msg, in.Keys.Quit):
		return Command{Type: CmdQuit}
	case key.Matches(msg, in.Keys.Refresh):
		return Command{Type: CmdRefresh}
	case key.Matches(msg, in.Keys.Search):
		return Command{Type: CmdStartSearch}
	}
	return Command{Type: CmdNone}
}

func (in Interpreter) decodeReminders(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, in.Keys.Up):
		return Command{Type: CmdMoveUp}
	case key.Matches(msg, in.Keys.Down):
		return Command{Type: CmdMoveDown}
	case key.Matches(msg, in.Keys.Toggle):
		return Command{Type: CmdToggleComplete}
	case key.Matches(msg, in.Keys.Delete):
		return Command{Type: CmdDelete}
	case key.Matches(msg, in.Keys.Create):
		return Command{Type: CmdOpenCreateForm}
	case key.Matches(msg, in.Keys.Back):
		return Command{Type: CmdBack}
	case key.Matches(msg, in.Keys.Refresh):
		return Command{Type: CmdRefresh}
	case key.Matches(msg, in.Keys.ToggleCompleted):
		return Command{Type: CmdToggleCompletedVisibility}
	case key.Matches(msg, in.Keys.Search):
		return Command{Type: CmdStartSearch}
	}
	return Command{Type: CmdNone}
}

func (in Interpreter) decodeSearch(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, in.Keys.StepUp):
		return Command{Type: CmdMoveUp}
	case key.Matches(msg, in.Keys.StepDown):
		return Command{Type: CmdMoveDown}
	case key.Matches(msg, in.Keys.SearchDone):
		return Command{Type: CmdSearchCommit}
	case key.Matches(msg, in.Keys.Backspace):
		return Command{Type: CmdBackspace}
	}
	return charCommand(msg)
}

func (in Interpreter) decodeFormText(msg tea.KeyMsg) Command {
	if cmd, ok := in.decodeFormCommon(msg); ok {
		return cmd
	}
	if key.Matches(msg, in.Keys.Backspace) {
		return Command{Type: CmdBackspace}
	}
	return charCommand(msg)
}

func (in Interpreter) decodeFormChoice(msg tea.KeyMsg) Command {
	if cmd, ok := in.decodeFormCommon(msg); ok {
		return cmd
	}
	if key.Matches(msg, in.Keys.ChoiceQ) {
		return Command{Type: CmdCancel}
	}
	return Command{Type: CmdNone}
}

func (in Interpreter) decodeFormCommon(msg tea.KeyMsg) (Command, bool) {
	switch {
	case key.Matches(msg, in.Keys.Submit):
		return Command{Type: CmdSubmit}, true
	case key.Matches(msg, in.Keys.Cancel):
		return Command{Type: CmdCancel}, true
	case key.Matches(msg, in.Keys.PrevField):
		return Command{Type: CmdFormPrev}, true
	case key.Matches(msg, in.Keys.NextField):
		return Command{Type: CmdFormNext}, true
	case key.Matches(msg, in.Keys.StepUp):
		return Command{Type: CmdStepUp}, true
	case key.Matches(msg, in.Keys.StepDown):
		return Command{Type: CmdStepDown}, true
	}
	return Command{}, false
}

// charCommand turns a printable key into CmdInputChar. Callers split
// multi-rune messages before decoding.
func charCommand(msg tea.KeyMsg) Command {
	if msg.Alt {
		return Command{Type: CmdNone}
	}
	switch msg.Type {
	case tea.KeySpace:
		return Command{Type: CmdInputChar, Char: ' '}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return Command{Type: CmdInputChar, Char: msg.Runes[0]}
		}
	}
	return Command{Type: CmdNone}
}
