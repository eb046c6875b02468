package session

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/rem/internal/update"
	"go.uber.org/zap"
)

// programRunner runs one slice to completion and returns the final model.
type programRunner func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error)

func runProgram(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}

type options struct {
	input       io.Reader
	output      io.Writer
	clock       func() time.Time
	logger      *zap.Logger
	config      update.RuntimeConfig
	programOpts []tea.ProgramOption
	isTerminal  func(io.Reader) bool
	run         programRunner
}

func defaultOptions() options {
	return options{
		clock:      time.Now,
		logger:     zap.NewNop(),
		config:     update.DefaultRuntimeConfig(),
		isTerminal: isInteractive,
		run:        runProgram,
	}
}

type Option func(*options)

// WithInput reads key events from r instead of the controlling terminal.
func WithInput(r io.Reader) Option {
	return func(o *options) { o.input = r }
}

func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithClock replaces the clock used for chord deadlines.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithConfig(cfg update.RuntimeConfig) Option {
	return func(o *options) { o.config = cfg }
}

// WithProgramOptions appends bubbletea options to every slice's program.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(o *options) { o.programOpts = append(o.programOpts, opts...) }
}

func withTerminalCheck(check func(io.Reader) bool) Option {
	return func(o *options) { o.isTerminal = check }
}

func withProgramRunner(run programRunner) Option {
	return func(o *options) { o.run = run }
}
