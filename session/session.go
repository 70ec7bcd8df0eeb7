package session

import (
	"errors"
	"fmt"

	"console-draw/canvas"
	"console-draw/commands"
	"console-draw/core"

	"github.com/sirupsen/logrus"
)

// EmptyColor is the default background of new canvases.
const EmptyColor = " "

var ErrSessionClosed = errors.New("session has been closed")

// State is everything one session owns: the live canvas (nil until the
// first create command) and whether Quit has been issued.
type State struct {
	Canvas *canvas.Canvas
	Closed bool
}

// Outcome describes what a dispatched line did.
type Outcome struct {
	Quit bool
}

// Dispatch parses and runs one command line against state and returns the
// updated state. On error the returned state is the input state, untouched:
// every command validates before it mutates.
func Dispatch(state State, line string, background core.ColorFactory) (State, Outcome, error) {
	if state.Closed {
		return state, Outcome{}, ErrSessionClosed
	}

	cmd, err := commands.Parse(line, state.Canvas, background)
	if err != nil {
		logrus.WithField("line", line).WithError(err).Debug("Command rejected")
		return state, Outcome{}, err
	}

	cmd.Execute()

	if _, ok := cmd.(*commands.Quit); ok {
		logrus.Debug("Session quit")
		return State{Canvas: state.Canvas, Closed: true}, Outcome{Quit: true}, nil
	}

	next := State{Canvas: cmd.Result()}
	logrus.WithFields(logrus.Fields{
		"line":   line,
		"width":  next.Canvas.Width(),
		"height": next.Canvas.Height(),
	}).Debug("Command executed")
	return next, Outcome{}, nil
}

// Reply is the answer to one submitted line.
type Reply struct {
	// Output is the rendered canvas; empty when Quit is set.
	Output string
	Quit   bool
}

// Session holds one user's canvas across a sequence of commands. It is not
// safe for concurrent use; callers that share one serialize access.
type Session struct {
	state      State
	background core.ColorFactory
}

type Option func(*Session)

// WithBackground sets the color new canvases are filled with.
func WithBackground(background core.ColorFactory) Option {
	return func(s *Session) {
		s.background = background
	}
}

func New(opts ...Option) *Session {
	s := &Session{background: core.MustAsciiColorFactory(EmptyColor)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit runs one command line and returns the new render, or the error
// that rejected the line. A rejected line leaves the canvas unchanged.
func (s *Session) Submit(line string) (Reply, error) {
	next, outcome, err := Dispatch(s.state, line, s.background)
	if err != nil {
		return Reply{}, err
	}
	s.state = next

	if outcome.Quit {
		return Reply{Quit: true}, nil
	}
	return Reply{Output: s.state.Canvas.Render()}, nil
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

func (s *Session) Closed() bool {
	return s.state.Closed
}

// Render returns the current render, or false if no canvas exists yet.
func (s *Session) Render() (string, bool) {
	if s.state.Canvas == nil {
		return "", false
	}
	return s.state.Canvas.Render(), true
}

// Snapshot returns a copy of the current grid, or nil if no canvas exists.
func (s *Session) Snapshot() [][]core.Color {
	if s.state.Canvas == nil {
		return nil
	}
	return s.state.Canvas.Pixels()
}

// ErrorMessage formats err the way it is shown to a user.
func ErrorMessage(err error) string {
	return fmt.Sprintf("Error: %v", err)
}
