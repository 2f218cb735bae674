// ABOUTME: Session state of the interactive terminal: input history, working directory, lifecycle
// ABOUTME: Running until an exit intent or an interrupt terminates it; history is append-only

package session

import (
	"fmt"
	"slices"
)

// State is the lifecycle state of a session.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is owned by the terminal loop and touched by one goroutine only.
type Session struct {
	CWD     string
	history []string
	state   State
	reason  string
}

// New creates a running session rooted at cwd.
func New(cwd string) *Session {
	return &Session{CWD: cwd, state: Running}
}

// Append records one line of user input.
func (s *Session) Append(input string) {
	s.history = append(s.history, input)
}

// History returns a copy of the inputs in the order they were entered.
func (s *Session) History() []string {
	return slices.Clone(s.history)
}

// Len returns the number of recorded inputs.
func (s *Session) Len() int { return len(s.history) }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Running reports whether the session still accepts input.
func (s *Session) Running() bool { return s.state == Running }

// Terminate moves the session to Terminated. Only the first call's reason
// is kept; later calls are no-ops.
func (s *Session) Terminate(reason string) {
	if s.state == Terminated {
		return
	}
	s.state = Terminated
	s.reason = reason
}

// Reason returns why the session terminated, or "" while running.
func (s *Session) Reason() string { return s.reason }
