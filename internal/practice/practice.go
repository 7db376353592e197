// Package practice tracks the turn log of an interactive rehearsal session.
package practice

import (
	"fmt"
	"strings"
)

// Turn roles.
const (
	RoleCoach = "coach"
	RoleYou   = "you"
)

// windowSize bounds how many recent turns are folded into prompts.
const windowSize = 10

// Turn is one exchange in a practice session.
type Turn struct {
	Role    string
	Content string
}

// Session accumulates practice turns in order.
type Session struct {
	turns []Turn
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Append records a turn.
func (s *Session) Append(role, content string) {
	s.turns = append(s.turns, Turn{Role: role, Content: content})
}

// Turns returns a copy of every recorded turn, oldest first.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len reports how many turns have been recorded.
func (s *Session) Len() int { return len(s.turns) }

// Clear drops all recorded turns.
func (s *Session) Clear() { s.turns = nil }

// Window formats the most recent turns (at most ten) as "role: content"
// lines for prompt embedding. Empty sessions yield a placeholder so
// templates never interpolate a blank block.
func (s *Session) Window() string {
	if len(s.turns) == 0 {
		return "(no turns yet)"
	}

	start := 0
	if len(s.turns) > windowSize {
		start = len(s.turns) - windowSize
	}

	var sb strings.Builder
	for i, turn := range s.turns[start:] {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s: %s", turn.Role, turn.Content)
	}
	return sb.String()
}
