package practice

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSession_Window(t *testing.T) {
	s := NewSession()
	require.Equal(t, "(no turns yet)", s.Window())

	s.Append(RoleCoach, "Why should we trust your timeline?")
	s.Append(RoleYou, "We shipped the last three phases early.")

	require.Equal(t,
		"coach: Why should we trust your timeline?\nyou: We shipped the last three phases early.",
		s.Window())
}

func TestSession_WindowKeepsLastTen(t *testing.T) {
	s := NewSession()
	for i := 0; i < 14; i++ {
		s.Append(RoleCoach, fmt.Sprintf("turn %d", i))
	}

	w := s.Window()
	lines := strings.Split(w, "\n")
	require.Len(t, lines, 10)
	require.Equal(t, "coach: turn 4", lines[0])
	require.Equal(t, "coach: turn 13", lines[9])
}

func TestSession_Clear(t *testing.T) {
	s := NewSession()
	s.Append(RoleYou, "hello")
	require.Equal(t, 1, s.Len())

	s.Clear()
	require.Zero(t, s.Len())
	require.Equal(t, "(no turns yet)", s.Window())
}
