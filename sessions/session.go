package sessions

import (
	"slices"
	"strings"

	"github.com/reusee/duet/docs"
)

// Session is the in-memory working copy of the document, line oriented
// so a front end can edit by cursor position. It is not synchronized;
// one session belongs to one driving loop.
type Session struct {
	Lines   []string
	CursorY int
	CursorX int
	ScrollY int

	Status    string
	LastError string
	State     CycleState
}

func NewSession(source string) *Session {
	return &Session{
		Lines: strings.Split(source, "\n"),
	}
}

func (s *Session) Source() string {
	return strings.Join(s.Lines, "\n")
}

func (s *Session) SetSource(source string) {
	s.Lines = strings.Split(source, "\n")
	if s.CursorY >= len(s.Lines) {
		s.CursorY = len(s.Lines) - 1
	}
	if s.CursorX > len(s.Lines[s.CursorY]) {
		s.CursorX = len(s.Lines[s.CursorY])
	}
}

// MarkerLine returns the index of the marker line, or -1.
func (s *Session) MarkerLine() int {
	for i, line := range s.Lines {
		if line == docs.Marker {
			return i
		}
	}
	return -1
}

// InConversation reports whether the cursor sits below the marker line.
func (s *Session) InConversation() bool {
	marker := s.MarkerLine()
	return marker >= 0 && s.CursorY > marker
}

// BreakLine splits the current line at the cursor. Below the marker the
// carried-over text is comment prefixed, so typing in the conversation
// region keeps producing comment lines.
func (s *Session) BreakLine() {
	line := s.Lines[s.CursorY]
	s.Lines[s.CursorY] = line[:s.CursorX]
	remainder := line[s.CursorX:]
	if s.InConversation() {
		remainder = docs.CommentLine(remainder)
		if remainder == "#" {
			// room for the cursor to land after the prefix
			remainder = "# "
		}
	}
	s.Lines = slices.Insert(s.Lines, s.CursorY+1, remainder)
	s.CursorY++
	if s.InConversation() {
		s.CursorX = 2
	} else {
		s.CursorX = 0
	}
}

func (s *Session) CursorToEnd() {
	s.CursorY = len(s.Lines) - 1
	s.CursorX = 0
}

func truncate(str string, n int) string {
	runes := []rune(str)
	if len(runes) <= n {
		return str
	}
	return string(runes[:n])
}
