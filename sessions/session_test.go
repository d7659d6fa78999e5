package sessions

import (
	"strings"
	"testing"

	"github.com/reusee/duet/docs"
)

func TestBreakLineInKernel(t *testing.T) {
	session := NewSession("x = 1\n" + docs.Marker + "\n# hi")
	session.CursorY = 0
	session.CursorX = 1
	session.BreakLine()
	if session.Source() != "x\n = 1\n"+docs.Marker+"\n# hi" {
		t.Fatalf("got %q", session.Source())
	}
	if session.CursorY != 1 || session.CursorX != 0 {
		t.Fatalf("got %d:%d", session.CursorY, session.CursorX)
	}
}

func TestBreakLineInConversation(t *testing.T) {
	session := NewSession("x = 1\n" + docs.Marker + "\n# hello world")
	session.CursorY = 2
	session.CursorX = 7

	session.BreakLine()
	if session.Lines[3] != "# world" {
		t.Fatalf("got %q", session.Lines[3])
	}
	if session.CursorY != 3 || session.CursorX != 2 {
		t.Fatalf("got %d:%d", session.CursorY, session.CursorX)
	}

	// break at end of line opens a fresh comment line
	session.CursorX = len(session.Lines[3])
	session.BreakLine()
	if session.Lines[4] != "# " {
		t.Fatalf("got %q", session.Lines[4])
	}

	// an already commented remainder is kept as is
	session.Lines[4] = "# tail"
	session.CursorX = 2
	session.BreakLine()
	if session.Lines[4] != "# " || session.Lines[5] != "# tail" {
		t.Fatalf("got %q %q", session.Lines[4], session.Lines[5])
	}

	// indentation is stripped before prefixing
	session.Lines[5] = "# \tpadded"
	session.CursorY = 5
	session.CursorX = 2
	session.BreakLine()
	if session.Lines[6] != "# padded" {
		t.Fatalf("got %q", session.Lines[6])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abc", 5); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc" {
		t.Fatalf("got %q", got)
	}
	// clips on runes, never mid-sequence
	multi := strings.Repeat("é", 10)
	if got := truncate(multi, 4); got != strings.Repeat("é", 4) {
		t.Fatalf("got %q", got)
	}
}

func TestSetSourceClampsCursor(t *testing.T) {
	session := NewSession("one\ntwo\nthree")
	session.CursorY = 2
	session.CursorX = 5
	session.SetSource("ab")
	if session.CursorY != 0 || session.CursorX != 2 {
		t.Fatalf("got %d:%d", session.CursorY, session.CursorX)
	}
}

func TestMarkerLine(t *testing.T) {
	session := NewSession("x = 1\n" + docs.Marker + "\n# hi")
	if session.MarkerLine() != 1 {
		t.Fatal()
	}
	if session.InConversation() {
		t.Fatal()
	}
	session.CursorY = 2
	if !session.InConversation() {
		t.Fatal()
	}

	session = NewSession("no marker here")
	if session.MarkerLine() != -1 {
		t.Fatal()
	}
	if session.InConversation() {
		t.Fatal()
	}
}
