package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// newTestEditor builds a session whose scratch buffer holds text with point
// at the given offset.
func newTestEditor(t *testing.T, text string, point int) *Editor {
	t.Helper()
	ed, err := New()
	require.NoError(t, err)
	ed.ActiveBuffer().Insert(text)
	ed.ActiveBuffer().SetPoint(point)
	return ed
}

func TestForwardChar(t *testing.T) {
	ed := newTestEditor(t, "hello", 0)

	ForwardChar(ed, 3)
	require.Equal(t, 3, ed.ActiveBuffer().Point())

	ForwardChar(ed, 99)
	require.Equal(t, 5, ed.ActiveBuffer().Point())

	BackwardChar(ed, 2)
	require.Equal(t, 3, ed.ActiveBuffer().Point())

	BackwardChar(ed, 99)
	require.Equal(t, 0, ed.ActiveBuffer().Point())
}

func TestForwardWord(t *testing.T) {
	ed := newTestEditor(t, "hello world again", 0)

	ForwardWord(ed, 1)
	require.Equal(t, 5, ed.ActiveBuffer().Point())

	ForwardWord(ed, 1)
	require.Equal(t, 11, ed.ActiveBuffer().Point())

	// Past the last delimiter the move lands at buffer end.
	ForwardWord(ed, 5)
	require.Equal(t, 17, ed.ActiveBuffer().Point())
}

func TestBackwardWord(t *testing.T) {
	ed := newTestEditor(t, "hello world again", 17)

	BackwardWord(ed, 1)
	require.Equal(t, 12, ed.ActiveBuffer().Point())

	BackwardWord(ed, 1)
	require.Equal(t, 6, ed.ActiveBuffer().Point())

	// Past the first delimiter the move lands at buffer start.
	BackwardWord(ed, 5)
	require.Equal(t, 0, ed.ActiveBuffer().Point())
}

func TestForwardWordNegativeCountDelegates(t *testing.T) {
	ed := newTestEditor(t, "one two", 7)

	ForwardWord(ed, -1)
	require.Equal(t, 4, ed.ActiveBuffer().Point())
}

func TestMoveEndOfLine(t *testing.T) {
	ed := newTestEditor(t, "abc\ndef", 1)

	MoveEndOfLine(ed)
	require.Equal(t, 3, ed.ActiveBuffer().Point())

	// Already on the newline; stay put.
	MoveEndOfLine(ed)
	require.Equal(t, 3, ed.ActiveBuffer().Point())
}

func TestMoveEndOfLineLastLine(t *testing.T) {
	ed := newTestEditor(t, "abc\ndef", 5)

	MoveEndOfLine(ed)
	require.Equal(t, 7, ed.ActiveBuffer().Point())
}

func TestMoveBeginningOfLine(t *testing.T) {
	ed := newTestEditor(t, "abc\ndef", 6)

	MoveBeginningOfLine(ed)
	require.Equal(t, 4, ed.ActiveBuffer().Point())

	// Column 0 stays put.
	MoveBeginningOfLine(ed)
	require.Equal(t, 4, ed.ActiveBuffer().Point())
}

func TestNextLineKeepsColumn(t *testing.T) {
	ed := newTestEditor(t, "long line one\nab\nlong line three", 10)

	NextLine(ed, 1)
	buff := ed.ActiveBuffer()
	require.Equal(t, 1, buff.Line())
	require.Equal(t, 2, buff.Column()) // clipped to the short line's end

	NextLine(ed, 1)
	require.Equal(t, 2, buff.Line())
	require.Equal(t, 2, buff.Column())
}

func TestPreviousLineKeepsColumn(t *testing.T) {
	ed := newTestEditor(t, "ab\nlong line", 8)

	PreviousLine(ed, 1)
	buff := ed.ActiveBuffer()
	require.Equal(t, 0, buff.Line())
	require.Equal(t, 2, buff.Column())
}

func TestNextLineOnLastLineMovesToEnd(t *testing.T) {
	ed := newTestEditor(t, "abc\ndef", 5)

	NextLine(ed, 1)
	require.Equal(t, 7, ed.ActiveBuffer().Point())
}

func TestPreviousLineOnFirstLineMovesToStart(t *testing.T) {
	ed := newTestEditor(t, "abc\ndef", 2)

	PreviousLine(ed, 1)
	require.Equal(t, 0, ed.ActiveBuffer().Point())
}

func TestScrollUpPointFollowsView(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "x"
	}
	ed := newTestEditor(t, strings.Join(lines, "\n"), 0)

	ScrollUp(ed, 5)

	buff := ed.ActiveBuffer()
	require.Equal(t, 5, buff.DisplayLine())
	require.Equal(t, 5, buff.Line())
}

func TestScrollDownPointStaysWhenVisible(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "x"
	}
	ed := newTestEditor(t, strings.Join(lines, "\n"), 0)

	ScrollUp(ed, 5)
	ScrollDown(ed, 5)

	buff := ed.ActiveBuffer()
	require.Equal(t, 0, buff.DisplayLine())
	require.Equal(t, 5, buff.Line())
}

func TestScrollBeyondBufferClamps(t *testing.T) {
	ed := newTestEditor(t, "a\nb\nc", 0)

	ScrollUp(ed, 100)
	require.Equal(t, 2, ed.ActiveBuffer().DisplayLine())

	ScrollDown(ed, 100)
	require.Equal(t, 0, ed.ActiveBuffer().DisplayLine())
}

func TestEnsureVisibleScrollsViewToPoint(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "x"
	}
	ed := newTestEditor(t, strings.Join(lines, "\n"), 0)

	NextLine(ed, 40)
	ed.EnsureVisible()

	buff := ed.ActiveBuffer()
	require.Equal(t, 40, buff.Line())
	// Point's line is the last visible row: viewMax is exclusive.
	require.Equal(t, 40-(ed.Height()-2)+1, buff.DisplayLine())

	PreviousLine(ed, 40)
	ed.EnsureVisible()
	require.Equal(t, 0, buff.DisplayLine())
}

func TestWordAtPoint(t *testing.T) {
	ed := newTestEditor(t, "hello world", 2)

	require.Equal(t, "hello", WordAtPoint(ed))
}

func TestLineAtPoint(t *testing.T) {
	ed := newTestEditor(t, "abc\ndef\nghi", 5)

	require.Equal(t, "def", LineAtPoint(ed))
}

func TestThingAtPointBetweenUnitsIsEmpty(t *testing.T) {
	// Point sits inside the delimiter run, touching no word span.
	ed := newTestEditor(t, "a  b", 2)

	require.Equal(t, "", WordAtPoint(ed))
}

// TestVerticalMotionStaysInBounds drives random vertical movement and checks
// point never escapes the buffer.
func TestVerticalMotionStaysInBounds(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		text := rapid.StringMatching(`[a-z\n]{0,80}`).Draw(r, "text")
		ed := newTestEditor(t, text, 0)
		buff := ed.ActiveBuffer()
		buff.SetPoint(rapid.IntRange(0, buff.Len()).Draw(r, "point"))

		for i := 0; i < 20; i++ {
			NextLine(ed, rapid.IntRange(-3, 3).Draw(r, "n"))
			require.GreaterOrEqual(r, buff.Point(), 0)
			require.LessOrEqual(r, buff.Point(), buff.Len())
		}
	})
}
