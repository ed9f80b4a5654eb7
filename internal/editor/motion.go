package editor

import (
	"regexp"
	"unicode/utf8"
)

// newlinePattern separates the buffer into lines for the line-boundary and
// vertical movement commands.
var newlinePattern = regexp.MustCompile(`\n+`)

// linePattern matches the contents of a single line.
var linePattern = regexp.MustCompile(`(?m)^.*$`)

// matchSpans returns the rune-offset spans of every match of re in text.
// regexp reports byte offsets; the buffer is addressed in characters.
func matchSpans(text string, re *regexp.Regexp) [][2]int {
	idx := re.FindAllStringIndex(text, -1)
	spans := make([][2]int, 0, len(idx))
	bytePos, runePos := 0, 0
	for _, m := range idx {
		runePos += utf8.RuneCountInString(text[bytePos:m[0]])
		start := runePos
		runePos += utf8.RuneCountInString(text[m[0]:m[1]])
		bytePos = m[1]
		spans = append(spans, [2]int{start, runePos})
	}
	return spans
}

// PointMax returns the maximum point of the active buffer.
func PointMax(ed *Editor) int {
	return ed.ActiveBuffer().Len()
}

// PointMin returns the minimum point of the active buffer. It exists so a
// future narrowing feature has a single place to hook into.
func PointMin(ed *Editor) int {
	return 0
}

// ForwardChar moves point forward n characters. Negative n moves backward.
func ForwardChar(ed *Editor, n int) {
	buff := ed.ActiveBuffer()
	buff.SetPoint(buff.Point() + n)
}

// BackwardChar moves point backward n characters. Negative n moves forward.
func BackwardChar(ed *Editor, n int) {
	ForwardChar(ed, -n)
}

// ForwardByDelimiter moves point forward n units, where units are separated
// by matches of re. A unit ends where a delimiter starts; running out of
// delimiters means point is in the last unit, so it moves to buffer end.
func ForwardByDelimiter(ed *Editor, re *regexp.Regexp, n int) {
	if n == 0 {
		return
	}
	if n < 0 {
		BackwardByDelimiter(ed, re, -n)
		return
	}

	buff := ed.ActiveBuffer()
	point := buff.Point()

	var unitEnds []int
	for _, span := range matchSpans(buff.Text(), re) {
		if span[0] > point {
			unitEnds = append(unitEnds, span[0])
		}
	}

	if n > len(unitEnds) {
		buff.SetPoint(PointMax(ed))
		return
	}
	buff.SetPoint(unitEnds[n-1])
}

// BackwardByDelimiter moves point backward n units. A unit starts where a
// delimiter ends; running out of delimiters means point is in the first
// unit, so it moves to buffer start.
func BackwardByDelimiter(ed *Editor, re *regexp.Regexp, n int) {
	if n == 0 {
		return
	}
	if n < 0 {
		ForwardByDelimiter(ed, re, -n)
		return
	}

	buff := ed.ActiveBuffer()
	point := buff.Point()

	var unitStarts []int
	for _, span := range matchSpans(buff.Text(), re) {
		if span[1] < point {
			unitStarts = append(unitStarts, span[1])
		}
	}

	if n > len(unitStarts) {
		buff.SetPoint(PointMin(ed))
		return
	}
	buff.SetPoint(unitStarts[len(unitStarts)-n])
}

// ForwardWord moves point forward n words, landing at word ends. Words are
// delimited by the active mode's word-delimiter pattern.
func ForwardWord(ed *Editor, n int) {
	delims := ed.ActiveBuffer().Mode().WordDelimiters()
	ForwardByDelimiter(ed, delims, n)
}

// BackwardWord moves point backward n words, landing at word starts.
func BackwardWord(ed *Editor, n int) {
	ForwardWord(ed, -n)
}

// MoveEndOfLine moves point to the end of the current line. A point already
// on a newline (or at buffer end) stays put.
func MoveEndOfLine(ed *Editor) {
	buff := ed.ActiveBuffer()
	ch, ok := buff.CharAt(buff.Point())
	if !ok || ch == '\n' {
		return
	}
	ForwardByDelimiter(ed, newlinePattern, 1)
}

// MoveBeginningOfLine moves point to the start of the current line. Column 0
// stays put.
func MoveBeginningOfLine(ed *Editor) {
	buff := ed.ActiveBuffer()
	if buff.Column() == 0 {
		return
	}
	BackwardByDelimiter(ed, newlinePattern, 1)
}

// PreviousLine moves point up n lines, keeping the column where the target
// line is long enough and stopping at its end otherwise.
func PreviousLine(ed *Editor, n int) {
	if n == 0 {
		return
	}
	if n < 0 {
		NextLine(ed, -n)
		return
	}

	buff := ed.ActiveBuffer()
	originalColumn := buff.Column()

	for i := 0; i < n; i++ {
		MoveBeginningOfLine(ed)
		BackwardChar(ed, 1)
	}

	// Point sits at the end of the target line; back up to the original
	// column when the line is longer.
	adjust := buff.Column() - originalColumn
	if adjust < 0 {
		adjust = 0
	}
	BackwardChar(ed, adjust)
}

// NextLine moves point down n lines, keeping the column where the target
// line is long enough and stopping at its end otherwise.
func NextLine(ed *Editor, n int) {
	if n == 0 {
		return
	}
	if n < 0 {
		PreviousLine(ed, -n)
		return
	}

	buff := ed.ActiveBuffer()
	originalColumn := buff.Column()

	for i := 0; i < n; i++ {
		MoveEndOfLine(ed)
		ForwardChar(ed, 1)
	}

	// Point sits at the start of the target line; go forward to the
	// original column or the line's end, whichever comes first.
	lineLen := utf8.RuneCountInString(LineAtPoint(ed))
	adjust := originalColumn
	if lineLen < adjust {
		adjust = lineLen
	}
	ForwardChar(ed, adjust)
}

// ScrollUp scrolls the view n lines toward the end of the buffer, revealing
// later content. When the scroll pushes point's line out of the viewport,
// point moves the minimal number of lines to re-enter it: the view stays
// fixed and point follows.
func ScrollUp(ed *Editor, n int) {
	buff := ed.ActiveBuffer()
	buff.ScrollBuffer(n)

	viewMin := buff.DisplayLine()
	viewMax := viewMin + ed.Height() - 2
	line := buff.Line()

	if line < viewMin {
		NextLine(ed, viewMin-line)
	}
	if line >= viewMax {
		PreviousLine(ed, line-viewMax+1)
	}
}

// ScrollDown scrolls the view n lines toward the start of the buffer.
func ScrollDown(ed *Editor, n int) {
	ScrollUp(ed, -n)
}

// ThingAtPoint returns the unit containing point, where units are the
// matches of re. Point between units yields the empty string.
func ThingAtPoint(ed *Editor, re *regexp.Regexp) string {
	buff := ed.ActiveBuffer()
	point := buff.Point()
	text := []rune(buff.Text())

	for _, span := range matchSpans(buff.Text(), re) {
		if span[0] <= point && point <= span[1] {
			return string(text[span[0]:span[1]])
		}
	}
	return ""
}

// LineAtPoint returns the contents of the line containing point.
func LineAtPoint(ed *Editor) string {
	return ThingAtPoint(ed, linePattern)
}

// WordAtPoint returns the word containing point per the active mode's
// word pattern.
func WordAtPoint(ed *Editor) string {
	return ThingAtPoint(ed, ed.ActiveBuffer().Mode().Words())
}
