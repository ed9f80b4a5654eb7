// Package buffer implements the text buffer: a contiguous run of text with a
// cursor (point) and a selection anchor (mark). All offsets are character
// (rune) offsets, never bytes or display columns.
package buffer

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"gmacs/internal/mode"
)

// Buffer owns buffer text, point and mark, and exposes the insert/delete
// primitives every editing command is built on.
//
// Invariant: 0 <= point <= len(text) and 0 <= mark <= len(text). Every
// mutator re-clamps.
type Buffer struct {
	id          string
	name        string
	path        string
	text        []rune
	point       int
	mark        int
	modified    bool
	displayLine int
	mode        *mode.Mode
}

// New creates an empty buffer with point and mark at 0.
func New(name, path string) *Buffer {
	return &Buffer{
		id:   uuid.NewString(),
		name: name,
		path: path,
		mode: mode.Fundamental(),
	}
}

// ID returns the buffer's stable identity.
func (b *Buffer) ID() string { return b.id }

// Name returns the buffer name.
func (b *Buffer) Name() string { return b.name }

// SetName renames the buffer.
func (b *Buffer) SetName(name string) { b.name = name }

// Path returns the file path associated with the buffer, if any.
func (b *Buffer) Path() string { return b.path }

// SetPath associates the buffer with a file path.
func (b *Buffer) SetPath(path string) { b.path = path }

// Text returns the buffer contents.
func (b *Buffer) Text() string { return string(b.text) }

// Len returns the buffer length in characters.
func (b *Buffer) Len() int { return len(b.text) }

// Point returns the cursor offset.
func (b *Buffer) Point() int { return b.point }

// Mark returns the mark offset.
func (b *Buffer) Mark() int { return b.mark }

// Modified reports whether the text changed since the last save.
func (b *Buffer) Modified() bool { return b.modified }

// DisplayLine returns the index of the first line rendered in the viewport.
func (b *Buffer) DisplayLine() int { return b.displayLine }

// Mode returns the buffer's major mode.
func (b *Buffer) Mode() *mode.Mode { return b.mode }

// SetMode switches the buffer's major mode.
func (b *Buffer) SetMode(m *mode.Mode) { b.mode = m }

// clampPos constrains a position to [0, len(text)].
func (b *Buffer) clampPos(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.text) {
		return len(b.text)
	}
	return pos
}

// SetPoint moves point, clamping to the buffer bounds.
func (b *Buffer) SetPoint(pos int) {
	b.point = b.clampPos(pos)
}

// SetMark moves the mark, clamping to the buffer bounds.
func (b *Buffer) SetMark(pos int) {
	b.mark = b.clampPos(pos)
}

// Insert splices s in at point. Point ends up after the inserted text, and a
// mark beyond point shifts right with it. Returns the inserted text so
// higher layers (the kill ring) can reuse it.
func (b *Buffer) Insert(s string) string {
	if s == "" {
		return s
	}
	ins := []rune(s)
	point := b.point

	text := make([]rune, 0, len(b.text)+len(ins))
	text = append(text, b.text[:point]...)
	text = append(text, ins...)
	text = append(text, b.text[point:]...)
	b.text = text

	b.point = point + len(ins)
	if b.mark > point {
		b.mark += len(ins)
	}
	b.modified = true

	return s
}

// DeleteChar deletes n characters after point (n > 0) or |n| characters
// before point (n < 0), clamped at the buffer bounds. Backward deletion
// moves point to the start of the removed span; forward deletion leaves it.
// The mark collapses to the span start when inside it and shifts left when
// beyond it. Returns the deleted text.
func (b *Buffer) DeleteChar(n int) string {
	start, end := b.point, b.clampPos(b.point+n)
	if start > end {
		start, end = end, start
	}

	deleted := string(b.text[start:end])
	if deleted == "" {
		return deleted
	}

	b.text = append(b.text[:start:start], b.text[end:]...)

	if n < 0 {
		b.point = start
	}

	switch {
	case b.mark >= start && b.mark <= end:
		b.mark = start
	case b.mark > end:
		b.mark -= end - start
	}
	b.modified = true

	return deleted
}

// DeleteRegion deletes the text between point and mark, leaving both at the
// region start. Returns the deleted text.
func (b *Buffer) DeleteRegion() string {
	start, end := b.point, b.mark
	if start > end {
		start, end = end, start
	}

	deleted := string(b.text[start:end])
	b.text = append(b.text[:start:start], b.text[end:]...)
	b.point = start
	b.mark = start
	if deleted != "" {
		b.modified = true
	}

	return deleted
}

// CharAt returns the character at pos, or false when pos is outside the text
// (including the end-of-buffer position).
func (b *Buffer) CharAt(pos int) (rune, bool) {
	if pos < 0 || pos >= len(b.text) {
		return 0, false
	}
	return b.text[pos], true
}

// Line returns the index of the line containing point.
func (b *Buffer) Line() int {
	line := 0
	for _, r := range b.text[:b.point] {
		if r == '\n' {
			line++
		}
	}
	return line
}

// Column returns point's offset from the start of its line.
func (b *Buffer) Column() int {
	return b.point - b.lineStart()
}

// lineStart returns the offset of the first character of point's line.
func (b *Buffer) lineStart() int {
	for i := b.point - 1; i >= 0; i-- {
		if b.text[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// LineCount returns the number of lines in the buffer. An empty buffer has
// one (empty) line.
func (b *Buffer) LineCount() int {
	return strings.Count(string(b.text), "\n") + 1
}

// VisibleLines returns the window of height lines starting at the display
// line, for rendering.
func (b *Buffer) VisibleLines(height int) []string {
	lines := strings.Split(string(b.text), "\n")
	start := b.displayLine
	if start > len(lines) {
		start = len(lines)
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end]
}

// ScrollBuffer shifts the first displayed line by n, clamped to the buffer's
// line range. It never moves point.
func (b *Buffer) ScrollBuffer(n int) {
	b.displayLine += n
	if b.displayLine < 0 {
		b.displayLine = 0
	}
	if max := b.LineCount() - 1; b.displayLine > max {
		b.displayLine = max
	}
}

// Load replaces the buffer contents with the associated file's contents and
// resets point, mark and the modified flag. A buffer with no path loads
// empty.
func (b *Buffer) Load() error {
	if b.path == "" {
		return nil
	}
	data, err := os.ReadFile(b.path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", b.path, err)
	}
	b.text = []rune(string(data))
	b.point = 0
	b.mark = 0
	b.displayLine = 0
	b.modified = false
	return nil
}

// Save writes the buffer contents to the associated path and clears the
// modified flag.
func (b *Buffer) Save() error {
	if b.path == "" {
		return fmt.Errorf("buffer %s has no file", b.name)
	}
	if err := os.WriteFile(b.path, []byte(string(b.text)), 0644); err != nil { //nolint:gosec // G306: regular text file
		return fmt.Errorf("saving %s: %w", b.path, err)
	}
	b.modified = false
	return nil
}
