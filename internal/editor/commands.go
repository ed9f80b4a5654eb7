package editor

import (
	"strings"
	"unicode/utf8"

	"gmacs/internal/log"
)

// withCount adapts a counted movement into a Command with a fixed count.
func withCount(f func(*Editor, int), n int) Command {
	return func(ed *Editor) { f(ed, n) }
}

// SelfInsert inserts the character that invoked it: the last stroke of the
// dispatched keychord.
func SelfInsert(ed *Editor) {
	chord := ed.Keychord()
	if len(chord) == 0 {
		return
	}
	ed.ActiveBuffer().Insert(chord[len(chord)-1])
}

// Newline inserts a newline at point.
func Newline(ed *Editor) {
	ed.ActiveBuffer().Insert("\n")
}

// DeleteChar deletes the character after point.
func DeleteChar(ed *Editor) {
	ed.ActiveBuffer().DeleteChar(1)
}

// BackwardDeleteChar deletes the character before point.
func BackwardDeleteChar(ed *Editor) {
	ed.ActiveBuffer().DeleteChar(-1)
}

// SetMark plants the mark at point.
func SetMark(ed *Editor) {
	buff := ed.ActiveBuffer()
	buff.SetMark(buff.Point())
	ed.Message("Mark set")
}

// KillRegion deletes the region between point and mark and pushes it onto
// the kill ring.
func KillRegion(ed *Editor) {
	ed.KillRing().Push(ed.ActiveBuffer().DeleteRegion())
}

// KillRingSave pushes the region onto the kill ring without deleting it.
func KillRingSave(ed *Editor) {
	buff := ed.ActiveBuffer()
	start, end := buff.Point(), buff.Mark()
	if start > end {
		start, end = end, start
	}
	text := []rune(buff.Text())
	ed.KillRing().Push(string(text[start:end]))
	ed.Message("Region saved")
}

// KillLine kills from point to the end of the line, or the newline itself
// when point already sits on one.
func KillLine(ed *Editor) {
	buff := ed.ActiveBuffer()
	if ch, ok := buff.CharAt(buff.Point()); ok && ch == '\n' {
		ed.KillRing().Push(buff.DeleteChar(1))
		return
	}
	start := buff.Point()
	MoveEndOfLine(ed)
	if dist := buff.Point() - start; dist > 0 {
		ed.KillRing().Push(buff.DeleteChar(-dist))
	}
}

// Yank inserts the front of the kill ring at point.
func Yank(ed *Editor) {
	text, ok := ed.KillRing().Current()
	if !ok {
		ed.Message("Kill ring is empty")
		return
	}
	ed.ActiveBuffer().Insert(text)
}

// YankPop replaces text just inserted by a yank with the next older kill.
// It refuses when the text before point is not the current kill.
func YankPop(ed *Editor) {
	buff := ed.ActiveBuffer()
	ring := ed.KillRing()

	current, ok := ring.Current()
	if !ok {
		ed.Message("Kill ring is empty")
		return
	}

	n := utf8.RuneCountInString(current)
	point := buff.Point()
	text := []rune(buff.Text())
	if point < n || string(text[point-n:point]) != current {
		ed.Message("Previous command was not a yank")
		return
	}

	buff.DeleteChar(-n)
	ring.Rotate()
	if next, ok := ring.Current(); ok {
		buff.Insert(next)
	}
}

// CreateBuffer prompts for a buffer name and switches to a fresh buffer with
// it. Empty input falls back to a generated name.
func CreateBuffer(ed *Editor) {
	ed.RequestPrompt("Buffer name: ", func(ed *Editor, name string) {
		if name == "" {
			name = randomBufferName()
		}
		ed.CreateBuffer(name, "")
	})
}

// NextBuffer switches to the next buffer in the list, wrapping at the end.
func NextBuffer(ed *Editor) {
	if len(ed.Buffers()) == 0 {
		return
	}
	ed.SwitchBuffer((ed.ActiveIndex() + 1) % len(ed.Buffers()))
}

// PreviousBuffer switches to the previous buffer, wrapping at the start.
func PreviousBuffer(ed *Editor) {
	n := len(ed.Buffers())
	if n == 0 {
		return
	}
	ed.SwitchBuffer((ed.ActiveIndex() - 1 + n) % n)
}

// KillActiveBuffer removes the active buffer from the session. The session
// regrows a *scratch* buffer when the list empties.
func KillActiveBuffer(ed *Editor) {
	name := ed.ActiveBuffer().Name()
	ed.KillBuffer(ed.ActiveIndex())
	ed.Message("Killed " + name)
}

// SaveBuffer writes the active buffer to its file.
func SaveBuffer(ed *Editor) {
	buff := ed.ActiveBuffer()
	if err := buff.Save(); err != nil {
		log.ErrorErr(log.CatBuffer, "save failed", err, "buffer", buff.Name())
		ed.Message(err.Error())
		return
	}
	ed.Message("Wrote " + buff.Path())
}

// WriteFile prompts for a path, associates the active buffer with it, and
// saves.
func WriteFile(ed *Editor) {
	ed.RequestPrompt("Write file: ", func(ed *Editor, path string) {
		if path == "" {
			ed.Message("No file name given")
			return
		}
		buff := ed.ActiveBuffer()
		buff.SetPath(path)
		SaveBuffer(ed)
	})
}

// KillSession ends the editing loop. It does not check for unsaved buffers.
func KillSession(ed *Editor) {
	ed.EndSession()
}

// Undefined reports an unbound keychord via the echo area.
func Undefined(ed *Editor) {
	ed.Message(strings.Join(ed.Keychord(), " ") + " is undefined")
}
