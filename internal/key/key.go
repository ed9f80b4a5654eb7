// Package key turns raw input codes into canonical key tokens such as "C-f",
// "M-f", "KEY_UP" or "DEL".
//
// Raw codes below NamedMin are character codes; codes at or above NamedMin
// identify named device keys (arrows, page keys, function keys). The input
// source is an explicit capability so decoding can be tested with scripted
// input.
package key

// Token is a canonical key name. Tokens are atomic; a keychord is an ordered
// sequence of tokens.
type Token = string

// TokenESC is the token for a standalone escape keypress, and the safe
// fallback for anything unrecognized.
const TokenESC Token = "ESC"

// TokenDEL is the token for the delete/backspace character.
const TokenDEL Token = "DEL"

// CodeEscape is the raw escape byte that opens a meta sequence.
const CodeEscape = 27

// NamedMin is the first named device code. It sits above the Unicode range
// so every literal character keeps its own code.
const NamedMin = 0x110000

// Named device codes.
const (
	KeyUp = NamedMin + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyNPage
	KeyPPage
	KeyDC
	KeyBackspace
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var namedTokens = map[int]Token{
	KeyUp:    "KEY_UP",
	KeyDown:  "KEY_DOWN",
	KeyLeft:  "KEY_LEFT",
	KeyRight: "KEY_RIGHT",
	KeyHome:  "KEY_HOME",
	KeyEnd:   "KEY_END",
	KeyNPage: "KEY_NPAGE",
	KeyPPage: "KEY_PPAGE",
	KeyDC:    "KEY_DC",
	// The backspace key normalizes to the DEL character token; terminals
	// disagree on which of the two they send.
	KeyBackspace: TokenDEL,
	KeyF1:        "KEY_F1",
	KeyF2:        "KEY_F2",
	KeyF3:        "KEY_F3",
	KeyF4:        "KEY_F4",
	KeyF5:        "KEY_F5",
	KeyF6:        "KEY_F6",
	KeyF7:        "KEY_F7",
	KeyF8:        "KEY_F8",
	KeyF9:        "KEY_F9",
	KeyF10:       "KEY_F10",
	KeyF11:       "KEY_F11",
	KeyF12:       "KEY_F12",
}

// Name returns the token of a named device code. Unknown codes report false.
func Name(code int) (Token, bool) {
	tok, ok := namedTokens[code]
	return tok, ok
}

// Source supplies raw input codes. ReadCode blocks until a code is
// available; PollCode returns immediately, reporting whether a code was
// pending.
type Source interface {
	ReadCode() int
	PollCode() (int, bool)
}

// Queue is an in-memory Source fed by a front end that receives its input
// through another transport. A code pushed together with a preceding escape
// byte is observed by PollCode, which is exactly the meta-key case.
type Queue struct {
	codes []int
}

// NewQueue returns an empty queue source.
func NewQueue() *Queue { return &Queue{} }

// Push appends raw codes to the queue.
func (q *Queue) Push(codes ...int) {
	q.codes = append(q.codes, codes...)
}

// Len returns the number of pending codes.
func (q *Queue) Len() int { return len(q.codes) }

// ReadCode pops the next code. On an empty queue it returns an unrecognized
// code, which classifies to the ESC fallback.
func (q *Queue) ReadCode() int {
	if len(q.codes) == 0 {
		return -1
	}
	c := q.codes[0]
	q.codes = q.codes[1:]
	return c
}

// PollCode pops the next code if one is pending.
func (q *Queue) PollCode() (int, bool) {
	if len(q.codes) == 0 {
		return 0, false
	}
	return q.ReadCode(), true
}
