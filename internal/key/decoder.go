package key

import "gmacs/internal/log"

// Decoder resolves raw input codes into tokens, including the escape/meta
// ambiguity: an escape byte immediately followed by a pending code is a meta
// combination, an escape byte with nothing behind it is a standalone ESC.
//
// Known limitation, inherited from terminal input encoding: a genuine ESC
// keypress chased quickly by another keystroke is indistinguishable from a
// terminal-encoded Alt+key and decodes as the meta combination.
type Decoder struct {
	src Source
}

// NewDecoder creates a decoder reading from src.
func NewDecoder(src Source) *Decoder {
	return &Decoder{src: src}
}

// ReadKey blocks for one keystroke and returns its token.
func (d *Decoder) ReadKey() Token {
	c := d.src.ReadCode()
	if c == CodeEscape {
		c2, ok := d.src.PollCode()
		if !ok {
			log.Debug(log.CatInput, "decoded key", "code", c, "token", TokenESC)
			return TokenESC
		}
		tok := "M-" + Classify(c2)
		log.Debug(log.CatInput, "decoded key", "codes", [2]int{c, c2}, "token", tok)
		return tok
	}
	tok := Classify(c)
	log.Debug(log.CatInput, "decoded key", "code", c, "token", tok)
	return tok
}

// Classify maps one raw code to its token. Escape here means either the
// second code of a meta sequence (M-ESC) or an unrecognized code resolving
// to the safe fallback.
func Classify(c int) Token {
	switch {
	case c == 0:
		// Control-space reports as a NUL byte.
		return "C- "
	case c >= 1 && c <= 26:
		return "C-" + string(rune('a'+c-1))
	case c == CodeEscape:
		return TokenESC
	case c >= 28 && c <= 31:
		// FS, GS, RS, US: control plus the caret-notation character.
		return "C-" + string(rune(c+64))
	case c >= 32 && c <= 126:
		return string(rune(c))
	case c == 127:
		return TokenDEL
	case c >= 128 && c < NamedMin:
		// Extended and multibyte characters are literal tokens.
		return string(rune(c))
	default:
		if tok, ok := Name(c); ok {
			return tok
		}
		return TokenESC
	}
}
