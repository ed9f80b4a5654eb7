// Package mode defines major modes. A major mode contributes the two
// patterns word movement and word-at-point lookup are built on: a
// word-boundary pattern matching whole words, and a word-delimiter pattern
// matching the text between words.
package mode

import (
	"fmt"
	"regexp"
)

// Mode is a major mode attached to a buffer.
type Mode struct {
	// Name identifies the mode, e.g. "fundamental".
	Name string
	// Lighter is the short form shown in the modeline, e.g. "Fund".
	Lighter string

	words      *regexp.Regexp
	delimiters *regexp.Regexp
}

// New compiles a mode from its word and word-delimiter patterns.
func New(name, lighter, wordPattern, delimiterPattern string) (*Mode, error) {
	words, err := regexp.Compile(wordPattern)
	if err != nil {
		return nil, fmt.Errorf("compiling word pattern for mode %s: %w", name, err)
	}
	delims, err := regexp.Compile(delimiterPattern)
	if err != nil {
		return nil, fmt.Errorf("compiling delimiter pattern for mode %s: %w", name, err)
	}
	return &Mode{Name: name, Lighter: lighter, words: words, delimiters: delims}, nil
}

// Words returns the pattern matching whole words.
func (m *Mode) Words() *regexp.Regexp { return m.words }

// WordDelimiters returns the pattern matching runs of word-delimiting text.
func (m *Mode) WordDelimiters() *regexp.Regexp { return m.delimiters }

// Fundamental returns the default major mode: words are runs of word
// characters, delimiters are runs of everything else.
func Fundamental() *Mode {
	m, err := New("fundamental", "Fund", `\w+`, `\W+`)
	if err != nil {
		// The patterns above are constants.
		panic(err)
	}
	return m
}
