package editor

import (
	"gmacs/internal/keymap"
)

// DefaultBindings returns the global binding table. The table is data: every
// printable character self-inserts, and the control and navigation bindings
// mirror the classic Emacs layout.
func DefaultBindings() []keymap.Pair[Command] {
	var pairs []keymap.Pair[Command]

	// Printable ASCII self-inserts, space included.
	for c := 32; c <= 126; c++ {
		pairs = append(pairs, keymap.Bind(Command(SelfInsert), string(rune(c))))
	}
	// Extended characters self-insert too.
	for c := 128; c <= 255; c++ {
		pairs = append(pairs, keymap.Bind(Command(SelfInsert), string(rune(c))))
	}

	pairs = append(pairs,
		keymap.Bind(Command(Newline), "C-j"), // Enter
		keymap.Bind(Command(BackwardDeleteChar), "DEL"),
		keymap.Bind(Command(DeleteChar), "KEY_DC"),
		keymap.Bind(Command(DeleteChar), "C-d"),

		keymap.Bind(withCount(ForwardChar, 1), "C-f"),
		keymap.Bind(withCount(ForwardChar, 1), "KEY_RIGHT"),
		keymap.Bind(withCount(ForwardWord, 1), "M-f"),
		keymap.Bind(withCount(BackwardChar, 1), "C-b"),
		keymap.Bind(withCount(BackwardChar, 1), "KEY_LEFT"),
		keymap.Bind(withCount(BackwardWord, 1), "M-b"),

		keymap.Bind(withCount(NextLine, 1), "C-n"),
		keymap.Bind(withCount(NextLine, 1), "KEY_DOWN"),
		keymap.Bind(withCount(PreviousLine, 1), "C-p"),
		keymap.Bind(withCount(PreviousLine, 1), "KEY_UP"),

		keymap.Bind(Command(MoveBeginningOfLine), "C-a"),
		keymap.Bind(Command(MoveBeginningOfLine), "KEY_HOME"),
		keymap.Bind(Command(MoveEndOfLine), "C-e"),
		keymap.Bind(Command(MoveEndOfLine), "KEY_END"),

		keymap.Bind(withCount(ScrollUp, 1), "C-v"),
		keymap.Bind(withCount(ScrollUp, 1), "KEY_NPAGE"),
		keymap.Bind(withCount(ScrollDown, 1), "M-v"),
		keymap.Bind(withCount(ScrollDown, 1), "KEY_PPAGE"),

		// Mark and the kill ring.
		keymap.Bind(Command(SetMark), "C- "), // C-SPACE
		keymap.Bind(Command(KillRegion), "C-w"),
		keymap.Bind(Command(KillRingSave), "M-w"),
		keymap.Bind(Command(Yank), "C-y"),
		keymap.Bind(Command(YankPop), "M-y"),
		keymap.Bind(Command(KillLine), "C-k"),

		// Extended commands.
		keymap.Bind(Command(CreateBuffer), "C-x", "C-f"),
		keymap.Bind(Command(NextBuffer), "C-x", "b"),
		keymap.Bind(Command(PreviousBuffer), "C-x", "C-b"),
		keymap.Bind(Command(SaveBuffer), "C-x", "C-s"),
		keymap.Bind(Command(WriteFile), "C-x", "C-w"),
		keymap.Bind(Command(KillActiveBuffer), "C-x", "k"),
		keymap.Bind(Command(KillSession), "C-x", "C-c"),
	)

	return pairs
}

// DefaultKeymap builds the trie for the default binding table.
func DefaultKeymap() (*keymap.Node[Command], error) {
	return keymap.Build(DefaultBindings())
}
