package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gmacs/internal/key"
)

// feed pushes a sequence of tokens through a dispatcher.
func feed(ed *Editor, d *Dispatcher, toks ...key.Token) Outcome {
	var out Outcome
	for _, tok := range toks {
		out = d.HandleToken(ed, tok)
	}
	return out
}

func TestDispatch_SelfInsert(t *testing.T) {
	ed := newTestEditor(t, "", 0)
	d := NewDispatcher(ed)

	out := feed(ed, d, "h", "i", "!")

	require.Equal(t, OutcomeResolved, out)
	require.Equal(t, "hi!", ed.ActiveBuffer().Text())
	require.Equal(t, 3, ed.ActiveBuffer().Point())
}

func TestDispatch_PrefixAccumulates(t *testing.T) {
	ed := newTestEditor(t, "", 0)
	d := NewDispatcher(ed)

	out := d.HandleToken(ed, "C-x")

	require.Equal(t, OutcomePending, out)
	require.Equal(t, []key.Token{"C-x"}, d.Pending())
	require.Equal(t, "C-x", ed.Echo())
}

func TestDispatch_TwoStrokeChordResolves(t *testing.T) {
	ed := newTestEditor(t, "", 0)
	d := NewDispatcher(ed)

	out := feed(ed, d, "C-x", "C-f")

	require.Equal(t, OutcomeResolved, out)
	require.Empty(t, d.Pending())

	// create-buffer defers to the minibuffer for the name.
	p := ed.TakePrompt()
	require.NotNil(t, p)
	p.Action(ed, "notes")
	require.Len(t, ed.Buffers(), 2)
	require.Equal(t, "notes", ed.ActiveBuffer().Name())
}

func TestDispatch_UndefinedChordReportsAndResets(t *testing.T) {
	ed := newTestEditor(t, "", 0)
	d := NewDispatcher(ed)

	out := feed(ed, d, "C-x", "C-z")

	require.Equal(t, OutcomeUndefined, out)
	require.Equal(t, "C-x C-z is undefined", ed.Echo())
	require.Empty(t, d.Pending())

	// The dispatcher is back at the root and keeps working.
	feed(ed, d, "a")
	require.Equal(t, "a", ed.ActiveBuffer().Text())
}

func TestDispatch_ResolvedChordClearsPendingEcho(t *testing.T) {
	ed := newTestEditor(t, "", 0)
	d := NewDispatcher(ed)

	d.HandleToken(ed, "C-x")
	require.Equal(t, "C-x", ed.Echo())

	d.HandleToken(ed, "b")

	// next-buffer says nothing, so the pending echo is simply cleared.
	require.Equal(t, "", ed.Echo())
}

func TestDispatch_MovementKeepsPointVisible(t *testing.T) {
	ed := newTestEditor(t, "", 0)
	d := NewDispatcher(ed)

	// 30 newlines push point well below the initial viewport.
	for i := 0; i < 30; i++ {
		feed(ed, d, "C-j")
	}

	buff := ed.ActiveBuffer()
	require.Equal(t, 30, buff.Line())
	require.Equal(t, 30-(ed.Height()-2)+1, buff.DisplayLine())
}

func TestDispatch_KeychordVisibleToCommands(t *testing.T) {
	ed := newTestEditor(t, "", 0)
	d := NewDispatcher(ed)

	d.HandleToken(ed, "q")

	require.Equal(t, []key.Token{"q"}, ed.Keychord())
}

func TestDispatch_SameInputSameResult(t *testing.T) {
	run := func(t *testing.T) string {
		ed := newTestEditor(t, "", 0)
		d := NewDispatcher(ed)
		feed(ed, d, "a", "b", "C-a", "x", "C-e", "!", "C-x", "C-z", "y")
		return ed.ActiveBuffer().Text()
	}

	require.Equal(t, run(t), run(t))
	require.Equal(t, "xab!y", run(t))
}

func TestDefaultKeymapBuilds(t *testing.T) {
	km, err := DefaultKeymap()
	require.NoError(t, err)
	require.NotNil(t, km)

	// Spot-check a few bindings exist.
	for _, seq := range [][]key.Token{
		{"C-f"}, {"DEL"}, {"C- "}, {"M-w"}, {"C-x", "C-s"}, {"C-x", "C-c"},
	} {
		node := km
		for _, tok := range seq {
			next, ok := node.Step(tok)
			require.True(t, ok, "missing binding %v", seq)
			node = next
		}
		require.True(t, node.IsLeaf(), "binding %v is not a leaf", seq)
	}
}
