package keymap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild_SingleBinding(t *testing.T) {
	root, err := Build([]Pair[string]{
		Bind("forward-char", "C-f"),
	})
	require.NoError(t, err)

	node, ok := root.Step("C-f")
	require.True(t, ok)
	require.True(t, node.IsLeaf())
	require.Equal(t, "forward-char", node.Command())
}

func TestBuild_MultiStrokeBinding(t *testing.T) {
	root, err := Build([]Pair[string]{
		Bind("save-buffer", "C-x", "C-s"),
		Bind("kill-session", "C-x", "C-c"),
	})
	require.NoError(t, err)

	mid, ok := root.Step("C-x")
	require.True(t, ok)
	require.False(t, mid.IsLeaf())

	save, ok := mid.Step("C-s")
	require.True(t, ok)
	require.Equal(t, "save-buffer", save.Command())

	kill, ok := mid.Step("C-c")
	require.True(t, ok)
	require.Equal(t, "kill-session", kill.Command())
}

func TestBuild_NoTransition(t *testing.T) {
	root, err := Build([]Pair[string]{
		Bind("forward-char", "C-f"),
	})
	require.NoError(t, err)

	_, ok := root.Step("C-z")
	require.False(t, ok)
}

func TestBuild_StepOffLeafFails(t *testing.T) {
	root, err := Build([]Pair[string]{
		Bind("forward-char", "C-f"),
	})
	require.NoError(t, err)

	leaf, _ := root.Step("C-f")
	_, ok := leaf.Step("x")
	require.False(t, ok)
}

func TestBuild_RejectsEmptySequence(t *testing.T) {
	_, err := Build([]Pair[string]{
		Bind("nothing"),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty key sequence")
}

func TestBuild_RejectsDuplicate(t *testing.T) {
	_, err := Build([]Pair[string]{
		Bind("one", "C-f"),
		Bind("two", "C-f"),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "bound twice")
}

func TestBuild_RejectsShortBindingPrefixingLong(t *testing.T) {
	_, err := Build([]Pair[string]{
		Bind("short", "C-x"),
		Bind("long", "C-x", "C-s"),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), `"C-x" is bound but is a prefix of "C-x C-s"`)
}

func TestBuild_RejectsLongBindingThenShortPrefix(t *testing.T) {
	_, err := Build([]Pair[string]{
		Bind("long", "C-x", "C-s"),
		Bind("short", "C-x"),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), `"C-x" is bound but prefixes longer bindings`)
}

func TestBuild_SharedPrefixIsFine(t *testing.T) {
	root, err := Build([]Pair[string]{
		Bind("a", "C-x", "a"),
		Bind("b", "C-x", "b", "c"),
	})
	require.NoError(t, err)

	mid, ok := root.Step("C-x")
	require.True(t, ok)

	a, ok := mid.Step("a")
	require.True(t, ok)
	require.True(t, a.IsLeaf())

	b, ok := mid.Step("b")
	require.True(t, ok)
	require.False(t, b.IsLeaf())
}
