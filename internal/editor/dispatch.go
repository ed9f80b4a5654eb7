package editor

import (
	"strings"

	"gmacs/internal/key"
	"gmacs/internal/keymap"
	"gmacs/internal/log"
)

// Outcome is the terminal state of one dispatch step.
type Outcome int

const (
	// OutcomePending means the token extended the keychord; more strokes
	// are needed to reach a binding.
	OutcomePending Outcome = iota
	// OutcomeResolved means a bound command was invoked.
	OutcomeResolved
	// OutcomeUndefined means no binding matched and the fallback ran.
	OutcomeUndefined
)

// Dispatcher accumulates key tokens into a keychord and walks the keymap
// trie. It exclusively owns the pending keychord and the trie cursor.
type Dispatcher struct {
	root    *keymap.Node[Command]
	node    *keymap.Node[Command]
	pending []key.Token
}

// NewDispatcher creates a dispatcher at the root of the editor's keymap.
func NewDispatcher(ed *Editor) *Dispatcher {
	root := ed.Keymap()
	return &Dispatcher{root: root, node: root}
}

// Pending returns the tokens accumulated so far.
func (d *Dispatcher) Pending() []key.Token {
	return append([]key.Token(nil), d.pending...)
}

// HandleToken consumes one token. It either invokes a bound command, reports
// the chord undefined, or keeps accumulating. After any command invocation
// the viewport is re-clamped around point.
func (d *Dispatcher) HandleToken(ed *Editor, tok key.Token) Outcome {
	d.pending = append(d.pending, tok)
	ed.keychord = append([]key.Token(nil), d.pending...)

	next, ok := d.node.Step(tok)
	if !ok {
		log.Debug(log.CatDispatch, "undefined keychord", "chord", strings.Join(d.pending, " "))
		d.reset()
		d.run(ed, Undefined)
		return OutcomeUndefined
	}

	if next.IsLeaf() {
		log.Debug(log.CatDispatch, "dispatching", "chord", strings.Join(d.pending, " "))
		d.reset()
		ed.Message("")
		d.run(ed, next.Command())
		return OutcomeResolved
	}

	d.node = next
	ed.Message(strings.Join(d.pending, " "))
	return OutcomePending
}

// run invokes a command and restores the viewport invariant.
func (d *Dispatcher) run(ed *Editor, cmd Command) {
	cmd(ed)
	ed.EnsureVisible()
}

// reset empties the pending keychord and returns the cursor to the root.
func (d *Dispatcher) reset() {
	d.pending = nil
	d.node = d.root
}
