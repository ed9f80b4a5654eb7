// Package editor owns the global editing state: the buffer list, the kill
// ring, the echo area, the default keymap, and the dispatcher that turns key
// tokens into command invocations.
//
// Mutation rights are deliberately narrow: commands mutate the active buffer
// and the echo string through the *Editor they receive; only the session
// methods here change which buffer is active.
package editor

import (
	"context"
	"fmt"
	"math/rand/v2"

	"gmacs/internal/buffer"
	"gmacs/internal/key"
	"gmacs/internal/keymap"
	"gmacs/internal/log"
	"gmacs/internal/pubsub"
)

// Command is an editing operation invoked through the dispatcher. Commands
// act by side effect on the editor state.
type Command func(*Editor)

// Prompt is a request for one line of minibuffer input. The front end reads
// it, collects the input, and calls Action with the result.
type Prompt struct {
	Label  string
	Action func(*Editor, string)
}

// Editor is the top level of a gmacs session.
type Editor struct {
	buffers []*buffer.Buffer
	active  int

	keymap   *keymap.Node[Command]
	killRing *KillRing

	// keychord is the dispatcher's accumulated chord, exposed so commands
	// like self-insert can see the stroke that invoked them.
	keychord []key.Token

	echo       string
	endSession bool
	prompt     *Prompt

	// Terminal size, supplied by the renderer.
	width  int
	height int

	messages *pubsub.Broker[string]
}

// New creates a session with the default keymap and a *scratch* buffer.
func New() (*Editor, error) {
	km, err := DefaultKeymap()
	if err != nil {
		return nil, fmt.Errorf("building default keymap: %w", err)
	}
	ed := &Editor{
		keymap:   km,
		killRing: NewKillRing(),
		width:    80,
		height:   24,
		messages: pubsub.NewBroker[string](),
	}
	ed.CreateBuffer("*scratch*", "")
	return ed, nil
}

// Keymap returns the session's global keymap.
func (ed *Editor) Keymap() *keymap.Node[Command] { return ed.keymap }

// KillRing returns the session's kill ring.
func (ed *Editor) KillRing() *KillRing { return ed.killRing }

// Keychord returns the keychord being dispatched.
func (ed *Editor) Keychord() []key.Token { return ed.keychord }

// Echo returns the current echo-area string.
func (ed *Editor) Echo() string { return ed.echo }

// Message sets the echo string and publishes it for any listener.
func (ed *Editor) Message(s string) {
	ed.echo = s
	if s != "" {
		ed.messages.Publish(pubsub.MessageEvent, s)
	}
}

// Messages returns the broker carrying echo-area messages.
func (ed *Editor) Messages() *pubsub.Broker[string] { return ed.messages }

// MessageListener subscribes to echo messages for the Bubble Tea loop.
func (ed *Editor) MessageListener(ctx context.Context) *pubsub.ContinuousListener[string] {
	return pubsub.NewContinuousListener(ctx, ed.messages)
}

// RequestPrompt asks the front end for one line of input.
func (ed *Editor) RequestPrompt(label string, action func(*Editor, string)) {
	ed.prompt = &Prompt{Label: label, Action: action}
}

// TakePrompt returns the pending prompt request, clearing it.
func (ed *Editor) TakePrompt() *Prompt {
	p := ed.prompt
	ed.prompt = nil
	return p
}

// EndSession marks the session for termination.
func (ed *Editor) EndSession() { ed.endSession = true }

// Ended reports whether the session should terminate.
func (ed *Editor) Ended() bool { return ed.endSession }

// Resize records the terminal size supplied by the renderer.
func (ed *Editor) Resize(width, height int) {
	ed.width = width
	ed.height = height
}

// Width returns the terminal width in columns.
func (ed *Editor) Width() int { return ed.width }

// Height returns the terminal height in rows. The viewport gets all of them
// except the modeline and echo rows.
func (ed *Editor) Height() int { return ed.height }

// Buffers returns the buffer list.
func (ed *Editor) Buffers() []*buffer.Buffer { return ed.buffers }

// ActiveIndex returns the index of the active buffer.
func (ed *Editor) ActiveIndex() int { return ed.active }

// ActiveBuffer returns the active buffer. An empty buffer list grows a fresh
// *scratch* buffer, and a stale index snaps to the last buffer.
func (ed *Editor) ActiveBuffer() *buffer.Buffer {
	if len(ed.buffers) == 0 {
		ed.CreateBuffer("*scratch*", "")
	}
	if ed.active >= len(ed.buffers) {
		ed.active = len(ed.buffers) - 1
	}
	return ed.buffers[ed.active]
}

// CreateBuffer creates a buffer and switches to it.
func (ed *Editor) CreateBuffer(name, path string) *buffer.Buffer {
	b := ed.CreateBufferNoSwitch(name, path)
	ed.active = len(ed.buffers) - 1
	return b
}

// CreateBufferNoSwitch creates a buffer without making it active.
func (ed *Editor) CreateBufferNoSwitch(name, path string) *buffer.Buffer {
	b := buffer.New(name, path)
	ed.buffers = append(ed.buffers, b)
	log.Debug(log.CatBuffer, "created buffer", "id", b.ID(), "name", name, "path", path)
	return b
}

// SwitchBuffer makes the buffer at index active. Out-of-range indexes are
// ignored.
func (ed *Editor) SwitchBuffer(index int) {
	if index >= 0 && index < len(ed.buffers) {
		ed.active = index
	}
}

// KillBuffer removes the buffer at index. Out-of-range indexes are ignored.
func (ed *Editor) KillBuffer(index int) {
	if index < 0 || index >= len(ed.buffers) {
		return
	}
	log.Debug(log.CatBuffer, "killed buffer",
		"id", ed.buffers[index].ID(), "name", ed.buffers[index].Name())
	ed.buffers = append(ed.buffers[:index], ed.buffers[index+1:]...)
	if ed.active >= len(ed.buffers) && ed.active > 0 {
		ed.active = len(ed.buffers) - 1
	}
}

// FindBuffer returns the first buffer whose name matches, or nil.
func (ed *Editor) FindBuffer(name string) *buffer.Buffer {
	for _, b := range ed.buffers {
		if b.Name() == name {
			return b
		}
	}
	return nil
}

// EnsureVisible scrolls the active buffer, not point, so that point's line
// lies inside the viewport. This is the edit-follows-view direction run
// after every command; the scroll commands implement the converse.
func (ed *Editor) EnsureVisible() {
	buff := ed.ActiveBuffer()

	viewMin := buff.DisplayLine()
	viewMax := viewMin + ed.height - 2
	line := buff.Line()

	if line < viewMin {
		buff.ScrollBuffer(line - viewMin)
	}
	if line >= viewMax {
		buff.ScrollBuffer(line - viewMax + 1)
	}
}

// randomBufferName generates a name for an anonymous buffer.
func randomBufferName() string {
	return fmt.Sprintf("*%d*", 100000+rand.IntN(900000))
}
