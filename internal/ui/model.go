// Package ui renders the editor in the terminal and feeds terminal input
// through the key decoder into the dispatcher.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gmacs/internal/config"
	"gmacs/internal/editor"
	"gmacs/internal/key"
	"gmacs/internal/log"
	"gmacs/internal/pubsub"
	"gmacs/internal/watcher"
)

// Model is the Bubble Tea model wrapping an editor session. Input flows one
// way: key messages become raw codes, the decoder turns codes into tokens,
// and the dispatcher resolves tokens against the keymap.
type Model struct {
	ctx   context.Context
	ed    *editor.Editor
	disp  *editor.Dispatcher
	dec   *key.Decoder
	queue *key.Queue

	theme  config.ThemeConfig
	styles styles

	prompt *editor.Prompt
	input  textinput.Model

	messages *pubsub.ContinuousListener[string]
	changes  *pubsub.ContinuousListener[watcher.Event]
}

// New creates the model for an editor session. The watcher may be nil when
// auto-revert notification is disabled.
func New(ctx context.Context, ed *editor.Editor, cfg config.Config, w *watcher.Watcher) Model {
	input := textinput.New()
	input.CharLimit = 512

	m := Model{
		ctx:      ctx,
		ed:       ed,
		disp:     editor.NewDispatcher(ed),
		queue:    key.NewQueue(),
		theme:    cfg.Theme,
		styles:   newStyles(cfg.Theme),
		input:    input,
		messages: ed.MessageListener(ctx),
	}
	m.dec = key.NewDecoder(m.queue)
	if w != nil {
		m.changes = pubsub.NewContinuousListener(ctx, w.Broker())
	}
	return m
}

// Init starts the background listeners.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.messages.Listen()}
	if m.changes != nil {
		cmds = append(cmds, m.changes.Listen())
	}
	return tea.Batch(cmds...)
}

// Update handles terminal events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		log.Debug(log.CatUI, "terminal resized", "width", msg.Width, "height", msg.Height)
		m.ed.Resize(msg.Width, msg.Height)
		return m, nil

	case pubsub.Event[string]:
		// Echo messages are read straight off the editor at render time;
		// the event only forces a repaint.
		return m, m.messages.Listen()

	case pubsub.Event[watcher.Event]:
		m.handleFileChange(msg.Payload.Path)
		return m, m.changes.Listen()

	case tea.KeyMsg:
		if m.prompt != nil {
			return m.updatePrompt(msg)
		}
		return m.updateEditing(msg)
	}

	return m, nil
}

// updateEditing feeds a key message through the decode and dispatch pipeline.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, code := range Translate(msg) {
		m.queue.Push(code)
	}
	for m.queue.Len() > 0 {
		m.disp.HandleToken(m.ed, m.dec.ReadKey())
	}

	if p := m.ed.TakePrompt(); p != nil {
		m.prompt = p
		m.input.SetValue("")
		m.input.Prompt = p.Label
		m.input.Focus()
	}
	if m.ed.Ended() {
		return m, tea.Quit
	}
	return m, nil
}

// updatePrompt routes keys to the minibuffer while a prompt is active.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		prompt := m.prompt
		value := m.input.Value()
		m.prompt = nil
		m.input.Blur()
		prompt.Action(m.ed, value)
		m.ed.EnsureVisible()
		if m.ed.Ended() {
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyEsc, tea.KeyCtrlG:
		m.prompt = nil
		m.input.Blur()
		m.ed.Message("Quit")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleFileChange flags buffers whose backing file changed on disk.
func (m Model) handleFileChange(path string) {
	for _, buff := range m.ed.Buffers() {
		if buff.Path() == path {
			log.Info(log.CatWatcher, "file changed on disk", "path", path)
			m.ed.Message(buff.Name() + " changed on disk")
			return
		}
	}
}
