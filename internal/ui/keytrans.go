package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gmacs/internal/key"
)

// Translate converts a terminal key message into the raw codes the decoder
// consumes. A held Alt produces an escape code immediately followed by the
// character code, which is exactly the byte pair a terminal emits for a meta
// chord. A bare Escape produces a lone escape code.
func Translate(msg tea.KeyMsg) []int {
	var codes []int
	push := func(c int) {
		if msg.Alt {
			codes = append(codes, key.CodeEscape)
		}
		codes = append(codes, c)
	}

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if len(msg.Runes) == 0 {
			push(' ')
			break
		}
		for _, r := range msg.Runes {
			push(int(r))
		}
	case tea.KeyEnter:
		push('\n')
	case tea.KeyEsc:
		push(key.CodeEscape)
	case tea.KeyBackspace:
		push(key.KeyBackspace)
	case tea.KeyDelete:
		push(key.KeyDC)
	case tea.KeyUp:
		push(key.KeyUp)
	case tea.KeyDown:
		push(key.KeyDown)
	case tea.KeyLeft:
		push(key.KeyLeft)
	case tea.KeyRight:
		push(key.KeyRight)
	case tea.KeyHome:
		push(key.KeyHome)
	case tea.KeyEnd:
		push(key.KeyEnd)
	case tea.KeyPgUp:
		push(key.KeyPPage)
	case tea.KeyPgDown:
		push(key.KeyNPage)
	case tea.KeyF1, tea.KeyF2, tea.KeyF3, tea.KeyF4, tea.KeyF5, tea.KeyF6,
		tea.KeyF7, tea.KeyF8, tea.KeyF9, tea.KeyF10, tea.KeyF11, tea.KeyF12:
		push(key.KeyF1 + int(msg.Type-tea.KeyF1))
	default:
		// Control chords arrive with their ASCII control code as the type.
		if t := int(msg.Type); t >= 0 && t < 32 {
			push(t)
		}
	}

	return codes
}
