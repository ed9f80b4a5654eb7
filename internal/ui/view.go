package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"gmacs/internal/buffer"
	"gmacs/internal/config"
)

type styles struct {
	modeline lipgloss.Style
	echo     lipgloss.Style
	cursor   lipgloss.Style
}

func newStyles(theme config.ThemeConfig) styles {
	return styles{
		modeline: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ModelineFg)).
			Background(lipgloss.Color(theme.ModelineBg)).
			Bold(true),
		echo:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.EchoFg)),
		cursor: lipgloss.NewStyle().Reverse(true),
	}
}

// View renders the active buffer's viewport, the modeline, and the echo area.
// The viewport shows the lines from the buffer's display line down to the
// line above the modeline.
func (m Model) View() string {
	width, height := m.ed.Width(), m.ed.Height()
	body := height - 2
	if body < 1 {
		body = 1
	}

	buff := m.ed.ActiveBuffer()
	visible := buff.VisibleLines(body)
	cursorRow := buff.Line() - buff.DisplayLine()
	pointCol := buff.Column()

	var b strings.Builder
	for row := 0; row < body; row++ {
		if row < len(visible) {
			if row == cursorRow {
				b.WriteString(m.renderCursorLine(visible[row], pointCol, width))
			} else {
				b.WriteString(truncate.String(visible[row], uint(width))) //nolint:gosec // G115: width is a terminal dimension
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(m.renderModeline(buff, width))
	b.WriteByte('\n')
	b.WriteString(m.renderEcho(width))
	return b.String()
}

// renderCursorLine draws point's line with the character at point reversed.
// Point at end of line renders as a reversed space.
func (m Model) renderCursorLine(line string, col, width int) string {
	runes := []rune(line)
	if col > len(runes) {
		col = len(runes)
	}

	var b strings.Builder
	b.WriteString(string(runes[:col]))
	if col < len(runes) {
		b.WriteString(m.styles.cursor.Render(string(runes[col])))
		b.WriteString(string(runes[col+1:]))
	} else {
		b.WriteString(m.styles.cursor.Render(" "))
	}
	return truncate.String(b.String(), uint(width)) //nolint:gosec // G115: width is a terminal dimension
}

// renderModeline draws the status line: modified flag, buffer name, mode
// lighter on the left, point's line and column on the right.
func (m Model) renderModeline(buff *buffer.Buffer, width int) string {
	flag := "--"
	if buff.Modified() {
		flag = "**"
	}
	left := fmt.Sprintf(" %s %s  (%s)", flag, buff.Name(), buff.Mode().Lighter)
	right := fmt.Sprintf("L%d C%d ", buff.Line()+1, buff.Column())

	pad := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if pad < 1 {
		pad = 1
	}
	line := left + strings.Repeat(" ", pad) + right
	return m.styles.modeline.Render(truncate.String(line, uint(width))) //nolint:gosec // G115: width is a terminal dimension
}

// renderEcho draws the bottom line: the minibuffer while a prompt is active,
// otherwise the echo message.
func (m Model) renderEcho(width int) string {
	if m.prompt != nil {
		return truncate.String(m.input.View(), uint(width)) //nolint:gosec // G115: width is a terminal dimension
	}
	return m.styles.echo.Render(truncate.String(m.ed.Echo(), uint(width))) //nolint:gosec // G115: width is a terminal dimension
}
