package search

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	markedStyle = lipgloss.NewStyle().Reverse(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
)

func (m Model) View() string {
	var b strings.Builder

	if len(m.targets) > 0 {
		b.WriteString(promptStyle.Render(m.mode.Prompt()))
		b.WriteString(m.renderInput())
	}

	if m.errMsg != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return b.String()
}

// renderInput draws the buffer with a block cursor. A freshly restored term
// is shown fully reversed instead, signalling that typing replaces it.
func (m Model) renderInput() string {
	if m.textMarked {
		return markedStyle.Render(m.input.String())
	}

	before, after := m.input.SplitAtCursor()
	if after == "" {
		return before + cursorStyle.Render(" ")
	}
	rest := []rune(after)
	return before + cursorStyle.Render(string(rest[0])) + string(rest[1:])
}
