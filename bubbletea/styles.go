package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/voicemail"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Prompt lipgloss.Style
	Caller lipgloss.Style
	Error  lipgloss.Style
	State  lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t voicemail.Theme) Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().Foreground(ansiColor(t.Prompt)),
		Caller: lipgloss.NewStyle().Foreground(ansiColor(t.Caller)).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		State:  lipgloss.NewStyle().Foreground(ansiColor(t.State)).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent: lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
