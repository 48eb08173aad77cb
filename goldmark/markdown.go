// Package goldmark renders the markdown help cards of the phone simulator to
// styled terminal text, using goldmark for parsing and lipgloss for styling.
package goldmark

import "github.com/fwojciec/voicemail"

// Render parses markdown source and returns styled terminal output wrapped
// to width. Inline code is styled as a key the caller can press.
func Render(source string, width int, theme voicemail.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	return newRenderer(theme).render([]byte(source), width)
}
