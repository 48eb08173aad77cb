package bubbletea

import (
	_ "embed"

	"github.com/fwojciec/voicemail"
	"github.com/fwojciec/voicemail/goldmark"
)

//go:embed help.md
var helpCard string

var _ Block = (*HelpBlock)(nil)

// HelpBlock renders the keypad help card.
type HelpBlock struct {
	theme voicemail.Theme
}

// NewHelpBlock creates a HelpBlock.
func NewHelpBlock(theme voicemail.Theme) *HelpBlock {
	return &HelpBlock{theme: theme}
}

func (b *HelpBlock) View(width int) string {
	return goldmark.Render(helpCard, width, b.theme)
}
