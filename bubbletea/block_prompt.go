package bubbletea

import "github.com/charmbracelet/lipgloss"

var _ Block = (*PromptBlock)(nil)

// PromptBlock renders text spoken by the system.
type PromptBlock struct {
	text   string
	styles Styles
}

// NewPromptBlock creates a PromptBlock.
func NewPromptBlock(text string, styles Styles) *PromptBlock {
	return &PromptBlock{text: text, styles: styles}
}

func (b *PromptBlock) View(width int) string {
	return b.styles.Prompt.Width(width).Render(b.text)
}

var _ Block = (*CallerBlock)(nil)

// CallerBlock renders a line entered by the caller with a "> " prefix.
type CallerBlock struct {
	text   string
	styles Styles
}

// NewCallerBlock creates a CallerBlock.
func NewCallerBlock(text string, styles Styles) *CallerBlock {
	return &CallerBlock{text: text, styles: styles}
}

func (b *CallerBlock) View(width int) string {
	content := b.styles.Caller.Render("> ") + b.text
	return lipgloss.NewStyle().Width(width).Render(content)
}
