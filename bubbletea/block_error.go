package bubbletea

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var _ Block = (*ErrorBlock)(nil)

// ErrorBlock renders rejected input or a failure.
type ErrorBlock struct {
	err    error
	styles Styles
}

// NewErrorBlock creates an ErrorBlock.
func NewErrorBlock(err error, styles Styles) *ErrorBlock {
	return &ErrorBlock{err: err, styles: styles}
}

func (b *ErrorBlock) View(width int) string {
	content := b.styles.Error.Render(fmt.Sprintf("Error: %v", b.err))
	return lipgloss.NewStyle().Width(width).Render(content)
}

var _ Block = (*NoticeBlock)(nil)

// NoticeBlock renders a muted line event such as the end of a call.
type NoticeBlock struct {
	text   string
	styles Styles
}

// NewNoticeBlock creates a NoticeBlock.
func NewNoticeBlock(text string, styles Styles) *NoticeBlock {
	return &NoticeBlock{text: text, styles: styles}
}

func (b *NoticeBlock) View(width int) string {
	return lipgloss.NewStyle().Width(width).Render(b.styles.Muted.Render("-- " + b.text + " --"))
}
