package goldmark

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/voicemail"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type cardRenderer struct {
	heading lipgloss.Style
	key     lipgloss.Style
	strong  lipgloss.Style
	emph    lipgloss.Style
	rule    lipgloss.Style
}

func newRenderer(theme voicemail.Theme) *cardRenderer {
	return &cardRenderer{
		heading: lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		key:     lipgloss.NewStyle().Foreground(ansiColor(theme.Caller)).Bold(true),
		strong:  lipgloss.NewStyle().Bold(true),
		emph:    lipgloss.NewStyle().Italic(true),
		rule:    lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *cardRenderer) render(source []byte, width int) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var sections []string
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		if s := r.block(c, source, width); s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n\n")
}

func (r *cardRenderer) block(node ast.Node, source []byte, width int) string {
	switch n := node.(type) {
	case *ast.Heading:
		return lipgloss.NewStyle().Width(width).Render(r.heading.Render(r.inline(n, source)))
	case *ast.Paragraph, *ast.TextBlock:
		return lipgloss.NewStyle().Width(width).Render(r.inline(n, source))
	case *ast.List:
		return r.list(n, source, width)
	case *ast.ThematicBreak:
		return r.rule.Render(strings.Repeat("─", width))
	default:
		var parts []string
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			if s := r.block(c, source, width); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	}
}

// list renders one level of items. Nested lists are indented two columns.
func (r *cardRenderer) list(node *ast.List, source []byte, width int) string {
	var lines []string
	num := node.Start
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		marker := "• "
		if node.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		var body []string
		for ic := c.FirstChild(); ic != nil; ic = ic.NextSibling() {
			if sub, ok := ic.(*ast.List); ok {
				nested := r.list(sub, source, max(width-2, 10))
				for _, l := range strings.Split(nested, "\n") {
					body = append(body, "  "+l)
				}
				continue
			}
			body = append(body, r.item(marker, r.inline(ic, source), width)...)
			marker = strings.Repeat(" ", lipgloss.Width(marker))
		}
		lines = append(lines, body...)
	}
	return strings.Join(lines, "\n")
}

// item wraps content beside marker with a hanging indent.
func (r *cardRenderer) item(marker, content string, width int) []string {
	indent := lipgloss.Width(marker)
	wrapped := lipgloss.NewStyle().Width(max(width-indent, 10)).Render(content)
	lines := strings.Split(wrapped, "\n")
	pad := strings.Repeat(" ", indent)
	for i := range lines {
		if i == 0 {
			lines[i] = marker + lines[i]
		} else {
			lines[i] = pad + lines[i]
		}
	}
	return lines
}

func (r *cardRenderer) inline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.writeInline(c, source, &buf)
	}
	return buf.String()
}

func (r *cardRenderer) writeInline(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		switch {
		case n.HardLineBreak():
			buf.WriteByte('\n')
		case n.SoftLineBreak():
			buf.WriteByte(' ')
		}
	case *ast.String:
		buf.Write(n.Value)
	case *ast.CodeSpan:
		buf.WriteString(r.key.Render(r.inline(n, source)))
	case *ast.Emphasis:
		if n.Level == 1 {
			buf.WriteString(r.emph.Render(r.inline(n, source)))
		} else {
			buf.WriteString(r.strong.Render(r.inline(n, source)))
		}
	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.writeInline(c, source, buf)
		}
	}
}
