package bubbletea

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/voicemail"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

var _ tea.Model = Model{}

const statusHint = "Enter to send, ? for help, H to hang up, Q or Ctrl+C to quit"

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for rejected input.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// Model is the Bubble Tea model for the phone simulator.
type Model struct {
	// Input is the line being typed. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable transcript. Exported for test access.
	Viewport viewport.Model

	session    *voicemail.Session
	transcript *Transcript
	theme      voicemail.Theme
	styles     Styles
	logger     *slog.Logger

	blocks []Block
	ready  bool
}

// New creates a Model driving session. transcript must be the Device the
// session was created with; prompts already queued on it, such as the
// welcome prompt, are shown first.
func New(session *voicemail.Session, transcript *Transcript, theme voicemail.Theme, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Key, voice, H or Q"
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	m := Model{
		Input:      ti,
		session:    session,
		transcript: transcript,
		theme:      theme,
		styles:     NewStyles(theme),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m.drainPrompts()
}

// Session returns the session driven by the model.
func (m Model) Session() *voicemail.Session { return m.session }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine(m.Viewport.Width))
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputH := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := msg.Height - inputH - statusHeight - borderHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submitInput(text)
	}

	// Only forward non-character keys to the viewport so typed digits never
	// scroll it.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.blocks = append(m.blocks, NewCallerBlock(text, m.styles))
	if text == "?" {
		m.blocks = append(m.blocks, NewHelpBlock(m.theme))
		return m.refresh(), nil
	}

	evt, err := voicemail.Translate(m.session.State(), text)
	switch {
	case errors.Is(err, voicemail.ErrQuit):
		return m, tea.Quit
	case errors.Is(err, voicemail.ErrInvalidSelection):
		m.logger.Debug("rejected choice", "error", err)
		m.transcript.Prompt(voicemail.PromptWelcome)
	case errors.Is(err, voicemail.ErrInvalidMailboxNumber):
		m.logger.Debug("rejected mailbox number", "error", err)
		m.transcript.Prompt(voicemail.PromptInvalidMailbox)
	case err != nil:
		m.blocks = append(m.blocks, NewErrorBlock(err, m.styles))
	default:
		if _, ok := evt.(voicemail.EventHangup); ok {
			m.blocks = append(m.blocks, NewNoticeBlock("call ended", m.styles))
		}
		m.session.Handle(evt)
	}

	return m.drainPrompts().refresh(), nil
}

func (m Model) refresh() Model {
	if m.ready {
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
	}
	return m
}

func (m Model) drainPrompts() Model {
	for _, text := range m.transcript.Drain() {
		m.blocks = append(m.blocks, NewPromptBlock(text, m.styles))
	}
	return m
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

// statusLine shows the key hint on the left and the call position on the
// right. The hint is truncated first when the terminal is narrow.
func (m Model) statusLine(width int) string {
	state := m.session.State().String()
	box := "no mailbox"
	if mb := m.session.Mailbox(); mb != nil {
		box = "mailbox " + mb.ID()
	}
	badgeWidth := uniseg.StringWidth(state) + 2 + uniseg.StringWidth(box)

	hint := runewidth.Truncate(statusHint, max(width-badgeWidth-1, 0), "…")
	gap := max(width-uniseg.StringWidth(hint)-badgeWidth, 1)

	return m.styles.Muted.Render(hint) +
		strings.Repeat(" ", gap) +
		m.styles.State.Render(state) + "  " +
		m.styles.Accent.Render(box)
}
