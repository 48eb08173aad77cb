package bubbletea_test

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/voicemail"
	bt "github.com/fwojciec/voicemail/bubbletea"
	"github.com/stretchr/testify/require"
)

// newModel creates a model over a single mailbox "101" with passcode "1234".
func newModel(t *testing.T, opts ...voicemail.Option) (bt.Model, *voicemail.Mailbox) {
	t.Helper()
	box := voicemail.NewMailbox("101", "1234", "Hi, this is 101")
	tr := bt.NewTranscript()
	s := voicemail.NewSession(tr, voicemail.NewMemoryDirectory(box), opts...)
	return bt.New(s, tr, voicemail.DefaultTheme()), box
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, opts ...voicemail.Option) (bt.Model, *voicemail.Mailbox) {
	t.Helper()
	m, box := newModel(t, opts...)
	return updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}), box
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// submit types text into the input and presses Enter.
func submit(t *testing.T, m bt.Model, text string) (bt.Model, tea.Cmd) {
	t.Helper()
	m.Input.SetValue(text)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model, cmd
}

// submitAll submits each line in turn.
func submitAll(t *testing.T, m bt.Model, lines ...string) bt.Model {
	t.Helper()
	for _, line := range lines {
		m, _ = submit(t, m, line)
	}
	return m
}

// loggedModel creates an initialized model that logs to w as JSON at debug
// level.
func loggedModel(t *testing.T, w io.Writer) bt.Model {
	t.Helper()
	box := voicemail.NewMailbox("101", "1234", "Hi, this is 101")
	tr := bt.NewTranscript()
	s := voicemail.NewSession(tr, voicemail.NewMemoryDirectory(box))
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := bt.New(s, tr, voicemail.DefaultTheme(), bt.WithLogger(logger))
	return updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}
