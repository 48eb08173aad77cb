package bubbletea_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/fwojciec/voicemail"
	bt "github.com/fwojciec/voicemail/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)

	assert.Equal(t, "Initializing...", m.View())
	assert.Equal(t, voicemail.StateIdle, m.Session().State())
	assert.Contains(t, bt.RenderContent(m), voicemail.PromptWelcome)
}

func TestModel_Update(t *testing.T) {
	t.Parallel()

	t.Run("window size initializes viewport", func(t *testing.T) {
		t.Parallel()

		m, _ := initModel(t)

		assert.Equal(t, 80, m.Viewport.Width)
		assert.Equal(t, 20, m.Viewport.Height) // 24 - 1 - 1 - 2 = 20
		assert.Contains(t, m.View(), "To leave a message")
	})

	t.Run("window size resize updates viewport dimensions", func(t *testing.T) {
		t.Parallel()

		m, _ := initModel(t)
		m = updateModel(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

		assert.Equal(t, 120, m.Viewport.Width)
		assert.Equal(t, 36, m.Viewport.Height)
	})

	t.Run("tiny window keeps one viewport row", func(t *testing.T) {
		t.Parallel()

		m, _ := newModel(t)
		m = updateModel(t, m, tea.WindowSizeMsg{Width: 20, Height: 2})

		assert.Equal(t, 1, m.Viewport.Height)
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		t.Parallel()

		m, _ := initModel(t)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

		require.NotNil(t, cmd)
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit)
	})

	t.Run("Q quits", func(t *testing.T) {
		t.Parallel()

		m, _ := initModel(t)
		_, cmd := submit(t, m, "q")

		require.NotNil(t, cmd)
		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit)
	})

	t.Run("enter with empty input does nothing", func(t *testing.T) {
		t.Parallel()

		m, _ := initModel(t)
		before := bt.RenderContent(m)
		m, cmd := submit(t, m, "   ")

		assert.Nil(t, cmd)
		assert.Equal(t, before, bt.RenderContent(m))
	})

	t.Run("submit clears input", func(t *testing.T) {
		t.Parallel()

		m, _ := initModel(t)
		m, _ = submit(t, m, "1")

		assert.Empty(t, m.Input.Value())
		assert.Equal(t, voicemail.StateAwaitingMailbox, m.Session().State())
	})

	t.Run("typed runes reach the input", func(t *testing.T) {
		t.Parallel()

		m, _ := initModel(t)
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("10")})

		assert.Equal(t, "10", m.Input.Value())
	})
}

func TestModel_Call(t *testing.T) {
	t.Parallel()

	t.Run("leave a message", func(t *testing.T) {
		t.Parallel()

		m, box := initModel(t)
		m = submitAll(t, m, "1", "101", "running late", "H")

		msg, ok := box.CurrentMessage()
		require.True(t, ok)
		assert.Equal(t, "running late", msg.Text)
		assert.Equal(t, voicemail.StateIdle, m.Session().State())

		content := bt.RenderContent(m)
		assert.Contains(t, content, "running late")
		assert.Contains(t, content, "Hi, this is 101")
		assert.Contains(t, content, "call ended")
		assert.Equal(t, 2, strings.Count(content, "To leave a message"))
	})

	t.Run("malformed choice repeats the welcome", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		m := loggedModel(t, &logs)
		m, _ = submit(t, m, "voicemail please")

		content := bt.RenderContent(m)
		assert.NotContains(t, content, "Error:")
		assert.Equal(t, 2, strings.Count(content, "To leave a message"))
		assert.Equal(t, voicemail.StateIdle, m.Session().State())
		assert.Contains(t, logs.String(), `"msg":"rejected choice"`)
	})

	t.Run("malformed mailbox number asks again", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		m := loggedModel(t, &logs)
		m = submitAll(t, m, "1", "front desk")

		content := bt.RenderContent(m)
		assert.NotContains(t, content, "Error:")
		assert.Contains(t, content, "Invalid Mailbox number")
		assert.Equal(t, voicemail.StateAwaitingMailbox, m.Session().State())
		assert.Contains(t, logs.String(), `"msg":"rejected mailbox number"`)
	})

	t.Run("owner listens with passcode login", func(t *testing.T) {
		t.Parallel()

		m, box := initModel(t, voicemail.WithAccessTransition(voicemail.AccessWithPasscode))
		box.AddMessage(voicemail.Message{Text: "dentist on tuesday"})
		m = submitAll(t, m, "2", "101", "1", "2", "3", "4", "#", "1", "1")

		assert.Equal(t, voicemail.StateMessageMenu, m.Session().State())
		assert.Contains(t, bt.RenderContent(m), "dentist on tuesday")
	})
}

func TestModel_StatusLine(t *testing.T) {
	t.Parallel()

	t.Run("shows state and mailbox", func(t *testing.T) {
		t.Parallel()

		m, _ := initModel(t)
		assert.Contains(t, bt.StatusLine(m, 80), "Idle")
		assert.Contains(t, bt.StatusLine(m, 80), "no mailbox")

		m = submitAll(t, m, "1", "101")
		assert.Contains(t, bt.StatusLine(m, 80), "LeavingMessage")
		assert.Contains(t, bt.StatusLine(m, 80), "mailbox 101")
	})

	t.Run("truncates the hint on narrow terminals", func(t *testing.T) {
		t.Parallel()

		m, _ := initModel(t)
		line := bt.StatusLine(m, 30)

		assert.Contains(t, line, "…")
		assert.NotContains(t, line, "Ctrl+C to quit")
		assert.Contains(t, line, "Idle")
	})
}

func TestModel_Teatest(t *testing.T) {
	t.Parallel()

	m, box := newModel(t)
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("To leave a message"))
	}, teatest.WithDuration(5*time.Second))

	for _, line := range []string{"1", "101", "hello", "H"} {
		tm.Type(line)
		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	}

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("call ended"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	final, ok := fm.(bt.Model)
	require.True(t, ok)
	assert.Equal(t, voicemail.StateIdle, final.Session().State())

	msg, ok := box.CurrentMessage()
	require.True(t, ok)
	assert.Equal(t, "hello", msg.Text)
}

func TestModel_Help(t *testing.T) {
	t.Parallel()

	m, _ := initModel(t)
	m = submitAll(t, m, "1", "?")

	content := bt.RenderContent(m)
	assert.Contains(t, content, "Phone keypad")
	assert.Contains(t, content, "Message menu")
	assert.Equal(t, voicemail.StateAwaitingMailbox, m.Session().State())
	assert.Empty(t, m.Session().Recording())
}
