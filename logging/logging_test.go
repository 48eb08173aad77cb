package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/voicemail/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := logging.New(&buf, "debug", "JSON")

	l.Debug("call started", "call_id", "c-1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "call started", entry["msg"])
	assert.Equal(t, "c-1", entry["call_id"])
}

func TestNew_Text(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := logging.New(&buf, "info", "text")

	l.Info("message left", "mailbox", "101")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="message left"`)
	assert.Contains(t, out, "mailbox=101")
}

func TestNew_AutoWritesJSONOffTerminal(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := logging.New(&buf, "info", "auto")

	l.Info("call ended")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "call ended", entry["msg"])
}

func TestNew_LevelFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		debug   bool
		info    bool
		warn    bool
		errored bool
	}{
		{"DEBUG", true, true, true, true},
		{"INFO", false, true, true, true},
		{"warn", false, false, true, true},
		{"Error", false, false, false, true},
		{"bogus", false, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := logging.New(&buf, tt.level, "text")
			l.Debug("d")
			l.Info("i")
			l.Warn("w")
			l.Error("e")
			out := buf.String()
			assert.Equal(t, tt.debug, strings.Contains(out, "msg=d"))
			assert.Equal(t, tt.info, strings.Contains(out, "msg=i"))
			assert.Equal(t, tt.warn, strings.Contains(out, "msg=w"))
			assert.Equal(t, tt.errored, strings.Contains(out, "msg=e"))
		})
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "voicemail.log")

	l, closeFn, err := logging.Open(path, "info", "json")
	require.NoError(t, err)
	l.Info("first")
	require.NoError(t, closeFn())

	l, closeFn, err = logging.Open(path, "info", "json")
	require.NoError(t, err)
	l.Info("second")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"first"`)
	assert.Contains(t, lines[1], `"msg":"second"`)
}

func TestOpen_Error(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	_, _, err := logging.Open(dir, "info", "text")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	t.Parallel()
	l := logging.Nop()
	require.NotNil(t, l)
	l.Error("dropped")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, logging.LevelDebug, logging.ParseLevel("debug"))
	assert.Equal(t, logging.LevelWarn, logging.ParseLevel("WARN"))
	assert.Equal(t, logging.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, logging.LevelInfo, logging.ParseLevel(""))
	assert.Equal(t, logging.LevelInfo, logging.ParseLevel("verbose"))
}

func TestValidLevelsAndFormats(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"DEBUG", "INFO", "WARN", "ERROR"}, logging.ValidLevels())
	assert.Equal(t, []string{"auto", "text", "json"}, logging.ValidFormats())
}
