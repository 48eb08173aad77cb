package json_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/voicemail"
	vmjson "github.com/fwojciec/voicemail/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalMailbox_RoundTrip(t *testing.T) {
	t.Parallel()
	ts1 := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	ts2 := time.Date(2026, 10, 19, 9, 5, 0, 0, time.UTC)

	snap := voicemail.MailboxSnapshot{
		ID:       "101",
		Passcode: "4321",
		Greeting: "Hi, this is 101",
		New:      []voicemail.Message{{Text: "call me back", ReceivedAt: ts2}},
		Kept:     []voicemail.Message{{Text: "dentist tuesday", ReceivedAt: ts1}},
	}

	data, err := vmjson.MarshalMailbox(snap)
	require.NoError(t, err)

	got, err := vmjson.UnmarshalMailbox(data)
	require.NoError(t, err)

	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, snap.Passcode, got.Passcode)
	assert.Equal(t, snap.Greeting, got.Greeting)
	require.Len(t, got.New, 1)
	require.Len(t, got.Kept, 1)
	assert.Equal(t, "call me back", got.New[0].Text)
	assert.True(t, ts2.Equal(got.New[0].ReceivedAt))
	assert.Equal(t, "dentist tuesday", got.Kept[0].Text)
	assert.True(t, ts1.Equal(got.Kept[0].ReceivedAt))
}

func TestMarshalMailbox_WireFormat(t *testing.T) {
	t.Parallel()
	data, err := vmjson.MarshalMailbox(voicemail.MailboxSnapshot{ID: "101", Passcode: "1", Greeting: "g"})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"version": 1,
		"id": "101",
		"passcode": "1",
		"greeting": "g",
		"new_messages": [],
		"kept_messages": []
	}`, string(data))
}

func TestUnmarshalMailbox_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{`},
		{"unsupported version", `{"version": 2, "id": "101"}`},
		{"invalid mailbox", `{"version": 1, "id": "front-desk"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := vmjson.UnmarshalMailbox([]byte(tt.data))
			assert.Error(t, err)
		})
	}

	t.Run("validation errors are wrapped", func(t *testing.T) {
		t.Parallel()
		_, err := vmjson.UnmarshalMailbox([]byte(`{"version": 1, "id": "101", "passcode": "abc"}`))
		assert.ErrorIs(t, err, voicemail.ErrValidation)
	})
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "101.json")
	snap := voicemail.MailboxSnapshot{ID: "101", Passcode: "4321", Greeting: "Hi"}

	require.NoError(t, vmjson.Save(path, snap))
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")

	got, err := vmjson.Load(path)
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	_, err = vmjson.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
