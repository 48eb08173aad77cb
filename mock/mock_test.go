package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/voicemail"
	"github.com/fwojciec/voicemail/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevice_Prompt(t *testing.T) {
	t.Parallel()
	t.Run("delegates to PromptFn", func(t *testing.T) {
		t.Parallel()
		var got []string
		d := mock.Device{PromptFn: func(text string) { got = append(got, text) }}
		d.Prompt("hello")
		d.Prompt("again")
		assert.Equal(t, []string{"hello", "again"}, got)
	})

	t.Run("panics when PromptFn not set", func(t *testing.T) {
		t.Parallel()
		d := mock.Device{}
		assert.Panics(t, func() { d.Prompt("hello") })
	})
}

func TestDirectory_FindMailbox(t *testing.T) {
	t.Parallel()
	t.Run("delegates to FindMailboxFn", func(t *testing.T) {
		t.Parallel()
		want := voicemail.NewMailbox("101", "4321", "")
		d := mock.Directory{
			FindMailboxFn: func(id string) (*voicemail.Mailbox, error) {
				assert.Equal(t, "101", id)
				return want, nil
			},
		}
		got, err := d.FindMailbox("101")
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		d := mock.Directory{
			FindMailboxFn: func(string) (*voicemail.Mailbox, error) {
				return nil, voicemail.ErrMailboxNotFound
			},
		}
		_, err := d.FindMailbox("999")
		assert.ErrorIs(t, err, voicemail.ErrMailboxNotFound)
	})
}

func TestBootstrapper(t *testing.T) {
	t.Parallel()
	t.Run("ReadChoice delegates to ReadChoiceFn", func(t *testing.T) {
		t.Parallel()
		b := mock.Bootstrapper{
			ReadChoiceFn: func(context.Context) (int, error) { return 2, nil },
		}
		got, err := b.ReadChoice(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("ReadMailboxNumber returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("line dropped")
		b := mock.Bootstrapper{
			ReadMailboxNumberFn: func(context.Context) (string, error) { return "", wantErr },
		}
		_, err := b.ReadMailboxNumber(context.Background())
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("panics when ReadChoiceFn not set", func(t *testing.T) {
		t.Parallel()
		b := mock.Bootstrapper{}
		assert.Panics(t, func() {
			_, _ = b.ReadChoice(context.Background())
		})
	})
}
