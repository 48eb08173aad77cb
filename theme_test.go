package voicemail_test

import (
	"testing"

	"github.com/fwojciec/voicemail"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := voicemail.DefaultTheme()

	assert.Equal(t, 2, theme.Prompt)
	assert.Equal(t, 4, theme.Caller)
	assert.Equal(t, 1, theme.Error)
	assert.Equal(t, 3, theme.State)
	assert.Equal(t, 8, theme.Muted)
	assert.Equal(t, 5, theme.Accent)
}
